package repository

import (
	"context"
	"errors"
	"time"

	"bazaar/internal/domain/entity"
)

// Domain-specific errors for voucher persistence.
var (
	// ErrVoucherNotFound is returned when no voucher exists for a code.
	ErrVoucherNotFound = errors.New("voucher not found")
	// ErrVoucherStale is returned when a conditional state transition finds
	// the voucher no longer VALID, i.e. a concurrent redemption or sweep won.
	ErrVoucherStale = errors.New("voucher is no longer valid")
)

// VoucherRepository defines persistence for time-bound vouchers.
//
// Every state transition is a single conditional update guarded by
// status = VALID, which gives each voucher a single-writer discipline at the
// storage layer: a redemption racing a sweep resolves to exactly one winner,
// and the loser observes ErrVoucherStale.
type VoucherRepository interface {
	// Create persists a new voucher.
	Create(ctx context.Context, voucher *entity.Voucher) error

	// FindByCode retrieves a voucher by its redemption code.
	FindByCode(ctx context.Context, code string) (*entity.Voucher, error)

	// ListValid returns every voucher currently in the VALID state.
	ListValid(ctx context.Context) ([]*entity.Voucher, error)

	// ConsumeOneTime atomically increments the redemption count and flips the
	// voucher to EXPIRED, provided it is still VALID.
	ConsumeOneTime(ctx context.Context, code string, at time.Time) error

	// IncrementUse increments the redemption count of a still-VALID voucher
	// without changing its status (UNTIL redemptions).
	IncrementUse(ctx context.Context, code string, at time.Time) error

	// MarkExpired flips a still-VALID voucher to EXPIRED (sweeper path).
	MarkExpired(ctx context.Context, code string, at time.Time) error

	// RevertOneTime restores a consumed ONETIME voucher to VALID and
	// decrements its redemption count (order-cancellation compensation).
	RevertOneTime(ctx context.Context, code string, at time.Time) error

	// DecrementUse decrements the redemption count of an UNTIL voucher
	// (order-cancellation compensation).
	DecrementUse(ctx context.Context, code string, at time.Time) error
}
