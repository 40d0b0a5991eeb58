package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
)

// --- Input DTOs ---

// GenerateVouchersInput defines the parameters for a batch of new vouchers.
type GenerateVouchersInput struct {
	Count          int     `json:"count" validate:"required,min=1"`
	DiscountValue  float64 `json:"discountValue" validate:"required,gt=0"`
	DiscountType   string  `json:"discountType" validate:"required"`
	ExpirationType string  `json:"expirationType" validate:"required"`
	// Expiration is required for UNTIL vouchers and ignored for ONETIME.
	Expiration time.Time `json:"expiration"`
}

// RedeemVoucherInput identifies the voucher and the order it applies to.
type RedeemVoucherInput struct {
	Code       string  `json:"code" validate:"required"`
	OrderTotal float64 `json:"orderTotal" validate:"required,gt=0"`
}

// RevertVoucherInput identifies a redemption to compensate.
type RevertVoucherInput struct {
	Code string `json:"code" validate:"required"`
}

// --- Output DTOs ---

// GenerateVouchersOutput returns the freshly generated redemption codes.
type GenerateVouchersOutput struct {
	Codes []string
}

// DiscountApplication describes the outcome of a successful redemption.
type DiscountApplication struct {
	Code       string
	Discount   float64
	TotalAfter float64
	Voucher    *entity.Voucher
	RedeemedAt time.Time
}

// VoucherUsecase defines the interface for voucher lifecycle operations.
type VoucherUsecase interface {
	// Generate creates a batch of unique random-code vouchers.
	Generate(ctx context.Context, input *GenerateVouchersInput) (*GenerateVouchersOutput, error)

	// Get retrieves a voucher by its redemption code.
	Get(ctx context.Context, code string) (*entity.Voucher, error)

	// Redeem applies a voucher to an order total. ONETIME vouchers are
	// consumed by the call; an expired voucher is a business rejection.
	Redeem(ctx context.Context, input *RedeemVoucherInput) (*DiscountApplication, error)

	// Revert compensates a redemption after order cancellation: ONETIME
	// vouchers return to VALID, UNTIL vouchers get their count decremented.
	Revert(ctx context.Context, input *RevertVoucherInput) (*entity.Voucher, error)

	// QRCode renders the voucher's redemption code as a PNG QR image.
	QRCode(ctx context.Context, code string) ([]byte, error)
}
