package entity

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DiscountType determines how a voucher's discount value is interpreted.
type DiscountType string

// ExpirationType determines how a voucher stops being redeemable.
type ExpirationType string

// VoucherStatus is the cached validity state of a voucher.
type VoucherStatus string

const (
	// DiscountAmount subtracts a fixed currency amount from the order total.
	DiscountAmount DiscountType = "AMOUNT"
	// DiscountPercentage takes a fraction of the order total (0.10 = 10%).
	DiscountPercentage DiscountType = "PERCENTAGE"

	// ExpirationOneTime vouchers are consumed by a single successful redemption.
	ExpirationOneTime ExpirationType = "ONETIME"
	// ExpirationUntil vouchers stay redeemable until a fixed deadline.
	ExpirationUntil ExpirationType = "UNTIL"

	// VoucherValid means the voucher can still be redeemed.
	VoucherValid VoucherStatus = "VALID"
	// VoucherExpired is terminal; no input transitions a voucher back to VALID.
	VoucherExpired VoucherStatus = "EXPIRED"
)

// ParseDiscountType converts a stored string into a DiscountType.
// The mapping is explicit and independent of any storage driver.
func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(strings.ToUpper(s)) {
	case DiscountAmount:
		return DiscountAmount, nil
	case DiscountPercentage:
		return DiscountPercentage, nil
	default:
		return "", errors.Errorf("unknown discount type: %q", s)
	}
}

// String returns the stable storage representation.
func (t DiscountType) String() string { return string(t) }

// ParseExpirationType converts a stored string into an ExpirationType.
func ParseExpirationType(s string) (ExpirationType, error) {
	switch ExpirationType(strings.ToUpper(s)) {
	case ExpirationOneTime:
		return ExpirationOneTime, nil
	case ExpirationUntil:
		return ExpirationUntil, nil
	default:
		return "", errors.Errorf("unknown expiration type: %q", s)
	}
}

// String returns the stable storage representation.
func (t ExpirationType) String() string { return string(t) }

// ParseVoucherStatus converts a stored string into a VoucherStatus.
func ParseVoucherStatus(s string) (VoucherStatus, error) {
	switch VoucherStatus(strings.ToUpper(s)) {
	case VoucherValid:
		return VoucherValid, nil
	case VoucherExpired:
		return VoucherExpired, nil
	default:
		return "", errors.Errorf("unknown voucher status: %q", s)
	}
}

// String returns the stable storage representation.
func (s VoucherStatus) String() string { return string(s) }

// Voucher is a discount token with a validity window and redemption policy.
// Its status is derived state and must always agree with the expiration
// policy, the current time and the redemption history.
type Voucher struct {
	ID             uuid.UUID      // The unique ID for this voucher record.
	Code           string         // Unique redemption token handed to customers.
	DiscountValue  float64        // Currency amount (AMOUNT) or fraction of the order total (PERCENTAGE).
	DiscountType   DiscountType   // How DiscountValue is interpreted.
	ExpirationType ExpirationType // ONETIME (single use) or UNTIL (fixed deadline, multi use).
	Expiration     time.Time      // Deadline for UNTIL vouchers; zero for ONETIME.
	Status         VoucherStatus  // Cached validity state; EXPIRED is terminal.
	UsedCount      int            // Number of successful redemptions.
	CreatedAt      time.Time      // Timestamp of when this voucher was created.
	UpdatedAt      time.Time      // Timestamp of the last state change.
}

// IsExpired evaluates the expiry predicate at the given instant:
// a voucher is expired iff its UNTIL deadline has passed or a ONETIME
// voucher has been redeemed at least once.
func (v *Voucher) IsExpired(now time.Time) bool {
	if v.Status == VoucherExpired {
		return true
	}
	switch v.ExpirationType {
	case ExpirationUntil:
		return !now.Before(v.Expiration)
	case ExpirationOneTime:
		return v.UsedCount >= 1
	default:
		return false
	}
}

// Discount computes the discount this voucher grants against an order total.
// AMOUNT subtracts a fixed value, never more than the total itself;
// PERCENTAGE takes a fraction of the total, rounded to cents.
func (v *Voucher) Discount(orderTotal float64) float64 {
	if orderTotal <= 0 {
		return 0
	}
	switch v.DiscountType {
	case DiscountAmount:
		return math.Min(RoundToCents(v.DiscountValue), RoundToCents(orderTotal))
	case DiscountPercentage:
		return RoundToCents(orderTotal * v.DiscountValue)
	default:
		return 0
	}
}

// RoundToCents rounds a currency amount to two decimal places.
func RoundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
