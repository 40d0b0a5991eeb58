package usecase

import (
	"context"
	"time"
)

// SweepFailure records a voucher the sweeper could not transition.
type SweepFailure struct {
	Code string
	Err  error
}

// SweepReport summarizes one pass over the VALID voucher population.
type SweepReport struct {
	// Examined is the number of VALID vouchers evaluated.
	Examined int
	// Expired lists the codes transitioned to EXPIRED during this pass.
	Expired []string
	// Failures lists vouchers whose transition could not be persisted.
	// They stay VALID and are picked up again on the next pass.
	Failures []SweepFailure
}

// SweepUsecase drives the voucher lifecycle sweep.
type SweepUsecase interface {
	// Sweep evaluates the expiry predicate at the given instant for every
	// VALID voucher and persists the transitions. A per-voucher persistence
	// failure is recorded in the report and does not abort the rest.
	// For a fixed now, running Sweep twice yields no further transitions.
	Sweep(ctx context.Context, now time.Time) (*SweepReport, error)
}
