package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sweeperService implements the SweepUsecase interface.
type sweeperService struct {
	voucherRepo repository.VoucherRepository
	logger      *slog.Logger
}

// SweeperServiceParams holds dependencies for sweeperService, injected by Fx.
type SweeperServiceParams struct {
	fx.In

	VoucherRepo repository.VoucherRepository
	Logger      *slog.Logger
}

// NewSweeperService is the constructor for sweeperService.
func NewSweeperService(params SweeperServiceParams) usecase.SweepUsecase {
	return &sweeperService{
		voucherRepo: params.VoucherRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sweeperService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Sweep evaluates the expiry predicate at the given instant for every VALID
// voucher and persists the transitions.
//
// Each transition is an independent conditional update: one voucher failing
// to persist is recorded in the report and the pass continues. A voucher that
// turns stale mid-pass was transitioned by a concurrent redemption, which is
// the outcome the sweep wanted anyway, so it counts as neither expired-here
// nor failed. Rerunning the sweep with the same now finds nothing left to do.
func (srv *sweeperService) Sweep(ctx context.Context, now time.Time) (*usecase.SweepReport, error) {
	srv.log(ctx).Info("Starting voucher sweep", slog.Time("now", now))

	vouchers, err := srv.voucherRepo.ListValid(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list valid vouchers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list valid vouchers")
	}

	report := &usecase.SweepReport{Examined: len(vouchers)}
	for _, voucher := range vouchers {
		if !voucher.IsExpired(now) {
			continue
		}

		if err := srv.voucherRepo.MarkExpired(ctx, voucher.Code, now); err != nil {
			if errors.Is(err, repository.ErrVoucherStale) {
				srv.log(ctx).Debug("Voucher already transitioned concurrently", slog.String("code", voucher.Code))

				continue
			}

			srv.log(ctx).Warn("Failed to expire voucher", slog.String("code", voucher.Code), slog.Any("error", err))
			report.Failures = append(report.Failures, usecase.SweepFailure{
				Code: voucher.Code,
				Err:  domainerrors.NewDatabaseExecuteError(err, "failed to expire voucher"),
			})

			continue
		}

		report.Expired = append(report.Expired, voucher.Code)
	}

	srv.log(ctx).Info("Voucher sweep finished",
		slog.Int("examined", report.Examined),
		slog.Int("expired", len(report.Expired)),
		slog.Int("failed", len(report.Failures)),
	)

	return report, nil
}
