// Package worker contains background deliveries that run beside the HTTP server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sweepWorker drives the voucher lifecycle sweep on a fixed cadence.
// Expiry must not wait for the next interactive request, so the sweep runs
// here regardless of traffic.
type sweepWorker struct {
	interval   time.Duration
	runAtStart bool
	sweeper    usecase.SweepUsecase
	logger     *slog.Logger
	stop       chan struct{}
	done       chan struct{}
}

// SweepWorkerParams holds dependencies for the sweep worker
type SweepWorkerParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Sweeper usecase.SweepUsecase
	Logger  *slog.Logger
}

// NewSweepWorker creates the periodic voucher sweeper delivery.
func NewSweepWorker(params SweepWorkerParams) (delivery.Delivery, error) {
	if params.Config.Sweep == nil || params.Config.Sweep.Interval <= 0 {
		return nil, errors.New("sweep interval must be configured and positive")
	}

	worker := &sweepWorker{
		interval:   params.Config.Sweep.Interval,
		runAtStart: params.Config.Sweep.RunAtStart,
		sweeper:    params.Sweeper,
		logger:     params.Logger,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: worker.shutdown,
	})

	return worker, nil
}

// Serve runs the sweep loop until the worker is stopped.
func (w *sweepWorker) Serve(ctx context.Context) error {
	defer close(w.done)

	w.logger.Info("Starting voucher sweep worker",
		slog.Duration("interval", w.interval),
		slog.Bool("runAtStart", w.runAtStart),
	)

	if w.runAtStart {
		w.runSweep(ctx)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.runSweep(ctx)
		case <-w.stop:
			w.logger.Info("Voucher sweep worker stopped")

			return nil
		case <-ctx.Done():
			w.logger.Info("Voucher sweep worker context cancelled")

			return nil
		}
	}
}

// runSweep executes one sweep pass. A failing pass is logged and retried on
// the next tick; it never takes the worker down.
func (w *sweepWorker) runSweep(ctx context.Context) {
	report, err := w.sweeper.Sweep(ctx, time.Now())
	if err != nil {
		w.logger.Error("Voucher sweep failed", slog.Any("error", err))

		return
	}

	w.logger.Info("Voucher sweep report",
		slog.Int("examined", report.Examined),
		slog.Int("expired", len(report.Expired)),
		slog.Int("failed", len(report.Failures)),
	)

	for _, failure := range report.Failures {
		w.logger.Warn("Voucher sweep transition failed",
			slog.String("code", failure.Code),
			slog.Any("error", failure.Err),
		)
	}
}

// shutdown signals the loop to exit and waits for the in-flight pass.
func (w *sweepWorker) shutdown(ctx context.Context) error {
	close(w.stop)

	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-w.done:
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "sweep worker did not stop in time")
	}
}
