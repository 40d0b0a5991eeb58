package worker

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"bazaar/config"
	mockUsecase "bazaar/internal/mocks/usecase"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSweepWorker(t *testing.T, interval time.Duration, runAtStart bool) (*sweepWorker, *mockUsecase.MockSweepUsecase) {
	t.Helper()

	sweeper := mockUsecase.NewMockSweepUsecase(t)
	worker := &sweepWorker{
		interval:   interval,
		runAtStart: runAtStart,
		sweeper:    sweeper,
		logger:     slog.Default(),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}

	return worker, sweeper
}

func TestNewSweepWorker_RequiresInterval(t *testing.T) {
	t.Parallel()

	_, err := NewSweepWorker(SweepWorkerParams{
		Config: &config.Config{Sweep: &config.SweepConfig{Interval: 0}},
		Logger: slog.Default(),
	})
	require.Error(t, err)

	_, err = NewSweepWorker(SweepWorkerParams{
		Config: &config.Config{},
		Logger: slog.Default(),
	})
	require.Error(t, err)
}

func TestSweepWorker_RunsAtStart(t *testing.T) {
	t.Parallel()

	worker, sweeper := createTestSweepWorker(t, time.Hour, true)

	swept := make(chan struct{})
	sweeper.EXPECT().Sweep(mock.Anything, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, _ time.Time) (*usecase.SweepReport, error) {
			close(swept)

			return &usecase.SweepReport{Examined: 2, Expired: []string{"CODE1"}}, nil
		}).Once()

	go func() { _ = worker.Serve(context.Background()) }()

	select {
	case <-swept:
	case <-time.After(time.Second):
		t.Fatal("sweep did not run at start")
	}

	require.NoError(t, worker.shutdown(context.Background()))
}

func TestSweepWorker_TicksOnInterval(t *testing.T) {
	t.Parallel()

	worker, sweeper := createTestSweepWorker(t, 5*time.Millisecond, false)

	var passes atomic.Int32
	done := make(chan struct{})
	sweeper.EXPECT().Sweep(mock.Anything, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, _ time.Time) (*usecase.SweepReport, error) {
			if passes.Add(1) == 2 {
				close(done)
			}

			return &usecase.SweepReport{}, nil
		})

	go func() { _ = worker.Serve(context.Background()) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweep did not tick twice")
	}

	require.NoError(t, worker.shutdown(context.Background()))
	assert.GreaterOrEqual(t, passes.Load(), int32(2))
}

func TestSweepWorker_SurvivesSweepFailure(t *testing.T) {
	t.Parallel()

	worker, sweeper := createTestSweepWorker(t, 5*time.Millisecond, false)

	var passes atomic.Int32
	done := make(chan struct{})
	sweeper.EXPECT().Sweep(mock.Anything, mock.AnythingOfType("time.Time")).
		RunAndReturn(func(_ context.Context, _ time.Time) (*usecase.SweepReport, error) {
			switch passes.Add(1) {
			case 1:
				return nil, errors.New("database unavailable")
			case 2:
				close(done)
			}

			return &usecase.SweepReport{}, nil
		})

	go func() { _ = worker.Serve(context.Background()) }()

	// A failing pass must not take the loop down; the next tick still runs.
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive a failed sweep")
	}

	require.NoError(t, worker.shutdown(context.Background()))
}

func TestSweepWorker_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	worker, _ := createTestSweepWorker(t, time.Hour, false)

	ctx, cancel := context.WithCancel(context.Background())

	served := make(chan error, 1)
	go func() { served <- worker.Serve(ctx) }()

	cancel()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancel")
	}
}
