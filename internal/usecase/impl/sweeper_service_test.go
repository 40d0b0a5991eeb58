package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSweeperService(t *testing.T) (usecase.SweepUsecase, *mockRepo.MockVoucherRepository) {
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	service := NewSweeperService(SweeperServiceParams{
		VoucherRepo: voucherRepo,
		Logger:      slog.Default(),
	})

	return service, voucherRepo
}

func TestSweeperService_Sweep_ExpiresPastDeadline(t *testing.T) {
	service, voucherRepo := createTestSweeperService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	past := untilVoucher("PAST0001", now.Add(-time.Minute))
	future := untilVoucher("FUTR0001", now.Add(time.Minute))
	fresh := oneTimeVoucher("ONCE0001")

	voucherRepo.EXPECT().
		ListValid(ctx).
		Return([]*entity.Voucher{past, future, fresh}, nil)

	voucherRepo.EXPECT().
		MarkExpired(ctx, past.Code, now).
		Return(nil)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Examined)
	assert.Equal(t, []string{past.Code}, report.Expired)
	assert.Empty(t, report.Failures)
}

func TestSweeperService_Sweep_DeadlineIsInclusive(t *testing.T) {
	service, voucherRepo := createTestSweeperService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// A voucher expiring exactly at the sweep instant is already expired.
	atDeadline := untilVoucher("EXACT001", now)

	voucherRepo.EXPECT().
		ListValid(ctx).
		Return([]*entity.Voucher{atDeadline}, nil)

	voucherRepo.EXPECT().
		MarkExpired(ctx, atDeadline.Code, now).
		Return(nil)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{atDeadline.Code}, report.Expired)
}

func TestSweeperService_Sweep_ConsumedOneTimeIsSweptEvenBeforeAnyDeadline(t *testing.T) {
	service, voucherRepo := createTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()

	// A ONETIME voucher left VALID with a recorded use is an inconsistency
	// the sweep repairs.
	used := oneTimeVoucher("ONCE0001")
	used.UsedCount = 1

	voucherRepo.EXPECT().
		ListValid(ctx).
		Return([]*entity.Voucher{used}, nil)

	voucherRepo.EXPECT().
		MarkExpired(ctx, used.Code, now).
		Return(nil)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, []string{used.Code}, report.Expired)
}

func TestSweeperService_Sweep_PartialFailureDoesNotAbort(t *testing.T) {
	service, voucherRepo := createTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()

	first := untilVoucher("FAIL0001", now.Add(-time.Hour))
	second := untilVoucher("OKAY0001", now.Add(-time.Hour))

	voucherRepo.EXPECT().
		ListValid(ctx).
		Return([]*entity.Voucher{first, second}, nil)

	voucherRepo.EXPECT().
		MarkExpired(ctx, first.Code, now).
		Return(errors.New("connection reset"))

	voucherRepo.EXPECT().
		MarkExpired(ctx, second.Code, now).
		Return(nil)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Examined)
	assert.Equal(t, []string{second.Code}, report.Expired)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, first.Code, report.Failures[0].Code)
	assert.Error(t, report.Failures[0].Err)
}

func TestSweeperService_Sweep_StaleVoucherIsNotAFailure(t *testing.T) {
	service, voucherRepo := createTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()

	racing := untilVoucher("RACE0001", now.Add(-time.Hour))

	voucherRepo.EXPECT().
		ListValid(ctx).
		Return([]*entity.Voucher{racing}, nil)

	// A concurrent redemption transitioned the voucher first.
	voucherRepo.EXPECT().
		MarkExpired(ctx, racing.Code, now).
		Return(repository.ErrVoucherStale)

	report, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, report.Expired)
	assert.Empty(t, report.Failures)
}

func TestSweeperService_Sweep_SecondPassFindsNothing(t *testing.T) {
	service, voucherRepo := createTestSweeperService(t)

	ctx := context.Background()
	now := time.Now()

	expired := untilVoucher("GONE0001", now.Add(-time.Hour))

	voucherRepo.EXPECT().
		ListValid(ctx).
		Return([]*entity.Voucher{expired}, nil).
		Once()

	voucherRepo.EXPECT().
		MarkExpired(ctx, expired.Code, now).
		Return(nil).
		Once()

	first, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	require.Equal(t, []string{expired.Code}, first.Expired)

	// The voucher is EXPIRED now, so it no longer shows up as VALID.
	voucherRepo.EXPECT().
		ListValid(ctx).
		Return([]*entity.Voucher{}, nil).
		Once()

	second, err := service.Sweep(ctx, now)
	require.NoError(t, err)
	assert.Zero(t, second.Examined)
	assert.Empty(t, second.Expired)
}

func TestSweeperService_Sweep_ListFailure(t *testing.T) {
	service, voucherRepo := createTestSweeperService(t)

	ctx := context.Background()

	voucherRepo.EXPECT().
		ListValid(ctx).
		Return(nil, errors.New("connection refused"))

	report, err := service.Sweep(ctx, time.Now())
	require.Error(t, err)
	assert.Nil(t, report)
}
