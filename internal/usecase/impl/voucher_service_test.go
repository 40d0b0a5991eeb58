package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	mockSvc "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// voucherServiceFixtures holds all test dependencies for voucher service tests.
type voucherServiceFixtures struct {
	service     usecase.VoucherUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	voucherRepo *mockRepo.MockVoucherRepository
	qrService   *mockSvc.MockQRCodeService
}

func createTestVoucherService(t *testing.T) voucherServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	voucherRepo := mockRepo.NewMockVoucherRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)

	cfg := &config.Config{
		Voucher: &config.VoucherConfig{
			CodeLength:            16,
			MaxGeneratePerRequest: 10,
		},
	}

	service := NewVoucherService(VoucherServiceParams{
		TxManager:   txManager,
		VoucherRepo: voucherRepo,
		QRService:   qrService,
		Config:      cfg,
		Logger:      slog.Default(),
	})

	return voucherServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		voucherRepo: voucherRepo,
		qrService:   qrService,
	}
}

func (f voucherServiceFixtures) passthroughTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func oneTimeVoucher(code string) *entity.Voucher {
	return &entity.Voucher{
		ID:             uuid.New(),
		Code:           code,
		DiscountValue:  5,
		DiscountType:   entity.DiscountAmount,
		ExpirationType: entity.ExpirationOneTime,
		Status:         entity.VoucherValid,
	}
}

func untilVoucher(code string, expiration time.Time) *entity.Voucher {
	return &entity.Voucher{
		ID:             uuid.New(),
		Code:           code,
		DiscountValue:  0.10,
		DiscountType:   entity.DiscountPercentage,
		ExpirationType: entity.ExpirationUntil,
		Expiration:     expiration,
		Status:         entity.VoucherValid,
	}
}

func TestVoucherService_Generate_Success(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	f.passthroughTransaction(ctx)
	f.factory.EXPECT().VoucherRepo().Return(f.voucherRepo)

	var created []*entity.Voucher
	f.voucherRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Voucher")).
		RunAndReturn(func(_ context.Context, voucher *entity.Voucher) error {
			created = append(created, voucher)

			return nil
		}).
		Times(3)

	output, err := f.service.Generate(ctx, &usecase.GenerateVouchersInput{
		Count:          3,
		DiscountValue:  5,
		DiscountType:   "AMOUNT",
		ExpirationType: "ONETIME",
	})
	require.NoError(t, err)
	require.Len(t, output.Codes, 3)
	require.Len(t, created, 3)

	seen := make(map[string]bool)
	for i, voucher := range created {
		assert.Equal(t, output.Codes[i], voucher.Code)
		assert.Len(t, voucher.Code, 16)
		assert.Equal(t, entity.VoucherValid, voucher.Status)
		assert.False(t, seen[voucher.Code], "codes must be unique within a batch")
		seen[voucher.Code] = true
	}
}

func TestVoucherService_Generate_CountOverLimit(t *testing.T) {
	f := createTestVoucherService(t)

	output, err := f.service.Generate(context.Background(), &usecase.GenerateVouchersInput{
		Count:          11,
		DiscountValue:  5,
		DiscountType:   "AMOUNT",
		ExpirationType: "ONETIME",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVoucherService_Generate_UnknownDiscountType(t *testing.T) {
	f := createTestVoucherService(t)

	output, err := f.service.Generate(context.Background(), &usecase.GenerateVouchersInput{
		Count:          1,
		DiscountValue:  5,
		DiscountType:   "COUPON",
		ExpirationType: "ONETIME",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
}

func TestVoucherService_Generate_UntilRequiresExpiration(t *testing.T) {
	f := createTestVoucherService(t)

	output, err := f.service.Generate(context.Background(), &usecase.GenerateVouchersInput{
		Count:          1,
		DiscountValue:  0.25,
		DiscountType:   "PERCENTAGE",
		ExpirationType: "UNTIL",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVoucherService_Generate_RetriesOnCodeCollision(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	f.passthroughTransaction(ctx)
	f.factory.EXPECT().VoucherRepo().Return(f.voucherRepo)

	calls := 0
	f.voucherRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Voucher")).
		RunAndReturn(func(context.Context, *entity.Voucher) error {
			calls++
			if calls == 1 {
				return domainerrors.ErrConflict.WrapMessage("voucher code already exists")
			}

			return nil
		}).
		Times(2)

	output, err := f.service.Generate(ctx, &usecase.GenerateVouchersInput{
		Count:          1,
		DiscountValue:  5,
		DiscountType:   "AMOUNT",
		ExpirationType: "ONETIME",
	})
	require.NoError(t, err)
	assert.Len(t, output.Codes, 1)
	assert.Equal(t, 2, calls)
}

func TestVoucherService_Redeem_OneTimeConsumes(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	voucher := oneTimeVoucher("ABCD1234")

	f.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	f.voucherRepo.EXPECT().
		ConsumeOneTime(ctx, voucher.Code, mock.AnythingOfType("time.Time")).
		Return(nil)

	application, err := f.service.Redeem(ctx, &usecase.RedeemVoucherInput{
		Code:       voucher.Code,
		OrderTotal: 20,
	})
	require.NoError(t, err)
	assert.InDelta(t, 5.0, application.Discount, 1e-9)
	assert.InDelta(t, 15.0, application.TotalAfter, 1e-9)
	assert.Equal(t, entity.VoucherExpired, application.Voucher.Status)
	assert.Equal(t, 1, application.Voucher.UsedCount)
}

func TestVoucherService_Redeem_ExpiredRejected(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	voucher := oneTimeVoucher("ABCD1234")
	voucher.Status = entity.VoucherExpired
	voucher.UsedCount = 1

	f.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	application, err := f.service.Redeem(ctx, &usecase.RedeemVoucherInput{
		Code:       voucher.Code,
		OrderTotal: 20,
	})
	require.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherExpired))
}

func TestVoucherService_Redeem_PastDeadlineRejected(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	voucher := untilVoucher("ABCD1234", time.Now().Add(-time.Hour))

	f.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	application, err := f.service.Redeem(ctx, &usecase.RedeemVoucherInput{
		Code:       voucher.Code,
		OrderTotal: 20,
	})
	require.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherExpired))
}

func TestVoucherService_Redeem_LostRaceSurfacesAsExpired(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	voucher := oneTimeVoucher("ABCD1234")

	f.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	f.voucherRepo.EXPECT().
		ConsumeOneTime(ctx, voucher.Code, mock.AnythingOfType("time.Time")).
		Return(repository.ErrVoucherStale)

	application, err := f.service.Redeem(ctx, &usecase.RedeemVoucherInput{
		Code:       voucher.Code,
		OrderTotal: 20,
	})
	require.Error(t, err)
	assert.Nil(t, application)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherExpired))
}

func TestVoucherService_Redeem_UntilIncrementsWithoutExpiring(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	voucher := untilVoucher("ABCD1234", time.Now().Add(24*time.Hour))
	voucher.UsedCount = 3

	f.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	f.voucherRepo.EXPECT().
		IncrementUse(ctx, voucher.Code, mock.AnythingOfType("time.Time")).
		Return(nil)

	application, err := f.service.Redeem(ctx, &usecase.RedeemVoucherInput{
		Code:       voucher.Code,
		OrderTotal: 33.33,
	})
	require.NoError(t, err)
	assert.InDelta(t, 3.33, application.Discount, 1e-9)
	assert.InDelta(t, 30.0, application.TotalAfter, 1e-9)
	assert.Equal(t, entity.VoucherValid, application.Voucher.Status)
	assert.Equal(t, 4, application.Voucher.UsedCount)
}

func TestVoucherService_Revert_OneTimeBackToValid(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	consumed := oneTimeVoucher("ABCD1234")
	consumed.Status = entity.VoucherExpired
	consumed.UsedCount = 1

	reverted := oneTimeVoucher("ABCD1234")

	f.voucherRepo.EXPECT().
		FindByCode(ctx, consumed.Code).
		Return(consumed, nil).
		Once()

	f.voucherRepo.EXPECT().
		RevertOneTime(ctx, consumed.Code, mock.AnythingOfType("time.Time")).
		Return(nil)

	f.voucherRepo.EXPECT().
		FindByCode(ctx, consumed.Code).
		Return(reverted, nil).
		Once()

	voucher, err := f.service.Revert(ctx, &usecase.RevertVoucherInput{Code: consumed.Code})
	require.NoError(t, err)
	assert.Equal(t, entity.VoucherValid, voucher.Status)
	assert.Equal(t, 0, voucher.UsedCount)
}

func TestVoucherService_Revert_NothingToRevert(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	voucher := untilVoucher("ABCD1234", time.Now().Add(time.Hour))

	f.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	result, err := f.service.Revert(ctx, &usecase.RevertVoucherInput{Code: voucher.Code})
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVoucherService_Get_NotFound(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()

	f.voucherRepo.EXPECT().
		FindByCode(ctx, "MISSING").
		Return(nil, repository.ErrVoucherNotFound)

	voucher, err := f.service.Get(ctx, "MISSING")
	require.Error(t, err)
	assert.Nil(t, voucher)
	assert.True(t, errors.Is(err, domainerrors.ErrVoucherNotFound))
}

func TestVoucherService_QRCode_Success(t *testing.T) {
	f := createTestVoucherService(t)

	ctx := context.Background()
	voucher := oneTimeVoucher("ABCD1234")

	f.voucherRepo.EXPECT().
		FindByCode(ctx, voucher.Code).
		Return(voucher, nil)

	f.qrService.EXPECT().
		GenerateVoucherQR(voucher.Code).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := f.service.QRCode(ctx, voucher.Code)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
