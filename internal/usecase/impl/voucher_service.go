package impl

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// codeAlphabet is the character set for generated redemption codes.
// Uppercase alphanumerics read well on printed QR campaigns.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	defaultCodeLength    = 16
	defaultMaxPerRequest = 500
	codeCollisionRetries = 3
)

// voucherService implements the VoucherUsecase interface.
type voucherService struct {
	txManager     repository.TransactionManager
	voucherRepo   repository.VoucherRepository
	qrService     service.QRCodeService
	codeLength    int
	maxPerRequest int
	logger        *slog.Logger
}

// VoucherServiceParams holds dependencies for voucherService, injected by Fx.
type VoucherServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	VoucherRepo repository.VoucherRepository
	QRService   service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewVoucherService is the constructor for voucherService.
func NewVoucherService(params VoucherServiceParams) usecase.VoucherUsecase {
	codeLength := defaultCodeLength
	maxPerRequest := defaultMaxPerRequest
	if params.Config != nil && params.Config.Voucher != nil {
		if params.Config.Voucher.CodeLength > 0 {
			codeLength = params.Config.Voucher.CodeLength
		}
		if params.Config.Voucher.MaxGeneratePerRequest > 0 {
			maxPerRequest = params.Config.Voucher.MaxGeneratePerRequest
		}
	}

	return &voucherService{
		txManager:     params.TxManager,
		voucherRepo:   params.VoucherRepo,
		qrService:     params.QRService,
		codeLength:    codeLength,
		maxPerRequest: maxPerRequest,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *voucherService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Generate creates a batch of unique random-code vouchers in one transaction.
func (srv *voucherService) Generate(ctx context.Context, input *usecase.GenerateVouchersInput) (*usecase.GenerateVouchersOutput, error) {
	srv.log(ctx).Info("Generating vouchers", slog.Int("count", input.Count))

	template, err := srv.buildVoucherTemplate(input)
	if err != nil {
		srv.log(ctx).Warn("Invalid voucher generation input", slog.Any("error", err))

		return nil, err
	}

	codes := make([]string, 0, input.Count)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		voucherRepo := repoFactory.VoucherRepo()

		for range input.Count {
			code, createErr := srv.createWithFreshCode(ctx, voucherRepo, template)
			if createErr != nil {
				return createErr
			}
			codes = append(codes, code)
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute voucher generation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute voucher generation transaction")
	}

	srv.log(ctx).Debug("Vouchers generated", slog.Int("count", len(codes)))

	return &usecase.GenerateVouchersOutput{Codes: codes}, nil
}

// buildVoucherTemplate validates the generation input and turns it into the
// shared shape every voucher in the batch is stamped from.
func (srv *voucherService) buildVoucherTemplate(input *usecase.GenerateVouchersInput) (*entity.Voucher, error) {
	if input.Count <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("count must be positive")
	}
	if input.Count > srv.maxPerRequest {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("count exceeds the per-request limit")
	}

	discountType, err := entity.ParseDiscountType(input.DiscountType)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	expirationType, err := entity.ParseExpirationType(input.ExpirationType)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WrapMessage(err.Error())
	}

	if input.DiscountValue <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("discount value must be positive")
	}
	if discountType == entity.DiscountPercentage && input.DiscountValue > 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("percentage discount must be a fraction between 0 and 1")
	}
	if expirationType == entity.ExpirationUntil && input.Expiration.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("UNTIL vouchers require an expiration")
	}

	return &entity.Voucher{
		DiscountValue:  input.DiscountValue,
		DiscountType:   discountType,
		ExpirationType: expirationType,
		Expiration:     input.Expiration,
		Status:         entity.VoucherValid,
	}, nil
}

// createWithFreshCode draws random codes until one inserts cleanly.
// A code collision is astronomically unlikely at the configured length, but
// the unique constraint is the source of truth, so retry a few times.
func (srv *voucherService) createWithFreshCode(ctx context.Context, voucherRepo repository.VoucherRepository, template *entity.Voucher) (string, error) {
	for attempt := 0; attempt < codeCollisionRetries; attempt++ {
		code, err := randomCode(srv.codeLength)
		if err != nil {
			return "", errors.Wrap(err, "failed to draw random voucher code")
		}

		voucher := *template
		voucher.Code = code

		createErr := voucherRepo.Create(ctx, &voucher)
		if createErr == nil {
			return code, nil
		}
		if !errors.Is(createErr, domainerrors.ErrConflict) {
			return "", errors.Wrap(createErr, "failed to create voucher")
		}

		srv.logger.Warn("Voucher code collision, retrying", slog.Int("attempt", attempt+1))
	}

	return "", domainerrors.ErrVoucherGenerationFailed.WrapMessage("exhausted voucher code collision retries")
}

// randomCode draws an unpredictable alphanumeric code of the given length.
func randomCode(length int) (string, error) {
	alphabetSize := big.NewInt(int64(len(codeAlphabet)))
	code := make([]byte, length)
	for i := range code {
		idx, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", errors.WithStack(err)
		}
		code[i] = codeAlphabet[idx.Int64()]
	}

	return string(code), nil
}

// Get retrieves a voucher by its redemption code.
func (srv *voucherService) Get(ctx context.Context, code string) (*entity.Voucher, error) {
	voucher, err := srv.voucherRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrVoucherNotFound) {
			return nil, domainerrors.ErrVoucherNotFound.WrapMessage("voucher lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find voucher by code")
	}

	return voucher, nil
}

// Redeem applies a voucher to an order total.
//
// The status flip (ONETIME) or count increment (UNTIL) is a conditional
// storage update guarded by status = VALID. When a concurrent sweep or
// redemption got there first the update reports stale, which surfaces as the
// same already-expired rejection the caller would have seen moments later.
func (srv *voucherService) Redeem(ctx context.Context, input *usecase.RedeemVoucherInput) (*usecase.DiscountApplication, error) {
	srv.log(ctx).Info("Redeeming voucher", slog.String("code", input.Code))

	if input.OrderTotal <= 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("order total must be positive")
	}

	voucher, err := srv.Get(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if voucher.IsExpired(now) {
		srv.log(ctx).Warn("Redemption of expired voucher rejected", slog.String("code", input.Code))

		return nil, domainerrors.ErrVoucherExpired.WrapMessage("voucher can no longer be redeemed")
	}

	switch voucher.ExpirationType {
	case entity.ExpirationOneTime:
		err = srv.voucherRepo.ConsumeOneTime(ctx, input.Code, now)
	case entity.ExpirationUntil:
		err = srv.voucherRepo.IncrementUse(ctx, input.Code, now)
	default:
		return nil, domainerrors.ErrInternalError.WrapMessage("voucher has unknown expiration type")
	}

	if err != nil {
		if errors.Is(err, repository.ErrVoucherStale) {
			srv.log(ctx).Warn("Lost redemption race", slog.String("code", input.Code))

			return nil, domainerrors.ErrVoucherExpired.WrapMessage("voucher was consumed or expired concurrently")
		}

		srv.log(ctx).Error("Failed to persist redemption", slog.String("code", input.Code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to persist voucher redemption")
	}

	// Reflect the transition on the snapshot we hand back.
	voucher.UsedCount++
	voucher.UpdatedAt = now
	if voucher.ExpirationType == entity.ExpirationOneTime {
		voucher.Status = entity.VoucherExpired
	}

	discount := voucher.Discount(input.OrderTotal)
	srv.log(ctx).Debug("Voucher redeemed", slog.String("code", input.Code), slog.Float64("discount", discount))

	return &usecase.DiscountApplication{
		Code:       voucher.Code,
		Discount:   discount,
		TotalAfter: entity.RoundToCents(input.OrderTotal - discount),
		Voucher:    voucher,
		RedeemedAt: now,
	}, nil
}

// Revert compensates a redemption after order cancellation.
func (srv *voucherService) Revert(ctx context.Context, input *usecase.RevertVoucherInput) (*entity.Voucher, error) {
	srv.log(ctx).Info("Reverting voucher redemption", slog.String("code", input.Code))

	voucher, err := srv.Get(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if voucher.UsedCount < 1 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("voucher has no redemption to revert")
	}

	now := time.Now()
	switch voucher.ExpirationType {
	case entity.ExpirationOneTime:
		err = srv.voucherRepo.RevertOneTime(ctx, input.Code, now)
	case entity.ExpirationUntil:
		err = srv.voucherRepo.DecrementUse(ctx, input.Code, now)
	default:
		return nil, domainerrors.ErrInternalError.WrapMessage("voucher has unknown expiration type")
	}

	if err != nil {
		if errors.Is(err, repository.ErrVoucherStale) {
			return nil, domainerrors.ErrConflict.WrapMessage("voucher is not in a revertible state")
		}

		srv.log(ctx).Error("Failed to revert redemption", slog.String("code", input.Code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to revert voucher redemption")
	}

	reverted, err := srv.Get(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Voucher redemption reverted", slog.String("code", input.Code))

	return reverted, nil
}

// QRCode renders the voucher's redemption code as a PNG QR image.
func (srv *voucherService) QRCode(ctx context.Context, code string) ([]byte, error) {
	if _, err := srv.Get(ctx, code); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateVoucherQR(code)
	if err != nil {
		srv.log(ctx).Error("Failed to render voucher QR", slog.String("code", code), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to render voucher QR")
	}

	return png, nil
}
