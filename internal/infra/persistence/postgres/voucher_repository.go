package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"
)

// voucherRepository implements the repository.VoucherRepository interface.
//
// Every state transition below is a single UPDATE guarded by
// status = 'VALID' (and, for reverts, by the current state being
// revertible). RowsAffected == 0 means a concurrent writer got there first,
// which the caller observes as ErrVoucherStale. This is the storage-level
// single-writer discipline that keeps a redemption racing a sweep coherent.
type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository is the constructor for voucherRepository.
func NewVoucherRepository(db *gorm.DB) repository.VoucherRepository {
	return &voucherRepository{db: db}
}

// Create persists a new voucher.
func (repo *voucherRepository) Create(ctx context.Context, voucher *entity.Voucher) error {
	voucherM := fromVoucherDomain(voucher)

	if err := repo.db.WithContext(ctx).Create(voucherM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("voucher code already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create voucher")
	}

	voucher.ID = voucherM.ID
	voucher.CreatedAt = voucherM.CreatedAt
	voucher.UpdatedAt = voucherM.UpdatedAt

	return nil
}

// FindByCode retrieves a voucher by its redemption code.
func (repo *voucherRepository) FindByCode(ctx context.Context, code string) (*entity.Voucher, error) {
	var voucherM model.VoucherModel
	if err := repo.db.WithContext(ctx).First(&voucherM, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVoucherNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toVoucherDomain(&voucherM)
}

// ListValid returns every voucher currently in the VALID state.
func (repo *voucherRepository) ListValid(ctx context.Context) ([]*entity.Voucher, error) {
	var models []model.VoucherModel
	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.VoucherValid.String()).
		Order("created_at").
		Find(&models).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	vouchers := make([]*entity.Voucher, 0, len(models))
	for i := range models {
		voucher, err := toVoucherDomain(&models[i])
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, voucher)
	}

	return vouchers, nil
}

// ConsumeOneTime atomically increments the redemption count and flips the
// voucher to EXPIRED, provided it is still VALID.
func (repo *voucherRepository) ConsumeOneTime(ctx context.Context, code string, at time.Time) error {
	return repo.transition(ctx, code, entity.VoucherValid, map[string]any{
		"status":     entity.VoucherExpired.String(),
		"used_count": gorm.Expr("used_count + 1"),
		"updated_at": at,
	})
}

// IncrementUse increments the redemption count of a still-VALID voucher.
func (repo *voucherRepository) IncrementUse(ctx context.Context, code string, at time.Time) error {
	return repo.transition(ctx, code, entity.VoucherValid, map[string]any{
		"used_count": gorm.Expr("used_count + 1"),
		"updated_at": at,
	})
}

// MarkExpired flips a still-VALID voucher to EXPIRED (sweeper path).
func (repo *voucherRepository) MarkExpired(ctx context.Context, code string, at time.Time) error {
	return repo.transition(ctx, code, entity.VoucherValid, map[string]any{
		"status":     entity.VoucherExpired.String(),
		"updated_at": at,
	})
}

// RevertOneTime restores a consumed ONETIME voucher to VALID.
func (repo *voucherRepository) RevertOneTime(ctx context.Context, code string, at time.Time) error {
	return repo.transition(ctx, code, entity.VoucherExpired, map[string]any{
		"status":     entity.VoucherValid.String(),
		"used_count": gorm.Expr("used_count - 1"),
		"updated_at": at,
	})
}

// DecrementUse decrements the redemption count of an UNTIL voucher.
func (repo *voucherRepository) DecrementUse(ctx context.Context, code string, at time.Time) error {
	return repo.transition(ctx, code, entity.VoucherValid, map[string]any{
		"used_count": gorm.Expr("used_count - 1"),
		"updated_at": at,
	})
}

// transition performs one guarded state update.
func (repo *voucherRepository) transition(ctx context.Context, code string, from entity.VoucherStatus, updates map[string]any) error {
	res := repo.db.WithContext(ctx).Model(&model.VoucherModel{}).
		Where("code = ? AND status = ?", code, from.String()).
		Updates(updates)
	if res.Error != nil {
		return domainerrors.NewDatabaseExecuteError(res.Error, "failed to transition voucher "+code)
	}
	if res.RowsAffected == 0 {
		return repository.ErrVoucherStale
	}

	return nil
}
