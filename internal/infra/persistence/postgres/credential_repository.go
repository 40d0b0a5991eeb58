package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{db: db}
}

// Create persists a freshly built credential.
func (repo *credentialRepository) Create(ctx context.Context, cred *entity.Credential) error {
	credM := fromCredentialDomain(cred)

	if err := repo.db.WithContext(ctx).Create(credM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("credential already exists for user")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create credential")
	}

	cred.ID = credM.ID
	cred.CreatedAt = credM.CreatedAt

	return nil
}

// FindByUserID retrieves the current credential for a user.
func (repo *credentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var credM model.CredentialModel
	if err := repo.db.WithContext(ctx).First(&credM, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCredentialNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCredentialDomain(&credM), nil
}

// Replace removes the user's previous credential and persists the new one.
// Deleting instead of updating keeps credential records immutable.
func (repo *credentialRepository) Replace(ctx context.Context, cred *entity.Credential) error {
	if err := repo.db.WithContext(ctx).
		Delete(&model.CredentialModel{}, "user_id = ?", cred.UserID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to remove previous credential")
	}

	return repo.Create(ctx, cred)
}
