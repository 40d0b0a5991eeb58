package postgres

import (
	"bazaar/internal/domain/entity"
	"bazaar/internal/infra/persistence/model"
)

func fromUserDomain(user *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

func toUserDomain(m *model.UserModel) *entity.User {
	return &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromCredentialDomain(cred *entity.Credential) *model.CredentialModel {
	return &model.CredentialModel{
		ID:           cred.ID,
		UserID:       cred.UserID,
		StoredSecret: cred.StoredSecret(),
		CreatedAt:    cred.CreatedAt,
	}
}

// toCredentialDomain splits the stored secret back into its halves.
// Both halves are digests of equal hex length, so the split point is the middle.
func toCredentialDomain(m *model.CredentialModel) *entity.Credential {
	half := len(m.StoredSecret) / 2

	return &entity.Credential{
		ID:           m.ID,
		UserID:       m.UserID,
		Salt:         m.StoredSecret[:half],
		SaltedDigest: m.StoredSecret[half:],
		CreatedAt:    m.CreatedAt,
	}
}

func fromVoucherDomain(voucher *entity.Voucher) *model.VoucherModel {
	return &model.VoucherModel{
		ID:             voucher.ID,
		Code:           voucher.Code,
		DiscountValue:  voucher.DiscountValue,
		DiscountType:   voucher.DiscountType.String(),
		ExpirationType: voucher.ExpirationType.String(),
		Expiration:     voucher.Expiration,
		Status:         voucher.Status.String(),
		UsedCount:      voucher.UsedCount,
		CreatedAt:      voucher.CreatedAt,
		UpdatedAt:      voucher.UpdatedAt,
	}
}

func toVoucherDomain(m *model.VoucherModel) (*entity.Voucher, error) {
	discountType, err := entity.ParseDiscountType(m.DiscountType)
	if err != nil {
		return nil, err
	}
	expirationType, err := entity.ParseExpirationType(m.ExpirationType)
	if err != nil {
		return nil, err
	}
	status, err := entity.ParseVoucherStatus(m.Status)
	if err != nil {
		return nil, err
	}

	return &entity.Voucher{
		ID:             m.ID,
		Code:           m.Code,
		DiscountValue:  m.DiscountValue,
		DiscountType:   discountType,
		ExpirationType: expirationType,
		Expiration:     m.Expiration,
		Status:         status,
		UsedCount:      m.UsedCount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}
