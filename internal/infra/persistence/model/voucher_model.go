package model

import (
	"time"

	"github.com/google/uuid"
)

// VoucherModel mirrors the 'vouchers' table. Status and the enum columns are
// stored as their stable string representations; the mapping lives on the
// entity enums, not in a driver-specific codec.
type VoucherModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Code           string    `gorm:"type:varchar(64);unique;not null"`
	DiscountValue  float64   `gorm:"not null"`
	DiscountType   string    `gorm:"type:varchar(16);not null"`
	ExpirationType string    `gorm:"type:varchar(16);not null"`
	Expiration     time.Time
	Status         string `gorm:"type:varchar(16);not null;index"`
	UsedCount      int    `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (VoucherModel) TableName() string {
	return "vouchers"
}
