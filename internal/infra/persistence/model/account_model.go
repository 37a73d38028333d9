package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are UUIDv7 assigned by the application.
type AccountModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_accounts_name"`
	Email       string    `gorm:"type:varchar(255)"`
	Avatar      string    `gorm:"type:text"`
	Elo         int       `gorm:"not null;default:1000"`
	Status      int       `gorm:"not null;default:0"`
	IsLogin     bool      `gorm:"column:is_login;not null;default:false"`
	AuthSource  string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_accounts_source_external,priority:1"`
	ExternalID  *string   `gorm:"type:varchar(64);uniqueIndex:idx_accounts_source_external,priority:2"`
	TOTPSeed    *string   `gorm:"column:totp_seed;type:varchar(64)"`
	TOTPEnabled bool      `gorm:"column:totp_enable;not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
