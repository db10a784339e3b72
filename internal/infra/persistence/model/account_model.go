package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v7(), and the unique index on gstin is what arbitrates two
// racing registrations.
type AccountModel struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	GSTIN        string       `gorm:"column:gstin;type:varchar(15);uniqueIndex;not null"`
	BusinessName string       `gorm:"type:varchar(255);not null"`
	TradeName    string       `gorm:"type:varchar(255);not null"`
	LegalName    string       `gorm:"type:varchar(255);not null"`
	Address      AddressModel `gorm:"embedded;embeddedPrefix:address_"`
	Status       string       `gorm:"type:varchar(10);not null;default:'Active';check:status IN ('Active','Inactive')"`
	PasswordHash string       `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// AddressModel holds the principal-place-of-business columns embedded in the
// accounts table. All columns are NOT NULL with empty-string defaults so an
// address is never partially absent.
type AddressModel struct {
	BuildingName   string `gorm:"type:varchar(255);not null;default:''"`
	Street         string `gorm:"type:varchar(255);not null;default:''"`
	Locality       string `gorm:"type:varchar(255);not null;default:''"`
	BuildingNumber string `gorm:"type:varchar(64);not null;default:''"`
	StateCode      string `gorm:"type:varchar(8);not null;default:''"`
	PostalCode     string `gorm:"type:varchar(16);not null;default:''"`
}
