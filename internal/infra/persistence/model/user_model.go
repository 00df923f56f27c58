package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	Phone     string    `gorm:"type:varchar(30)"`
	Role      string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	BuyerProfile    *BuyerProfileModel    `gorm:"foreignKey:UserID"`
	SellerProfile   *SellerProfileModel   `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BuyerProfileModel mirrors the 'buyer_profiles' table. UserID references users.id (UUID).
type BuyerProfileModel struct {
	UserID    uuid.UUID `gorm:"primaryKey"`
	Address   string    `gorm:"type:text"`
	Latitude  *float64  `gorm:"type:double precision"`
	Longitude *float64  `gorm:"type:double precision"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuyerProfileModel) TableName() string {
	return "buyer_profiles"
}

// SellerProfileModel mirrors the 'seller_profiles' table. UserID references users.id (UUID).
// CylindersAvailable carries a CHECK constraint so the database itself rejects negative stock.
type SellerProfileModel struct {
	UserID             uuid.UUID `gorm:"primaryKey"`
	Approved           bool      `gorm:"not null;default:false;index"`
	Active             bool      `gorm:"not null;default:false"`
	CylindersAvailable int       `gorm:"not null;default:0;check:cylinders_available >= 0"`
	Latitude           *float64  `gorm:"type:double precision"`
	Longitude          *float64  `gorm:"type:double precision"`
	LicenseNumber      string    `gorm:"type:varchar(100)"`
	LicenseeNameAddr   string    `gorm:"type:text"`
	LicenseValidity    string    `gorm:"type:varchar(100)"`
	LicenseType        string    `gorm:"type:varchar(100)"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (SellerProfileModel) TableName() string {
	return "seller_profiles"
}
