package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseModel mirrors the 'purchases' table. Rows are append-only; the
// buyer and seller display columns are snapshots taken at purchase time.
type PurchaseModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	SellerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	BuyerEmail       string    `gorm:"type:varchar(255);not null"`
	BuyerName        string    `gorm:"type:varchar(100)"`
	SellerName       string    `gorm:"type:varchar(100)"`
	SellerPhone      string    `gorm:"type:varchar(30)"`
	Quantity         int       `gorm:"not null;check:quantity > 0"`
	PricePerCylinder int64     `gorm:"not null"`
	TotalAmount      int64     `gorm:"not null"`
	Status           string    `gorm:"type:varchar(20);not null"`
	PaymentCardLast4 string    `gorm:"type:varchar(4)"`
	BuyerAddress     string    `gorm:"type:text"`
	BuyerLatitude    *float64  `gorm:"type:double precision"`
	BuyerLongitude   *float64  `gorm:"type:double precision"`
	PurchaseDate     time.Time `gorm:"not null;index;autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
