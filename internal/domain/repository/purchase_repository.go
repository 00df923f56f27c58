// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"oxylink/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseStats aggregates purchase figures for the admin dashboard.
type PurchaseStats struct {
	TotalPurchases     int64
	TotalCylindersSold int64
	TotalRevenue       int64
}

// PurchaseRepository defines the standard operations for purchase persistence.
// Purchase records are append-only; there is no update or delete.
type PurchaseRepository interface {
	// Create persists a new completed purchase record.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// FindByBuyerID retrieves all purchases made by a buyer, most recent first.
	FindByBuyerID(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error)

	// FindBySellerID retrieves purchases received by a seller, most recent first.
	// A limit of zero or less returns all records.
	FindBySellerID(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entity.Purchase, error)

	// Stats returns marketplace-wide purchase aggregates.
	Stats(ctx context.Context) (*PurchaseStats, error)
}
