// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"oxylink/internal/domain/entity"
	"oxylink/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// PurchaseInput defines the data required to purchase cylinders from a seller.
// DeliveryAddress is optional; when empty, the buyer's stored address is used.
type PurchaseInput struct {
	SellerID        uuid.UUID
	Quantity        int
	DeliveryAddress string
	Card            service.PaymentCard
}

// --- Output DTOs ---

// PurchaseOutput returns the recorded purchase after a successful transaction.
type PurchaseOutput struct {
	Purchase *entity.Purchase
}

// PurchaseUsecase defines the interface for buyer purchase operations.
type PurchaseUsecase interface {
	// Purchase charges the card, then atomically decrements the seller's stock
	// and records the purchase. A stock conflict is surfaced as a retryable error.
	Purchase(ctx context.Context, buyerID uuid.UUID, input *PurchaseInput) (*PurchaseOutput, error)

	// ListPurchases returns the buyer's purchase history, newest first.
	ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error)
}
