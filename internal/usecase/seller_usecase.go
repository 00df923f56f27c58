// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"oxylink/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateLicenseInput defines the informational license fields a seller may edit.
// Nil fields are left unchanged.
type UpdateLicenseInput struct {
	LicenseNumber    *string `json:"license_number,omitempty"`
	LicenseeNameAddr *string `json:"licensee_name_addr,omitempty"`
	LicenseValidity  *string `json:"license_validity,omitempty"`
	LicenseType      *string `json:"license_type,omitempty"`
}

// SellerUsecase defines the interface for seller self-service operations.
type SellerUsecase interface {
	// UpdateStock sets the seller's available cylinder count. Last write wins.
	UpdateStock(ctx context.Context, sellerID uuid.UUID, cylinders int) error

	// UpdateLocation sets the seller's pickup coordinates.
	UpdateLocation(ctx context.Context, sellerID uuid.UUID, location entity.Coordinate) error

	// SetActive toggles the seller's marketplace visibility.
	SetActive(ctx context.Context, sellerID uuid.UUID, active bool) error

	// UpdateLicense edits the informational license fields.
	UpdateLicense(ctx context.Context, sellerID uuid.UUID, input *UpdateLicenseInput) error

	// ListOrders returns orders received by the seller, newest first.
	// A limit of zero or less returns all orders.
	ListOrders(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entity.Purchase, error)

	// LocationQR renders a PNG QR code encoding a map link to the seller's
	// pickup location.
	LocationQR(ctx context.Context, sellerID uuid.UUID) ([]byte, error)
}
