package service

import (
	"oxylink/internal/domain/entity"

	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateLocationQR generates a QR code encoding a map link to the seller's pickup location.
	GenerateLocationQR(sellerID uuid.UUID, location entity.Coordinate) ([]byte, error)
}
