package qrcode

import (
	"fmt"

	"oxylink/internal/domain/entity"
	"oxylink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	mapBaseURL           string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, mapBaseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if mapBaseURL == "" {
		mapBaseURL = "https://www.google.com/maps/search/?api=1&query="
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		mapBaseURL:           mapBaseURL,
	}
}

// GenerateLocationQR generates a QR code encoding a map link to the seller's pickup location.
// Buyers scan it to open directions on their own device.
func (s *qrcodeService) GenerateLocationQR(sellerID uuid.UUID, location entity.Coordinate) ([]byte, error) {
	if !location.IsValid() {
		return nil, fmt.Errorf("invalid location for seller %s", sellerID)
	}

	link := fmt.Sprintf("%s%f,%f", s.mapBaseURL, location.Latitude, location.Longitude)

	qrCode, err := qrcode.New(link, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
