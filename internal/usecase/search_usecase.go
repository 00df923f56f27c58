// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"oxylink/internal/domain/entity"
)

// --- Input DTOs ---

// NearbySearchInput defines the parameters of a buyer radius search.
// A RadiusKm of zero falls back to the configured default radius.
type NearbySearchInput struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// --- Output DTOs ---

// NearbySeller is one ranked search result.
type NearbySeller struct {
	Seller     *entity.User `json:"seller"`
	DistanceKm float64      `json:"distance_km"`
}

// SearchUsecase defines the interface for the buyer seller search.
type SearchUsecase interface {
	// FindNearbySellers returns purchasable sellers within the radius,
	// sorted ascending by great-circle distance from the origin.
	FindNearbySellers(ctx context.Context, input *NearbySearchInput) ([]*NearbySeller, error)
}
