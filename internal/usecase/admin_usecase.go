// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"oxylink/internal/domain/entity"

	"github.com/google/uuid"
)

// Seller listing status filters for the admin console.
const (
	SellerStatusAll      = "all"
	SellerStatusPending  = "pending"
	SellerStatusApproved = "approved"
)

// --- Input DTOs ---

// UpdateSellerInput defines the per-field overrides on the admin seller edit page.
// Unlike the approval endpoint, Approved and Active are edited independently here.
// Nil fields are left unchanged.
type UpdateSellerInput struct {
	Approved           *bool    `json:"approved,omitempty"`
	Active             *bool    `json:"active,omitempty"`
	CylindersAvailable *int     `json:"cylinders_available,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	LicenseNumber      *string  `json:"license_number,omitempty"`
	LicenseeNameAddr   *string  `json:"licensee_name_addr,omitempty"`
	LicenseValidity    *string  `json:"license_validity,omitempty"`
	LicenseType        *string  `json:"license_type,omitempty"`
}

// --- Output DTOs ---

// AdminStats aggregates the marketplace figures shown on the admin dashboard.
type AdminStats struct {
	TotalUsers         int64 `json:"total_users"`
	TotalBuyers        int64 `json:"total_buyers"`
	TotalSellers       int64 `json:"total_sellers"`
	PendingApprovals   int64 `json:"pending_approvals"`
	TotalCylinders     int64 `json:"total_cylinders"`
	TotalPurchases     int64 `json:"total_purchases"`
	TotalCylindersSold int64 `json:"total_cylinders_sold"`
	TotalRevenue       int64 `json:"total_revenue"`
}

// AdminUsecase defines the interface for the admin console operations.
type AdminUsecase interface {
	// ListSellers returns sellers matching the status filter, newest first.
	ListSellers(ctx context.Context, status string) ([]*entity.User, error)

	// SetSellerApproval grants or revokes approval. Active is mirrored to the
	// same value, matching the approval console behavior.
	SetSellerApproval(ctx context.Context, adminID, sellerID uuid.UUID, approved bool) error

	// UpdateSeller applies independent field overrides to a seller profile.
	UpdateSeller(ctx context.Context, sellerID uuid.UUID, input *UpdateSellerInput) error

	// Stats returns the marketplace-wide dashboard aggregates.
	Stats(ctx context.Context) (*AdminStats, error)

	// RecentActivity returns the most recent activity feed entries, newest first.
	RecentActivity(ctx context.Context, limit int) ([]*entity.Activity, error)
}
