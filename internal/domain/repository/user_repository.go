// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"oxylink/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrStockConflict is returned when a conditional stock decrement matches no row,
	// meaning the seller's stock changed concurrently and is now insufficient.
	ErrStockConflict = errors.New("insufficient stock for decrement")
)

// SellerListFilter narrows admin seller listings.
// A nil Approved lists every seller regardless of approval state.
type SellerListFilter struct {
	Approved *bool
}

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user with their role profile by unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user with their role profile by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity, including its role profile, to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user's account fields in the storage.
	Update(ctx context.Context, user *entity.User) error

	// UpdateBuyerProfile modifies an existing buyer profile.
	UpdateBuyerProfile(ctx context.Context, profile *entity.BuyerProfile) error

	// UpdateSellerProfile modifies an existing seller profile.
	UpdateSellerProfile(ctx context.Context, profile *entity.SellerProfile) error

	// FindSellers retrieves seller accounts matching the filter, newest first.
	FindSellers(ctx context.Context, filter SellerListFilter) ([]*entity.User, error)

	// FindVisibleSellers retrieves approved, active sellers that have a pickup
	// location set. This is the candidate set for the buyer radius search.
	FindVisibleSellers(ctx context.Context) ([]*entity.User, error)

	// DecrementSellerStock atomically subtracts quantity from a seller's stock.
	// The decrement only applies when the remaining stock covers the quantity;
	// otherwise no row is touched and ErrStockConflict is returned.
	DecrementSellerStock(ctx context.Context, sellerID uuid.UUID, quantity int) error

	// CountByRole returns the number of accounts holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)

	// SumSellerStock returns the total cylinders currently listed across all sellers.
	SumSellerStock(ctx context.Context) (int64, error)

	// CountPendingSellers returns the number of sellers awaiting approval.
	CountPendingSellers(ctx context.Context) (int64, error)
}
