// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"oxylink/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) error
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the data required to update an account profile.
// The role never changes; Address only applies to buyer accounts.
type UpdateProfileInput struct {
	Name    *string `json:"name,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// ChangePasswordInput defines the data required to change a password.
// The current password is re-verified before the change is applied.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
