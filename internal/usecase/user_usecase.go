// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"oxylink/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterBuyerInput defines the data required to register a new buyer.
type RegisterBuyerInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
	Address  string
}

// RegisterSellerInput defines the data required to register a new seller.
// Sellers start unapproved, inactive and with zero stock; an admin must
// approve them before they appear in buyer searches.
type RegisterSellerInput struct {
	Name             string
	Email            string
	Phone            string
	Password         string
	LicenseNumber    string
	LicenseeNameAddr string
	LicenseValidity  string
	LicenseType      string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput defines the data required to log out a session.
type LogoutInput struct {
	RefreshToken string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns the newly issued access token.
// The refresh token itself remains unchanged.
type RefreshTokenOutput struct {
	AccessToken string
}

// UserUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterBuyer(ctx context.Context, input *RegisterBuyerInput) (*RegisterOutput, error)
	RegisterSeller(ctx context.Context, input *RegisterSellerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
