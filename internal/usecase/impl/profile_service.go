// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "oxylink/internal/delivery/context"
	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/domain/repository"
	"oxylink/internal/domain/service"
	"oxylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the complete user profile including role-specific data.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile updates the account fields and, for buyers, the delivery address.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) error {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Find the user
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Update the account fields
		if input.Name != nil {
			user.Name = *input.Name
		}
		if input.Phone != nil {
			user.Phone = *input.Phone
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		// 3. The delivery address only exists on buyer accounts
		if input.Address == nil {
			return nil
		}
		if user.BuyerProfile == nil {
			return errors.Wrap(domainerrors.ErrValidationFailed, "account has no delivery address")
		}

		user.BuyerProfile.Address = *input.Address
		if err := userRepo.UpdateBuyerProfile(ctx, user.BuyerProfile); err != nil {
			return errors.Wrap(err, "failed to update buyer profile")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to update user profile")
	}

	return nil
}

// ChangePassword re-verifies the current password before storing the new hash.
func (srv *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		srv.log(ctx).Warn("New password rejected by strength policy", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "new password does not meet security requirements")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, user.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrAuthNotFound, "no password credentials for account")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		// Re-authenticate before allowing the change.
		if !srv.hasher.Check(input.CurrentPassword, authRecord.PasswordHash) {
			return errors.Wrap(domainerrors.ErrWrongPassword, "current password is incorrect")
		}

		newHash, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}

		authRecord.PasswordHash = newHash
		if err := authRepo.UpdateAuthentication(ctx, authRecord); err != nil {
			return errors.Wrap(err, "failed to update authentication")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to change password", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to change password")
	}
	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}
