// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"oxylink/config"
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

// sellerService implements the SellerUsecase interface.
type sellerService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	purchaseRepo      repository.PurchaseRepository
	qrcodeService     service.QRCodeService
	recentOrdersLimit int
	logger            *slog.Logger
}

// SellerServiceParams holds dependencies for SellerService, injected by Fx.
type SellerServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	PurchaseRepo  repository.PurchaseRepository
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewSellerService is the constructor for sellerService.
func NewSellerService(params SellerServiceParams) usecase.SellerUsecase {
	recentOrdersLimit := 5
	if params.Config != nil && params.Config.Marketplace != nil && params.Config.Marketplace.SellerRecentOrders > 0 {
		recentOrdersLimit = params.Config.Marketplace.SellerRecentOrders
	}

	return &sellerService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		purchaseRepo:      params.PurchaseRepo,
		qrcodeService:     params.QRCodeService,
		recentOrdersLimit: recentOrdersLimit,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sellerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// updateProfile loads the seller profile, applies mutate and saves it back.
// Writes here are deliberately last-write-wins; only purchases decrement
// stock conditionally.
func (srv *sellerService) updateProfile(ctx context.Context, sellerID uuid.UUID, mutate func(*entity.SellerProfile) error) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, sellerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrSellerNotFound, "seller not found")
			}

			return errors.Wrap(err, "failed to find seller")
		}
		if user.SellerProfile == nil {
			return errors.Wrap(domainerrors.ErrSellerNotFound, "account is not a seller")
		}

		if err := mutate(user.SellerProfile); err != nil {
			return err
		}

		if err := userRepo.UpdateSellerProfile(ctx, user.SellerProfile); err != nil {
			return errors.Wrap(err, "failed to update seller profile")
		}

		return nil
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute seller profile update")
	}

	return nil
}

// UpdateStock sets the seller's available cylinder count.
func (srv *sellerService) UpdateStock(ctx context.Context, sellerID uuid.UUID, cylinders int) error {
	srv.log(ctx).Info("Updating seller stock", slog.Any("sellerID", sellerID), slog.Int("cylinders", cylinders))

	if cylinders < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "stock cannot be negative")
	}

	return srv.updateProfile(ctx, sellerID, func(profile *entity.SellerProfile) error {
		profile.CylindersAvailable = cylinders

		return nil
	})
}

// UpdateLocation sets the seller's pickup coordinates.
func (srv *sellerService) UpdateLocation(ctx context.Context, sellerID uuid.UUID, location entity.Coordinate) error {
	srv.log(ctx).Info("Updating seller location", slog.Any("sellerID", sellerID))

	if !location.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidCoordinates, "pickup location is not a valid coordinate")
	}

	return srv.updateProfile(ctx, sellerID, func(profile *entity.SellerProfile) error {
		profile.Location = &entity.Coordinate{Latitude: location.Latitude, Longitude: location.Longitude}

		return nil
	})
}

// SetActive toggles the seller's marketplace visibility.
// Approval stays admin-controlled; an unapproved seller remains invisible.
func (srv *sellerService) SetActive(ctx context.Context, sellerID uuid.UUID, active bool) error {
	srv.log(ctx).Info("Toggling seller visibility", slog.Any("sellerID", sellerID), slog.Bool("active", active))

	return srv.updateProfile(ctx, sellerID, func(profile *entity.SellerProfile) error {
		profile.Active = active

		return nil
	})
}

// UpdateLicense edits the informational license fields.
func (srv *sellerService) UpdateLicense(ctx context.Context, sellerID uuid.UUID, input *usecase.UpdateLicenseInput) error {
	srv.log(ctx).Info("Updating seller license", slog.Any("sellerID", sellerID))

	return srv.updateProfile(ctx, sellerID, func(profile *entity.SellerProfile) error {
		if input.LicenseNumber != nil {
			profile.LicenseNumber = *input.LicenseNumber
		}
		if input.LicenseeNameAddr != nil {
			profile.LicenseeNameAddr = *input.LicenseeNameAddr
		}
		if input.LicenseValidity != nil {
			profile.LicenseValidity = *input.LicenseValidity
		}
		if input.LicenseType != nil {
			profile.LicenseType = *input.LicenseType
		}

		return nil
	})
}

// ListOrders returns orders received by the seller, newest first.
// A limit of zero or less falls back to the configured recent-orders count.
func (srv *sellerService) ListOrders(ctx context.Context, sellerID uuid.UUID, limit int) ([]*entity.Purchase, error) {
	srv.log(ctx).Debug("Listing seller orders", slog.Any("sellerID", sellerID), slog.Int("limit", limit))

	if limit <= 0 {
		limit = srv.recentOrdersLimit
	}

	// Single query operation - use direct repository instance
	orders, err := srv.purchaseRepo.FindBySellerID(ctx, sellerID, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list seller orders", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list seller orders")
	}

	return orders, nil
}

// LocationQR renders a PNG QR code encoding a map link to the seller's pickup location.
func (srv *sellerService) LocationQR(ctx context.Context, sellerID uuid.UUID) ([]byte, error) {
	srv.log(ctx).Debug("Generating seller location QR", slog.Any("sellerID", sellerID))

	user, err := srv.userRepo.FindByID(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSellerNotFound, "seller not found")
		}

		return nil, errors.Wrap(err, "failed to find seller")
	}
	if user.SellerProfile == nil {
		return nil, errors.Wrap(domainerrors.ErrSellerNotFound, "account is not a seller")
	}
	if user.SellerProfile.Location == nil {
		return nil, errors.Wrap(domainerrors.ErrSellerLocationNotSet, "seller has no pickup location")
	}

	png, err := srv.qrcodeService.GenerateLocationQR(sellerID, *user.SellerProfile.Location)
	if err != nil {
		srv.log(ctx).Error("Failed to generate location QR", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate location QR")
	}

	return png, nil
}
