// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
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

const defaultActivityLimit = 20

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	purchaseRepo   repository.PurchaseRepository
	activityRepo   repository.ActivityRepository
	eventPublisher service.EventPublisher
	logger         *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	PurchaseRepo   repository.PurchaseRepository
	ActivityRepo   repository.ActivityRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		purchaseRepo:   params.PurchaseRepo,
		activityRepo:   params.ActivityRepo,
		eventPublisher: params.EventPublisher,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSellers returns sellers matching the status filter, newest first.
func (srv *adminService) ListSellers(ctx context.Context, status string) ([]*entity.User, error) {
	srv.log(ctx).Debug("Listing sellers", slog.String("status", status))

	var filter repository.SellerListFilter
	switch status {
	case usecase.SellerStatusAll, "":
		// No approval filter.
	case usecase.SellerStatusPending:
		approved := false
		filter.Approved = &approved
	case usecase.SellerStatusApproved:
		approved := true
		filter.Approved = &approved
	default:
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown seller status filter: %q", status)
	}

	// Single query operation - use direct repository instance
	sellers, err := srv.userRepo.FindSellers(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list sellers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list sellers")
	}

	return sellers, nil
}

// SetSellerApproval grants or revokes approval and mirrors Active to the same
// value, matching the approval console behavior. The independent Active toggle
// lives on UpdateSeller.
func (srv *adminService) SetSellerApproval(ctx context.Context, adminID, sellerID uuid.UUID, approved bool) error {
	srv.log(ctx).Info("Setting seller approval",
		slog.Any("adminID", adminID),
		slog.Any("sellerID", sellerID),
		slog.Bool("approved", approved),
	)

	var sellerName string

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
		sellerName = user.Name

		user.SellerProfile.Approved = approved
		user.SellerProfile.Active = approved

		if err := userRepo.UpdateSellerProfile(ctx, user.SellerProfile); err != nil {
			return errors.Wrap(err, "failed to update seller profile")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to set seller approval", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to set seller approval")
	}

	srv.recordApprovalSideEffects(ctx, adminID, sellerID, sellerName, approved)

	return nil
}

// recordApprovalSideEffects appends the feed entry and publishes the approval
// event. Best-effort: the approval itself already committed.
func (srv *adminService) recordApprovalSideEffects(ctx context.Context, adminID, sellerID uuid.UUID, sellerName string, approved bool) {
	activityType := entity.ActivitySellerApproved
	eventType := service.EventTypeSellerApproved
	message := fmt.Sprintf("Seller approved: %s", sellerName)
	if !approved {
		activityType = entity.ActivitySellerUnapproved
		eventType = service.EventTypeSellerUnapproved
		message = fmt.Sprintf("Seller approval revoked: %s", sellerName)
	}

	activity := &entity.Activity{
		Type:      activityType,
		ActorID:   adminID,
		SubjectID: sellerID,
		Message:   message,
	}
	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		srv.log(ctx).Warn("Failed to record approval activity", slog.Any("sellerID", sellerID), slog.Any("error", err))
	}

	event := &service.MarketplaceEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      eventType,
		SellerID:  sellerID.String(),
	}
	if err := srv.eventPublisher.PublishMarketplaceEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish approval event", slog.Any("sellerID", sellerID), slog.Any("error", err))
	}
}

// UpdateSeller applies independent field overrides from the admin edit page.
// Unlike SetSellerApproval, Approved and Active do not mirror each other here.
func (srv *adminService) UpdateSeller(ctx context.Context, sellerID uuid.UUID, input *usecase.UpdateSellerInput) error {
	srv.log(ctx).Info("Updating seller as admin", slog.Any("sellerID", sellerID))

	if input.CylindersAvailable != nil && *input.CylindersAvailable < 0 {
		return errors.Wrap(domainerrors.ErrValidationFailed, "stock cannot be negative")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return errors.Wrap(domainerrors.ErrValidationFailed, "latitude and longitude must be set together")
	}

	var location *entity.Coordinate
	if input.Latitude != nil && input.Longitude != nil {
		location = &entity.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
		if !location.IsValid() {
			return errors.Wrap(domainerrors.ErrInvalidCoordinates, "pickup location is not a valid coordinate")
		}
	}

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

		profile := user.SellerProfile
		if input.Approved != nil {
			profile.Approved = *input.Approved
		}
		if input.Active != nil {
			profile.Active = *input.Active
		}
		if input.CylindersAvailable != nil {
			profile.CylindersAvailable = *input.CylindersAvailable
		}
		if location != nil {
			profile.Location = location
		}
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

		if err := userRepo.UpdateSellerProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to update seller profile")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to update seller as admin", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return errors.Wrap(err, "failed to update seller")
	}

	return nil
}

// Stats returns the marketplace-wide dashboard aggregates.
func (srv *adminService) Stats(ctx context.Context) (*usecase.AdminStats, error) {
	srv.log(ctx).Debug("Collecting admin stats")

	stats := &usecase.AdminStats{}

	totalBuyers, err := srv.userRepo.CountByRole(ctx, entity.RoleBuyer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count buyers")
	}
	totalSellers, err := srv.userRepo.CountByRole(ctx, entity.RoleSeller)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sellers")
	}
	pending, err := srv.userRepo.CountPendingSellers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending sellers")
	}
	totalCylinders, err := srv.userRepo.SumSellerStock(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum seller stock")
	}
	purchaseStats, err := srv.purchaseRepo.Stats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load purchase stats")
	}

	stats.TotalBuyers = totalBuyers
	stats.TotalSellers = totalSellers
	stats.TotalUsers = totalBuyers + totalSellers
	stats.PendingApprovals = pending
	stats.TotalCylinders = totalCylinders
	stats.TotalPurchases = purchaseStats.TotalPurchases
	stats.TotalCylindersSold = purchaseStats.TotalCylindersSold
	stats.TotalRevenue = purchaseStats.TotalRevenue

	return stats, nil
}

// RecentActivity returns the most recent activity feed entries, newest first.
func (srv *adminService) RecentActivity(ctx context.Context, limit int) ([]*entity.Activity, error) {
	srv.log(ctx).Debug("Listing recent activity", slog.Int("limit", limit))

	if limit <= 0 {
		limit = defaultActivityLimit
	}

	// Single query operation - use direct repository instance
	activities, err := srv.activityRepo.ListRecent(ctx, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list recent activity", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list recent activity")
	}

	return activities, nil
}
