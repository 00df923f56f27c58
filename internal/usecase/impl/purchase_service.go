// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

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

// purchaseService implements the PurchaseUsecase interface.
type purchaseService struct {
	txManager           repository.TransactionManager
	purchaseRepo        repository.PurchaseRepository
	activityRepo        repository.ActivityRepository
	paymentService      service.PaymentService
	eventPublisher      service.EventPublisher
	notificationService service.NotificationService
	pricePerCylinder    int64
	logger              *slog.Logger
}

// PurchaseServiceParams holds dependencies for PurchaseService, injected by Fx.
type PurchaseServiceParams struct {
	fx.In

	TxManager           repository.TransactionManager
	PurchaseRepo        repository.PurchaseRepository
	ActivityRepo        repository.ActivityRepository
	PaymentService      service.PaymentService
	EventPublisher      service.EventPublisher
	NotificationService service.NotificationService
	Config              *config.Config
	Logger              *slog.Logger
}

// NewPurchaseService is the constructor for purchaseService.
func NewPurchaseService(params PurchaseServiceParams) usecase.PurchaseUsecase {
	pricePerCylinder := int64(50)
	if params.Config != nil && params.Config.Marketplace != nil && params.Config.Marketplace.PricePerCylinder > 0 {
		pricePerCylinder = params.Config.Marketplace.PricePerCylinder
	}

	return &purchaseService{
		txManager:           params.TxManager,
		purchaseRepo:        params.PurchaseRepo,
		activityRepo:        params.ActivityRepo,
		paymentService:      params.PaymentService,
		eventPublisher:      params.EventPublisher,
		notificationService: params.NotificationService,
		pricePerCylinder:    pricePerCylinder,
		logger:              params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *purchaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Purchase runs the full buyer checkout: validation, charge, then the atomic
// stock-decrement transaction. Post-commit side effects are best-effort and
// never fail a recorded purchase.
func (srv *purchaseService) Purchase(ctx context.Context, buyerID uuid.UUID, input *usecase.PurchaseInput) (*usecase.PurchaseOutput, error) {
	srv.log(ctx).Info("Starting purchase",
		slog.Any("buyerID", buyerID),
		slog.Any("sellerID", input.SellerID),
		slog.Int("quantity", input.Quantity),
	)

	// Validation before any I/O.
	if input.Quantity <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "quantity must be positive")
	}
	if !input.Card.Valid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidPaymentCard, "payment card details are malformed")
	}

	totalAmount := int64(input.Quantity) * srv.pricePerCylinder

	// Charge first. A failed charge means the stock transaction is never attempted.
	if err := srv.paymentService.Charge(ctx, input.Card, totalAmount); err != nil {
		srv.log(ctx).Warn("Payment declined", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "payment failed")
	}

	purchase, err := srv.executePurchase(ctx, buyerID, input, totalAmount)
	if err != nil {
		srv.log(ctx).Warn("Purchase transaction failed",
			slog.Any("buyerID", buyerID),
			slog.Any("sellerID", input.SellerID),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.publishPurchaseSideEffects(ctx, purchase)

	srv.log(ctx).Info("Purchase completed",
		slog.Any("purchaseID", purchase.ID),
		slog.Any("buyerID", buyerID),
		slog.Any("sellerID", purchase.SellerID),
	)

	return &usecase.PurchaseOutput{Purchase: purchase}, nil
}

// executePurchase is the atomic unit: seller checks, conditional stock
// decrement, purchase insert and the buyer address update either all commit
// or all roll back. Reads happen before writes.
func (srv *purchaseService) executePurchase(ctx context.Context, buyerID uuid.UUID, input *usecase.PurchaseInput, totalAmount int64) (*entity.Purchase, error) {
	var purchase *entity.Purchase

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		purchaseRepo := repoFactory.NewPurchaseRepository()

		// 1. Load and gate the seller.
		seller, err := userRepo.FindByID(ctx, input.SellerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrSellerNotFound, "seller not found")
			}

			return errors.Wrap(err, "failed to find seller")
		}
		if seller.SellerProfile == nil {
			return errors.Wrap(domainerrors.ErrSellerNotFound, "account is not a seller")
		}
		if !seller.SellerProfile.Visible() {
			return errors.Wrap(domainerrors.ErrSellerNotPurchasable, "seller is not accepting purchases")
		}

		// 2. Load the buyer for the address fallback and location snapshot.
		buyer, err := userRepo.FindByID(ctx, buyerID)
		if err != nil {
			return errors.Wrap(err, "failed to find buyer")
		}
		if buyer.BuyerProfile == nil {
			return errors.Wrap(domainerrors.ErrForbidden, "only buyer accounts can purchase")
		}

		deliveryAddress := input.DeliveryAddress
		if deliveryAddress == "" {
			deliveryAddress = buyer.BuyerProfile.Address
		}

		// 3. Conditional decrement. Zero rows means the stock changed underneath
		// us; the whole transaction aborts and the caller may retry.
		if err := userRepo.DecrementSellerStock(ctx, input.SellerID, input.Quantity); err != nil {
			if errors.Is(err, repository.ErrStockConflict) {
				return errors.Wrap(domainerrors.ErrInsufficientStock, "stock changed, please retry")
			}

			return errors.Wrap(err, "failed to decrement seller stock")
		}

		// 4. Record the purchase with the denormalized snapshot.
		purchase = &entity.Purchase{
			BuyerID:          buyer.ID,
			SellerID:         seller.ID,
			BuyerEmail:       buyer.Email,
			BuyerName:        buyer.Name,
			SellerName:       seller.Name,
			SellerPhone:      seller.Phone,
			Quantity:         input.Quantity,
			PricePerCylinder: srv.pricePerCylinder,
			TotalAmount:      totalAmount,
			Status:           entity.PurchaseStatusCompleted,
			PaymentCardLast4: input.Card.Last4(),
			BuyerAddress:     deliveryAddress,
			BuyerLocation:    buyer.BuyerProfile.Location,
			PurchaseDate:     time.Now().UTC(),
		}

		if err := purchaseRepo.Create(ctx, purchase); err != nil {
			return errors.Wrap(err, "failed to record purchase")
		}

		// 5. Remember a newly submitted delivery address on the buyer profile.
		if input.DeliveryAddress != "" && input.DeliveryAddress != buyer.BuyerProfile.Address {
			buyer.BuyerProfile.Address = input.DeliveryAddress
			if err := userRepo.UpdateBuyerProfile(ctx, buyer.BuyerProfile); err != nil {
				return errors.Wrap(err, "failed to update buyer address")
			}
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute purchase transaction")
	}

	return purchase, nil
}

// publishPurchaseSideEffects runs the post-commit notifications. Every step is
// best-effort: failures are logged and swallowed, the purchase already committed.
func (srv *purchaseService) publishPurchaseSideEffects(ctx context.Context, purchase *entity.Purchase) {
	activity := &entity.Activity{
		Type:      entity.ActivityPurchaseCompleted,
		ActorID:   purchase.BuyerID,
		SubjectID: purchase.SellerID,
		Message:   fmt.Sprintf("%s purchased %d cylinder(s) from %s", purchase.BuyerName, purchase.Quantity, purchase.SellerName),
	}
	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		srv.log(ctx).Warn("Failed to record purchase activity", slog.Any("purchaseID", purchase.ID), slog.Any("error", err))
	}

	event := &service.MarketplaceEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		Type:        service.EventTypePurchaseCompleted,
		PurchaseID:  purchase.ID.String(),
		BuyerID:     purchase.BuyerID.String(),
		SellerID:    purchase.SellerID.String(),
		Quantity:    purchase.Quantity,
		TotalAmount: purchase.TotalAmount,
	}
	if err := srv.eventPublisher.PublishMarketplaceEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish purchase event", slog.Any("purchaseID", purchase.ID), slog.Any("error", err))
	}

	topic := "seller-" + purchase.SellerID.String()
	body := fmt.Sprintf("%s ordered %d cylinder(s)", purchase.BuyerName, purchase.Quantity)
	data := map[string]string{
		"purchase_id": purchase.ID.String(),
		"quantity":    fmt.Sprintf("%d", purchase.Quantity),
	}
	if err := srv.notificationService.SendTopicNotification(ctx, topic, "New order received", body, data); err != nil {
		srv.log(ctx).Warn("Failed to push order notification", slog.Any("sellerID", purchase.SellerID), slog.Any("error", err))
	}
}

// ListPurchases returns the buyer's purchase history, newest first.
func (srv *purchaseService) ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	srv.log(ctx).Debug("Listing purchases", slog.Any("buyerID", buyerID))

	// Single query operation - use direct repository instance
	purchases, err := srv.purchaseRepo.FindByBuyerID(ctx, buyerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list purchases", slog.Any("buyerID", buyerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list purchases")
	}

	return purchases, nil
}
