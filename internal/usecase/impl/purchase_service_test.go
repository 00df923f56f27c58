package impl

import (
	"context"
	"testing"
	"time"

	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/domain/repository"
	"oxylink/internal/domain/service"
	mockRepo "oxylink/internal/mocks/repository"
	mockSvc "oxylink/internal/mocks/service"
	"oxylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// purchaseServiceFixtures holds all test dependencies for purchase service tests.
type purchaseServiceFixtures struct {
	service             usecase.PurchaseUsecase
	txManager           *mockRepo.MockTransactionManager
	purchaseRepo        *mockRepo.MockPurchaseRepository
	activityRepo        *mockRepo.MockActivityRepository
	paymentService      *mockSvc.MockPaymentService
	eventPublisher      *mockSvc.MockEventPublisher
	notificationService *mockSvc.MockNotificationService
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	activityRepo := mockRepo.NewMockActivityRepository(t)
	paymentService := mockSvc.NewMockPaymentService(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	notificationService := mockSvc.NewMockNotificationService(t)

	service := NewPurchaseService(PurchaseServiceParams{
		TxManager:           txManager,
		PurchaseRepo:        purchaseRepo,
		ActivityRepo:        activityRepo,
		PaymentService:      paymentService,
		EventPublisher:      eventPublisher,
		NotificationService: notificationService,
		Logger:              newDiscardLogger(),
	})

	return purchaseServiceFixtures{
		service:             service,
		txManager:           txManager,
		purchaseRepo:        purchaseRepo,
		activityRepo:        activityRepo,
		paymentService:      paymentService,
		eventPublisher:      eventPublisher,
		notificationService: notificationService,
	}
}

// validTestCard builds a card from the three fields the purchase API collects.
func validTestCard() service.PaymentCard {
	return service.PaymentCard{
		Number: "4242424242424242",
		Expiry: "12/27",
		CVV:    "123",
	}
}

func newPurchasableSeller(stock int) *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:    id,
		Name:  "Test Seller",
		Phone: "555-0200",
		Role:  entity.RoleSeller,
		SellerProfile: &entity.SellerProfile{
			UserID:             id,
			Approved:           true,
			Active:             true,
			CylindersAvailable: stock,
		},
	}
}

func newTestBuyer() *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:    id,
		Name:  "Test Buyer",
		Email: "buyer@example.com",
		Role:  entity.RoleBuyer,
		BuyerProfile: &entity.BuyerProfile{
			UserID:  id,
			Address: "12 Oxygen Lane",
		},
	}
}

func TestPurchaseService_Purchase_Success(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(5)
	buyer := newTestBuyer()
	input := &usecase.PurchaseInput{
		SellerID: seller.ID,
		Quantity: 3,
		Card:     validTestCard(),
	}

	// Three cylinders at the default unit price of 50.
	fx.paymentService.EXPECT().Charge(ctx, input.Card, int64(150)).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPurchaseRepository().Return(mockPurchaseRepo)

			mockUserRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
			mockUserRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
			mockUserRepo.EXPECT().DecrementSellerStock(ctx, seller.ID, 3).Return(nil)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Run(func(ctx context.Context, purchase *entity.Purchase) {
					purchase.ID = uuid.New()
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.activityRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Activity")).
		Return(nil)
	fx.eventPublisher.EXPECT().
		PublishMarketplaceEvent(ctx, mock.AnythingOfType("*service.MarketplaceEvent")).
		Return(nil)
	fx.notificationService.EXPECT().
		SendTopicNotification(ctx, "seller-"+seller.ID.String(), "New order received", mock.Anything, mock.Anything).
		Return(nil)

	output, err := fx.service.Purchase(ctx, buyer.ID, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	purchase := output.Purchase
	assert.Equal(t, buyer.ID, purchase.BuyerID)
	assert.Equal(t, seller.ID, purchase.SellerID)
	assert.Equal(t, buyer.Email, purchase.BuyerEmail)
	assert.Equal(t, seller.Name, purchase.SellerName)
	assert.Equal(t, seller.Phone, purchase.SellerPhone)
	assert.Equal(t, 3, purchase.Quantity)
	assert.Equal(t, int64(50), purchase.PricePerCylinder)
	assert.Equal(t, int64(150), purchase.TotalAmount)
	assert.Equal(t, entity.PurchaseStatusCompleted, purchase.Status)
	assert.Equal(t, "4242", purchase.PaymentCardLast4)
	assert.Equal(t, buyer.BuyerProfile.Address, purchase.BuyerAddress)
	assert.False(t, purchase.PurchaseDate.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), purchase.PurchaseDate, time.Minute)
}

func TestPurchaseService_Purchase_NewAddressUpdatesBuyerProfile(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(5)
	buyer := newTestBuyer()
	input := &usecase.PurchaseInput{
		SellerID:        seller.ID,
		Quantity:        1,
		DeliveryAddress: "99 New Street",
		Card:            validTestCard(),
	}

	fx.paymentService.EXPECT().Charge(ctx, input.Card, int64(50)).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockPurchaseRepo := mockRepo.NewMockPurchaseRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPurchaseRepository().Return(mockPurchaseRepo)

			mockUserRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
			mockUserRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
			mockUserRepo.EXPECT().DecrementSellerStock(ctx, seller.ID, 1).Return(nil)

			mockPurchaseRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Purchase")).
				Return(nil)

			mockUserRepo.EXPECT().
				UpdateBuyerProfile(ctx, mock.AnythingOfType("*entity.BuyerProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	fx.activityRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Activity")).Return(nil)
	fx.eventPublisher.EXPECT().
		PublishMarketplaceEvent(ctx, mock.AnythingOfType("*service.MarketplaceEvent")).
		Return(nil)
	fx.notificationService.EXPECT().
		SendTopicNotification(ctx, "seller-"+seller.ID.String(), "New order received", mock.Anything, mock.Anything).
		Return(nil)

	output, err := fx.service.Purchase(ctx, buyer.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "99 New Street", output.Purchase.BuyerAddress)
	assert.Equal(t, "99 New Street", buyer.BuyerProfile.Address)
}

func TestPurchaseService_Purchase_InvalidQuantity(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	input := &usecase.PurchaseInput{
		SellerID: uuid.New(),
		Quantity: 0,
		Card:     validTestCard(),
	}

	output, err := fx.service.Purchase(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPurchaseService_Purchase_MalformedCard(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	card := validTestCard()
	card.Expiry = "13/27"
	input := &usecase.PurchaseInput{
		SellerID: uuid.New(),
		Quantity: 1,
		Card:     card,
	}

	output, err := fx.service.Purchase(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentCard))
}

func TestPurchaseService_Purchase_PaymentDeclined(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	input := &usecase.PurchaseInput{
		SellerID: uuid.New(),
		Quantity: 2,
		Card:     validTestCard(),
	}

	fx.paymentService.EXPECT().
		Charge(ctx, input.Card, int64(100)).
		Return(errors.Wrap(domainerrors.ErrPaymentFailed, "card declined"))

	output, err := fx.service.Purchase(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPaymentFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestPurchaseService_Purchase_StockConflict(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(1)
	buyer := newTestBuyer()
	input := &usecase.PurchaseInput{
		SellerID: seller.ID,
		Quantity: 2,
		Card:     validTestCard(),
	}

	fx.paymentService.EXPECT().Charge(ctx, input.Card, int64(100)).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPurchaseRepository().Return(mockRepo.NewMockPurchaseRepository(t))

			mockUserRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
			mockUserRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)
			mockUserRepo.EXPECT().
				DecrementSellerStock(ctx, seller.ID, 2).
				Return(repository.ErrStockConflict)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrInsufficientStock, "stock changed, please retry"))

	output, err := fx.service.Purchase(ctx, buyer.ID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInsufficientStock))
}

func TestPurchaseService_Purchase_SellerHidden(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(5)
	seller.SellerProfile.Active = false
	buyer := newTestBuyer()
	input := &usecase.PurchaseInput{
		SellerID: seller.ID,
		Quantity: 1,
		Card:     validTestCard(),
	}

	fx.paymentService.EXPECT().Charge(ctx, input.Card, int64(50)).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPurchaseRepository().Return(mockRepo.NewMockPurchaseRepository(t))

			mockUserRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSellerNotPurchasable, "seller is not accepting purchases"))

	output, err := fx.service.Purchase(ctx, buyer.ID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerNotPurchasable))
}

func TestPurchaseService_Purchase_SellerNotFound(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	input := &usecase.PurchaseInput{
		SellerID: sellerID,
		Quantity: 1,
		Card:     validTestCard(),
	}

	fx.paymentService.EXPECT().Charge(ctx, input.Card, int64(50)).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPurchaseRepository().Return(mockRepo.NewMockPurchaseRepository(t))

			mockUserRepo.EXPECT().FindByID(ctx, sellerID).Return(nil, repository.ErrUserNotFound)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSellerNotFound, "seller not found"))

	output, err := fx.service.Purchase(ctx, uuid.New(), input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerNotFound))
}

func TestPurchaseService_Purchase_BuyerAccountRequired(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(5)
	notABuyer := newPurchasableSeller(1)
	input := &usecase.PurchaseInput{
		SellerID: seller.ID,
		Quantity: 1,
		Card:     validTestCard(),
	}

	fx.paymentService.EXPECT().Charge(ctx, input.Card, int64(50)).Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewPurchaseRepository().Return(mockRepo.NewMockPurchaseRepository(t))

			mockUserRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
			mockUserRepo.EXPECT().FindByID(ctx, notABuyer.ID).Return(notABuyer, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrForbidden, "only buyer accounts can purchase"))

	output, err := fx.service.Purchase(ctx, notABuyer.ID, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPurchaseService_ListPurchases_Success(t *testing.T) {
	fx := createTestPurchaseService(t)

	ctx := context.Background()
	buyerID := uuid.New()
	expected := []*entity.Purchase{
		{ID: uuid.New(), BuyerID: buyerID, Quantity: 2},
	}

	fx.purchaseRepo.EXPECT().FindByBuyerID(ctx, buyerID).Return(expected, nil)

	purchases, err := fx.service.ListPurchases(ctx, buyerID)

	require.NoError(t, err)
	assert.Equal(t, expected, purchases)
}
