package impl

import (
	"context"
	"testing"

	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/domain/repository"
	mockRepo "oxylink/internal/mocks/repository"
	mockSvc "oxylink/internal/mocks/service"
	"oxylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sellerServiceFixtures holds all test dependencies for seller service tests.
type sellerServiceFixtures struct {
	service       usecase.SellerUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	purchaseRepo  *mockRepo.MockPurchaseRepository
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestSellerService(t *testing.T) sellerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewSellerService(SellerServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		PurchaseRepo:  purchaseRepo,
		QRCodeService: qrcodeService,
		Logger:        newDiscardLogger(),
	})

	return sellerServiceFixtures{
		service:       service,
		txManager:     txManager,
		userRepo:      userRepo,
		purchaseRepo:  purchaseRepo,
		qrcodeService: qrcodeService,
	}
}

func expectSellerProfileUpdate(t *testing.T, fx sellerServiceFixtures, ctx context.Context, seller *entity.User) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
			mockUserRepo.EXPECT().
				UpdateSellerProfile(ctx, mock.AnythingOfType("*entity.SellerProfile")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)
}

func TestSellerService_UpdateStock_Success(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(2)

	expectSellerProfileUpdate(t, fx, ctx, seller)

	err := fx.service.UpdateStock(ctx, seller.ID, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, seller.SellerProfile.CylindersAvailable)
}

func TestSellerService_UpdateStock_NegativeRejected(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()

	err := fx.service.UpdateStock(ctx, uuid.New(), -1)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestSellerService_UpdateLocation_Success(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(2)
	location := entity.Coordinate{Latitude: 12.97, Longitude: 77.59}

	expectSellerProfileUpdate(t, fx, ctx, seller)

	err := fx.service.UpdateLocation(ctx, seller.ID, location)

	require.NoError(t, err)
	require.NotNil(t, seller.SellerProfile.Location)
	assert.Equal(t, location.Latitude, seller.SellerProfile.Location.Latitude)
	assert.Equal(t, location.Longitude, seller.SellerProfile.Location.Longitude)
}

func TestSellerService_UpdateLocation_InvalidCoordinates(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()

	err := fx.service.UpdateLocation(ctx, uuid.New(), entity.Coordinate{Latitude: 91, Longitude: 0})

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestSellerService_SetActive_Success(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(2)
	seller.SellerProfile.Active = false

	expectSellerProfileUpdate(t, fx, ctx, seller)

	err := fx.service.SetActive(ctx, seller.ID, true)

	require.NoError(t, err)
	assert.True(t, seller.SellerProfile.Active)
	// Approval stays untouched by the visibility toggle.
	assert.True(t, seller.SellerProfile.Approved)
}

func TestSellerService_UpdateLicense_PartialFields(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(2)
	seller.SellerProfile.LicenseNumber = "OLD-1"
	seller.SellerProfile.LicenseType = "retail"

	licenseNumber := "NEW-2"
	input := &usecase.UpdateLicenseInput{LicenseNumber: &licenseNumber}

	expectSellerProfileUpdate(t, fx, ctx, seller)

	err := fx.service.UpdateLicense(ctx, seller.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "NEW-2", seller.SellerProfile.LicenseNumber)
	assert.Equal(t, "retail", seller.SellerProfile.LicenseType)
}

func TestSellerService_UpdateProfile_NotASeller(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	buyer := newTestBuyer()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrSellerNotFound, "account is not a seller"))

	err := fx.service.SetActive(ctx, buyer.ID, true)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerNotFound))
}

func TestSellerService_ListOrders_DefaultLimit(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	sellerID := uuid.New()
	expected := []*entity.Purchase{{ID: uuid.New(), SellerID: sellerID}}

	fx.purchaseRepo.EXPECT().FindBySellerID(ctx, sellerID, 5).Return(expected, nil)

	orders, err := fx.service.ListOrders(ctx, sellerID, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestSellerService_ListOrders_ExplicitLimit(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.purchaseRepo.EXPECT().FindBySellerID(ctx, sellerID, 25).Return(nil, nil)

	_, err := fx.service.ListOrders(ctx, sellerID, 25)

	require.NoError(t, err)
}

func TestSellerService_LocationQR_Success(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(2)
	location := entity.Coordinate{Latitude: 12.97, Longitude: 77.59}
	seller.SellerProfile.Location = &location
	png := []byte{0x89, 0x50, 0x4e, 0x47}

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.qrcodeService.EXPECT().GenerateLocationQR(seller.ID, location).Return(png, nil)

	got, err := fx.service.LocationQR(ctx, seller.ID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestSellerService_LocationQR_NoLocation(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	seller := newPurchasableSeller(2)
	seller.SellerProfile.Location = nil

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)

	got, err := fx.service.LocationQR(ctx, seller.ID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerLocationNotSet))
}

func TestSellerService_LocationQR_NotFound(t *testing.T) {
	fx := createTestSellerService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, sellerID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.LocationQR(ctx, sellerID)

	assert.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrSellerNotFound))
}
