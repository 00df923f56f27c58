package impl

import (
	"context"
	"testing"

	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	mockRepo "oxylink/internal/mocks/repository"
	"oxylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// searchServiceFixtures holds all test dependencies for search service tests.
type searchServiceFixtures struct {
	service  usecase.SearchUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewSearchService(SearchServiceParams{
		UserRepo: userRepo,
		Logger:   newDiscardLogger(),
	})

	return searchServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func newVisibleSeller(name string, lat, lng float64, stock int) *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:   id,
		Name: name,
		Role: entity.RoleSeller,
		SellerProfile: &entity.SellerProfile{
			UserID:             id,
			Approved:           true,
			Active:             true,
			CylindersAvailable: stock,
			Location:           &entity.Coordinate{Latitude: lat, Longitude: lng},
		},
	}
}

func TestSearchService_FindNearbySellers_SortsByDistance(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	far := newVisibleSeller("Far Seller", 0.05, 0, 3)
	near := newVisibleSeller("Near Seller", 0.01, 0, 8)

	fx.userRepo.EXPECT().
		FindVisibleSellers(ctx).
		Return([]*entity.User{far, near}, nil)

	results, err := fx.service.FindNearbySellers(ctx, &usecase.NearbySearchInput{
		Latitude:  0,
		Longitude: 0,
		RadiusKm:  10,
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Near Seller", results[0].Seller.Name)
	assert.Equal(t, "Far Seller", results[1].Seller.Name)
	assert.InDelta(t, 1.11, results[0].DistanceKm, 0.02)
	assert.InDelta(t, 5.57, results[1].DistanceKm, 0.02)
}

func TestSearchService_FindNearbySellers_ExcludesOutOfRadius(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	inside := newVisibleSeller("Inside", 0.02, 0, 5)
	outside := newVisibleSeller("Outside", 1.0, 0, 5)

	fx.userRepo.EXPECT().
		FindVisibleSellers(ctx).
		Return([]*entity.User{inside, outside}, nil)

	results, err := fx.service.FindNearbySellers(ctx, &usecase.NearbySearchInput{
		Latitude:  0,
		Longitude: 0,
		RadiusKm:  10,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Inside", results[0].Seller.Name)
}

func TestSearchService_FindNearbySellers_DefaultRadius(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	// Roughly 5.6 km out, inside the 10 km default.
	seller := newVisibleSeller("Seller", 0.05, 0, 5)

	fx.userRepo.EXPECT().
		FindVisibleSellers(ctx).
		Return([]*entity.User{seller}, nil)

	results, err := fx.service.FindNearbySellers(ctx, &usecase.NearbySearchInput{
		Latitude:  0,
		Longitude: 0,
		RadiusKm:  0,
	})

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchService_FindNearbySellers_InvalidOrigin(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()

	results, err := fx.service.FindNearbySellers(ctx, &usecase.NearbySearchInput{
		Latitude:  95,
		Longitude: 0,
		RadiusKm:  10,
	})

	assert.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestSearchService_FindNearbySellers_RadiusValidation(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()

	_, err := fx.service.FindNearbySellers(ctx, &usecase.NearbySearchInput{
		Latitude: 0, Longitude: 0, RadiusKm: -5,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.FindNearbySellers(ctx, &usecase.NearbySearchInput{
		Latitude: 0, Longitude: 0, RadiusKm: 150,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRankNearbySellers_FiltersNonPurchasable(t *testing.T) {
	origin := entity.Coordinate{Latitude: 0, Longitude: 0}

	unapproved := newVisibleSeller("Unapproved", 0.01, 0, 5)
	unapproved.SellerProfile.Approved = false

	inactive := newVisibleSeller("Inactive", 0.01, 0, 5)
	inactive.SellerProfile.Active = false

	outOfStock := newVisibleSeller("Out of stock", 0.01, 0, 0)

	noLocation := newVisibleSeller("No location", 0.01, 0, 5)
	noLocation.SellerProfile.Location = nil

	noProfile := &entity.User{ID: uuid.New(), Name: "No profile", Role: entity.RoleBuyer}

	purchasable := newVisibleSeller("Purchasable", 0.01, 0, 5)

	candidates := []*entity.User{unapproved, inactive, outOfStock, noLocation, noProfile, purchasable}
	results := rankNearbySellers(origin, 10, candidates)

	require.Len(t, results, 1)
	assert.Equal(t, "Purchasable", results[0].Seller.Name)
}

func TestRankNearbySellers_ZeroDistance(t *testing.T) {
	origin := entity.Coordinate{Latitude: 12.5, Longitude: 77.6}
	seller := newVisibleSeller("Colocated", 12.5, 77.6, 1)

	results := rankNearbySellers(origin, 10, []*entity.User{seller})

	require.Len(t, results, 1)
	assert.Zero(t, results[0].DistanceKm)
}

func TestRankNearbySellers_StableOrderForEquidistant(t *testing.T) {
	origin := entity.Coordinate{Latitude: 0, Longitude: 0}
	first := newVisibleSeller("First", 0.01, 0, 1)
	second := newVisibleSeller("Second", 0.01, 0, 1)

	results := rankNearbySellers(origin, 10, []*entity.User{first, second})

	require.Len(t, results, 2)
	assert.Equal(t, "First", results[0].Seller.Name)
	assert.Equal(t, "Second", results[1].Seller.Name)
}

func TestRankNearbySellers_OrdersByExactDistanceWithinRoundedBucket(t *testing.T) {
	origin := entity.Coordinate{Latitude: 0, Longitude: 0}
	// Both sellers round to the same two-decimal distance; the farther one
	// arrives first, so a sort on the rounded value would leave it first.
	farther := newVisibleSeller("Farther", 0.03003, 0, 1)
	nearer := newVisibleSeller("Nearer", 0.0300, 0, 1)

	results := rankNearbySellers(origin, 10, []*entity.User{farther, nearer})

	require.Len(t, results, 2)
	assert.Equal(t, results[0].DistanceKm, results[1].DistanceKm)
	assert.Equal(t, "Nearer", results[0].Seller.Name)
	assert.Equal(t, "Farther", results[1].Seller.Name)
}

func TestRankNearbySellers_RoundsToTwoDecimals(t *testing.T) {
	origin := entity.Coordinate{Latitude: 0, Longitude: 0}
	seller := newVisibleSeller("Seller", 0.0123, 0, 1)

	results := rankNearbySellers(origin, 10, []*entity.User{seller})

	require.Len(t, results, 1)
	rounded := results[0].DistanceKm
	assert.Equal(t, roundDistance(rounded), rounded)
}
