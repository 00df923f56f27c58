// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"oxylink/config"
	deliverycontext "oxylink/internal/delivery/context"
	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/domain/repository"
	"oxylink/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	userRepo        repository.UserRepository
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	defaultRadiusKm, maxRadiusKm := 10.0, 100.0
	if params.Config != nil && params.Config.Marketplace != nil {
		if params.Config.Marketplace.DefaultRadiusKm > 0 {
			defaultRadiusKm = params.Config.Marketplace.DefaultRadiusKm
		}
		if params.Config.Marketplace.MaxRadiusKm > 0 {
			maxRadiusKm = params.Config.Marketplace.MaxRadiusKm
		}
	}

	return &searchService{
		userRepo:        params.UserRepo,
		defaultRadiusKm: defaultRadiusKm,
		maxRadiusKm:     maxRadiusKm,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// FindNearbySellers returns purchasable sellers within the radius, closest first.
// Validation happens before any I/O.
func (srv *searchService) FindNearbySellers(ctx context.Context, input *usecase.NearbySearchInput) ([]*usecase.NearbySeller, error) {
	origin := entity.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !origin.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidCoordinates, "search origin is not a valid coordinate")
	}

	radiusKm := input.RadiusKm
	if radiusKm == 0 {
		radiusKm = srv.defaultRadiusKm
	}
	if radiusKm <= 0 || math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "search radius must be positive")
	}
	if radiusKm > srv.maxRadiusKm {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "search radius exceeds the allowed maximum")
	}

	candidates, err := srv.userRepo.FindVisibleSellers(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to load seller candidates", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load seller candidates")
	}

	results := rankNearbySellers(origin, radiusKm, candidates)

	srv.log(ctx).Debug("Nearby seller search completed",
		slog.Float64("radiusKm", radiusKm),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(results)),
	)

	return results, nil
}

// rankNearbySellers is the pure ranking core of the buyer search. It keeps
// purchasable sellers with a well-formed location within radiusKm of the
// origin and sorts them ascending by great-circle distance. The sort is
// stable, so equidistant sellers keep their candidate order. Sellers without
// a usable location are silently skipped.
func rankNearbySellers(origin entity.Coordinate, radiusKm float64, candidates []*entity.User) []*usecase.NearbySeller {
	results := make([]*usecase.NearbySeller, 0, len(candidates))

	for _, candidate := range candidates {
		profile := candidate.SellerProfile
		if profile == nil || !profile.Purchasable() {
			continue
		}
		if profile.Location == nil || !profile.Location.IsValid() {
			continue
		}

		distanceKm := haversineKm(origin, *profile.Location)
		if distanceKm > radiusKm {
			continue
		}

		results = append(results, &usecase.NearbySeller{
			Seller:     candidate,
			DistanceKm: distanceKm,
		})
	}

	// Sort on the exact distance; rounding happens after so sellers that
	// share a rounded value still order by true distance.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	for _, result := range results {
		result.DistanceKm = roundDistance(result.DistanceKm)
	}

	return results
}

// haversineKm computes the great-circle distance between two coordinates in kilometers.
func haversineKm(from, to entity.Coordinate) float64 {
	meters := geo.DistanceHaversine(
		orb.Point{from.Longitude, from.Latitude},
		orb.Point{to.Longitude, to.Latitude},
	)

	return meters / 1000
}

// roundDistance rounds a distance to two decimal places for presentation.
func roundDistance(km float64) float64 {
	return math.Round(km*100) / 100
}
