package handler

import (
	"net/http"
	"strconv"

	"oxylink/internal/delivery/http/response"
	"oxylink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for the buyer seller search.
type SearchHandler struct {
	uc usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// FindNearbySellers returns purchasable sellers around the given origin,
// sorted ascending by distance. Query params: lat, lng, radius_km (optional).
func (h *SearchHandler) FindNearbySellers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Query param 'lat' must be a number")
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Query param 'lng' must be a number")
	}

	var radiusKm float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Query param 'radius_km' must be a number")
		}
	}

	sellers, err := h.uc.FindNearbySellers(c.Request().Context(), &usecase.NearbySearchInput{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radiusKm,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sellers, "Nearby sellers retrieved successfully")
}
