package handler

import (
	"net/http"
	"strconv"

	"oxylink/internal/delivery/http/response"
	"oxylink/internal/domain/entity"
	"oxylink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for seller self-service handlers.
type SellerHandler struct {
	uc usecase.SellerUsecase
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.SellerUsecase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

type updateStockRequest struct {
	CylindersAvailable *int `json:"cylinders_available" validate:"required"`
}

// UpdateStock sets the seller's available cylinder count.
func (h *SellerHandler) UpdateStock(c echo.Context) error {
	sellerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateStock(c.Request().Context(), sellerID, *req.CylindersAvailable); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Stock updated successfully")
}

type updateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required"`
	Longitude *float64 `json:"longitude" validate:"required"`
}

// UpdateLocation sets the seller's pickup coordinates.
func (h *SellerHandler) UpdateLocation(c echo.Context) error {
	sellerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdateLocation(c.Request().Context(), sellerID, entity.Coordinate{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Location updated successfully")
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// SetActive toggles the seller's marketplace visibility.
func (h *SellerHandler) SetActive(c echo.Context) error {
	sellerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	var req setActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid visibility input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetActive(c.Request().Context(), sellerID, *req.Active); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Visibility updated successfully")
}

// UpdateLicense edits the seller's informational license fields.
func (h *SellerHandler) UpdateLicense(c echo.Context) error {
	sellerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	var input usecase.UpdateLicenseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid license input")
	}

	if err := h.uc.UpdateLicense(c.Request().Context(), sellerID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "License details updated successfully")
}

// ListOrders returns orders received by the seller, newest first.
// Query param: limit (optional).
func (h *SellerHandler) ListOrders(c echo.Context) error {
	sellerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	var limit int
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Query param 'limit' must be an integer")
		}
		limit = parsed
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), sellerID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved successfully")
}

// LocationQR renders a PNG QR code encoding a map link to the seller's
// pickup location.
func (h *SellerHandler) LocationQR(c echo.Context) error {
	sellerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	png, err := h.uc.LocationQR(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
