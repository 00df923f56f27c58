package handler

import (
	"net/http"
	"strconv"

	"oxylink/internal/delivery/http/response"
	"oxylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for the admin console handlers.
type AdminHandler struct {
	uc usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// ListSellers returns sellers matching the status filter, newest first.
// Query param: status (all, pending, approved). Defaults to all.
func (h *AdminHandler) ListSellers(c echo.Context) error {
	status := c.QueryParam("status")
	if status == "" {
		status = usecase.SellerStatusAll
	}

	sellers, err := h.uc.ListSellers(c.Request().Context(), status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sellers, "Sellers retrieved successfully")
}

type setApprovalRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

// SetSellerApproval grants or revokes a seller's approval. Visibility is
// mirrored to the same value.
func (h *AdminHandler) SetSellerApproval(c echo.Context) error {
	adminID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Seller ID must be a valid UUID")
	}

	var req setApprovalRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetSellerApproval(c.Request().Context(), adminID, sellerID, *req.Approved); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Seller approval updated successfully")
}

// UpdateSeller applies independent field overrides to a seller profile.
func (h *AdminHandler) UpdateSeller(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Seller ID must be a valid UUID")
	}

	var input usecase.UpdateSellerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid seller input")
	}

	if err := h.uc.UpdateSeller(c.Request().Context(), sellerID, &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Seller updated successfully")
}

// Stats returns the marketplace-wide dashboard aggregates.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Stats retrieved successfully")
}

// RecentActivity returns the most recent activity feed entries, newest first.
// Query param: limit (optional).
func (h *AdminHandler) RecentActivity(c echo.Context) error {
	var limit int
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Query param 'limit' must be an integer")
		}
		limit = parsed
	}

	activities, err := h.uc.RecentActivity(c.Request().Context(), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, activities, "Activity retrieved successfully")
}
