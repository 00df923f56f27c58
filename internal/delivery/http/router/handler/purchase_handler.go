package handler

import (
	"net/http"

	"oxylink/internal/delivery/http/response"
	"oxylink/internal/domain/service"
	"oxylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PurchaseHandler holds dependencies for buyer purchase handlers.
type PurchaseHandler struct {
	uc usecase.PurchaseUsecase
}

// NewPurchaseHandler is the constructor for PurchaseHandler, injected by Fx.
func NewPurchaseHandler(uc usecase.PurchaseUsecase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

type purchaseRequest struct {
	SellerID        string `json:"seller_id" validate:"required,uuid"`
	Quantity        int    `json:"quantity" validate:"required,min=1"`
	DeliveryAddress string `json:"delivery_address"`
	CardNumber      string `json:"card_number" validate:"required"`
	CardExpiry      string `json:"card_expiry" validate:"required"`
	CardCVV         string `json:"card_cvv" validate:"required"`
}

// Purchase charges the buyer's card and records the order against the seller.
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	buyerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "seller_id must be a valid UUID")
	}

	output, err := h.uc.Purchase(c.Request().Context(), buyerID, &usecase.PurchaseInput{
		SellerID:        sellerID,
		Quantity:        req.Quantity,
		DeliveryAddress: req.DeliveryAddress,
		Card: service.PaymentCard{
			Number: req.CardNumber,
			Expiry: req.CardExpiry,
			CVV:    req.CardCVV,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Purchase, "Purchase completed successfully")
}

// ListPurchases returns the buyer's purchase history, newest first.
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	buyerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "User identity missing from context")
	}

	purchases, err := h.uc.ListPurchases(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, purchases, "Purchases retrieved successfully")
}
