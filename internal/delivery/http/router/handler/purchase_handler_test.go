package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"oxylink/internal/delivery/http/middleware"
	"oxylink/internal/delivery/http/validator"
	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// stubPurchaseUsecase records inputs and returns canned results.
type stubPurchaseUsecase struct {
	buyerID uuid.UUID
	input   *usecase.PurchaseInput
	output  *usecase.PurchaseOutput
	err     error
}

func (s *stubPurchaseUsecase) Purchase(ctx context.Context, buyerID uuid.UUID, input *usecase.PurchaseInput) (*usecase.PurchaseOutput, error) {
	s.buyerID = buyerID
	s.input = input

	return s.output, s.err
}

func (s *stubPurchaseUsecase) ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*entity.Purchase, error) {
	s.buyerID = buyerID

	return nil, s.err
}

func newPurchaseContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/buyer/purchases", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPurchaseHandler_Purchase_Success(t *testing.T) {
	sellerID := uuid.New()
	buyerID := uuid.New()
	stub := &stubPurchaseUsecase{
		output: &usecase.PurchaseOutput{
			Purchase: &entity.Purchase{
				ID:       uuid.New(),
				SellerID: sellerID,
				BuyerID:  buyerID,
				Quantity: 2,
			},
		},
	}
	h := NewPurchaseHandler(stub)

	body := `{
		"seller_id": "` + sellerID.String() + `",
		"quantity": 2,
		"delivery_address": "14 Hill Road",
		"card_number": "4242424242424242",
		"card_expiry": "12/27",
		"card_cvv": "123"
	}`
	c, rec := newPurchaseContext(t, body)
	c.Set(middleware.ContextKeyUserID, buyerID)

	err := h.Purchase(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, buyerID, stub.buyerID)
	assert.Equal(t, sellerID, stub.input.SellerID)
	assert.Equal(t, 2, stub.input.Quantity)
	assert.Equal(t, "14 Hill Road", stub.input.DeliveryAddress)
	assert.Equal(t, "4242424242424242", stub.input.Card.Number)

	// Number, expiry and CVV are the only card fields the API collects;
	// the card built from them must already pass the format check.
	assert.True(t, stub.input.Card.Valid())
}

func TestPurchaseHandler_Purchase_SpacedCardNumber(t *testing.T) {
	stub := &stubPurchaseUsecase{
		output: &usecase.PurchaseOutput{Purchase: &entity.Purchase{ID: uuid.New()}},
	}
	h := NewPurchaseHandler(stub)

	body := `{
		"seller_id": "` + uuid.NewString() + `",
		"quantity": 1,
		"card_number": "4242 4242 4242 4242",
		"card_expiry": "12/27",
		"card_cvv": "123"
	}`
	c, rec := newPurchaseContext(t, body)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Purchase(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, stub.input.Card.Valid())
	assert.Equal(t, "4242", stub.input.Card.Last4())
}

func TestPurchaseHandler_Purchase_MissingCardFields(t *testing.T) {
	stub := &stubPurchaseUsecase{}
	h := NewPurchaseHandler(stub)

	body := `{"seller_id": "` + uuid.NewString() + `", "quantity": 1}`
	c, _ := newPurchaseContext(t, body)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Purchase(c)

	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Nil(t, stub.input)
}

func TestPurchaseHandler_Purchase_BadSellerID(t *testing.T) {
	stub := &stubPurchaseUsecase{}
	h := NewPurchaseHandler(stub)

	body := `{
		"seller_id": "not-a-uuid",
		"quantity": 1,
		"card_number": "4242424242424242",
		"card_expiry": "12/27",
		"card_cvv": "123"
	}`
	c, _ := newPurchaseContext(t, body)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Purchase(c)

	// The uuid validate tag catches it before the handler parses the value.
	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Nil(t, stub.input)
}

func TestPurchaseHandler_Purchase_MissingIdentity(t *testing.T) {
	stub := &stubPurchaseUsecase{}
	h := NewPurchaseHandler(stub)

	c, rec := newPurchaseContext(t, `{}`)

	err := h.Purchase(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, stub.input)
}
