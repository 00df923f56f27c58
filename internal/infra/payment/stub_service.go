// Package payment provides the payment gateway implementation.
package payment

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/domain/service"
)

// declineCardNumber is the fixed test card the gateway always declines,
// so the payment-failure path stays reachable without a real issuer.
const declineCardNumber = "4000000000000002"

// stubService is a simulated payment gateway. It validates the card format
// and approves every well-formed charge except the fixed decline test card.
// No card data leaves the process.
type stubService struct {
	logger *slog.Logger
}

// NewStubService creates the simulated payment gateway.
func NewStubService(logger *slog.Logger) service.PaymentService {
	return &stubService{logger: logger}
}

// Charge validates the card and approves the charge.
func (s *stubService) Charge(ctx context.Context, card service.PaymentCard, amount int64) error {
	if amount <= 0 {
		return domainerrors.ErrPaymentFailed.WrapMessage("charge amount must be positive")
	}

	if !card.Valid() {
		return domainerrors.ErrInvalidPaymentCard
	}

	if strings.ReplaceAll(card.Number, " ", "") == declineCardNumber {
		s.logger.InfoContext(ctx, "payment declined",
			slog.String("card_last4", card.Last4()),
			slog.Int64("amount", amount),
		)

		return domainerrors.ErrPaymentFailed.WrapMessage("card declined by issuer")
	}

	s.logger.InfoContext(ctx, "payment approved",
		slog.String("card_last4", card.Last4()),
		slog.Int64("amount", amount),
	)

	return nil
}
