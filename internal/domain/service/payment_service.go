package service

import (
	"context"
	"regexp"
	"strings"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{15,16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// PaymentCard carries the card details submitted with a purchase.
// Card data is never persisted; only the last four digits survive into the purchase record.
type PaymentCard struct {
	Number string // 15 or 16 digits; spaces are ignored.
	Expiry string // MM/YY.
	CVV    string // 3 or 4 digits.
}

// normalizedNumber returns the card number with spaces removed.
func (c PaymentCard) normalizedNumber() string {
	return strings.ReplaceAll(c.Number, " ", "")
}

// Valid reports whether the card details are well-formed.
// This is a format check only; it does not verify the card with any issuer.
func (c PaymentCard) Valid() bool {
	return cardNumberPattern.MatchString(c.normalizedNumber()) &&
		cardExpiryPattern.MatchString(c.Expiry) &&
		cardCVVPattern.MatchString(c.CVV)
}

// Last4 returns the last four digits of the card number.
func (c PaymentCard) Last4() string {
	number := c.normalizedNumber()
	if len(number) < 4 {
		return number
	}

	return number[len(number)-4:]
}

// PaymentService defines the interface for charging a payment card.
// The charge happens before the stock transaction; a failed charge means
// the purchase is never attempted.
type PaymentService interface {
	// Charge attempts to charge the given amount to the card.
	Charge(ctx context.Context, card PaymentCard, amount int64) error
}
