package service

import (
	"context"
)

// Marketplace event types.
const (
	EventTypePurchaseCompleted = "purchase.completed"
	EventTypeSellerApproved    = "seller.approved"
	EventTypeSellerUnapproved  = "seller.unapproved"
)

// MarketplaceEvent represents a marketplace occurrence published for async consumers.
type MarketplaceEvent struct {
	RequestID   string `json:"request_id,omitempty"` // For distributed tracing
	Type        string `json:"type"`
	PurchaseID  string `json:"purchase_id,omitempty"`
	BuyerID     string `json:"buyer_id,omitempty"`
	SellerID    string `json:"seller_id"`
	Quantity    int    `json:"quantity,omitempty"`
	TotalAmount int64  `json:"total_amount,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMarketplaceEvent publishes a marketplace event for async processing
	PublishMarketplaceEvent(ctx context.Context, event *MarketplaceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
