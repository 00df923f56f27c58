package service

import (
	"context"
)

// NotificationService defines the interface for push notification services.
// Sellers subscribe their devices to a per-seller topic; the server only
// addresses topics and never stores device tokens.
type NotificationService interface {
	// SendTopicNotification sends a push notification to every device subscribed to the topic.
	SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error
}
