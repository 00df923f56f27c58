// Package notification provides push notification implementations.
package notification

import (
	"context"
	"log/slog"

	"oxylink/config"
	"oxylink/internal/domain/service"

	"go.uber.org/fx"
)

// noopService is a no-op implementation when Firebase is not configured.
type noopService struct {
	logger *slog.Logger
}

func (s *noopService) SendTopicNotification(ctx context.Context, topic, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopNotification] Push notifications disabled, skipping",
		slog.String("topic", topic),
		slog.String("title", title),
	)

	return nil
}

// NotificationParams holds dependencies for NotificationService, injected by Fx
type NotificationParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotificationService creates a NotificationService based on configuration.
// Without Firebase credentials the marketplace still works; pushes are skipped.
func NewNotificationService(params NotificationParams) (service.NotificationService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, using no-op notification service")

		return &noopService{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase topic messaging for notifications",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationService),
)
