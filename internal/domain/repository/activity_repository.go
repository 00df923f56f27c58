// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"oxylink/internal/domain/entity"
)

// ActivityRepository defines the operations for the admin activity feed.
// Entries are append-only and read newest first.
type ActivityRepository interface {
	// Create persists a new activity feed entry.
	Create(ctx context.Context, activity *entity.Activity) error

	// ListRecent retrieves the most recent activity entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}
