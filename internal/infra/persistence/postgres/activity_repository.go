// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"oxylink/internal/domain/entity"
	domainerrors "oxylink/internal/domain/errors"
	"oxylink/internal/domain/repository"
	"oxylink/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// activityRepository implements the repository.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create persists a new activity feed entry.
func (repo *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activityM := fromActivityDomain(activity)

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create activity entry")
	}

	activity.ID = activityM.ID
	activity.CreatedAt = activityM.CreatedAt

	return nil
}

// ListRecent retrieves the most recent activity entries, newest first.
func (repo *activityRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	query := repo.db.WithContext(ctx).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var activityModels []*model.ActivityModel
	if err := query.Find(&activityModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list recent activities")
	}

	activities := make([]*entity.Activity, 0, len(activityModels))
	for _, activityM := range activityModels {
		activities = append(activities, toActivityDomain(activityM))
	}

	return activities, nil
}

// --- Mapper Functions ---

// toActivityDomain converts a GORM ActivityModel to a domain Activity entity.
func toActivityDomain(data *model.ActivityModel) *entity.Activity {
	if data == nil {
		return nil
	}

	return &entity.Activity{
		ID:        data.ID,
		Type:      entity.ActivityType(data.Type),
		ActorID:   data.ActorID,
		SubjectID: data.SubjectID,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}

// fromActivityDomain converts a domain Activity entity to a GORM ActivityModel.
func fromActivityDomain(data *entity.Activity) *model.ActivityModel {
	if data == nil {
		return nil
	}

	return &model.ActivityModel{
		ID:        data.ID,
		Type:      string(data.Type),
		ActorID:   data.ActorID,
		SubjectID: data.SubjectID,
		Message:   data.Message,
		CreatedAt: data.CreatedAt,
	}
}
