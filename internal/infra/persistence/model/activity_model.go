package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityModel mirrors the 'activities' table backing the admin activity feed.
type ActivityModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Type      string    `gorm:"type:varchar(50);not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	SubjectID uuid.UUID `gorm:"type:uuid"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}
