package models

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	BusinessID   *uuid.UUID `gorm:"type:uuid;index"`
	Rating       int        `gorm:"not null"`
	Comment      string     `gorm:"type:text"`
	FeedbackType string     `gorm:"type:varchar(50);not null;index"`
	CreatedAt    time.Time
}

func (Feedback) TableName() string {
	return "feedback"
}
