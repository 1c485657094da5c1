package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Admin struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Username     string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Email        *string   `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber  *string   `gorm:"type:varchar(50)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	AvatarURL    *string   `gorm:"type:varchar(500)"`
	Preferences  *string   `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Admin) TableName() string {
	return "admins"
}
