package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName       string    `gorm:"type:varchar(100)"`
	LastName        string    `gorm:"type:varchar(100)"`
	Username        string    `gorm:"type:varchar(100);index"`
	Email           string    `gorm:"type:varchar(255);index"`
	MobileNumber    string    `gorm:"type:varchar(50)"`
	VerifiedStatus  string    `gorm:"type:varchar(50);default:'Not-Verified'"`
	ProfileImageURL *string   `gorm:"type:varchar(500)"`
	FCMToken        *string   `gorm:"column:fcm_token;type:varchar(500)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
