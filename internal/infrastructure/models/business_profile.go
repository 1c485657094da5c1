package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessProfile struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	BusinessName           string    `gorm:"type:varchar(255);not null;index"`
	BusinessAddress        string    `gorm:"type:varchar(500)"`
	BusinessType           string    `gorm:"type:varchar(100)"`
	BusinessPhoneNumber    string    `gorm:"type:varchar(50)"`
	OwnerFirstName         string    `gorm:"type:varchar(100)"`
	OwnerLastName          string    `gorm:"type:varchar(100)"`
	OwnerEmail             string    `gorm:"type:varchar(255);index"`
	OwnerPhone             string    `gorm:"type:varchar(50)"`
	BIRRegistrationURL     *string   `gorm:"column:bir_registration_url;type:varchar(500)"`
	BusinessCertificateURL *string   `gorm:"type:varchar(500)"`
	MayorsPermitURL        *string   `gorm:"type:varchar(500)"`
	CoverPhotoURL          *string   `gorm:"type:varchar(500)"`
	Status                 string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	RejectionReason        *string   `gorm:"type:varchar(100)"`
	RejectionNotes         *string   `gorm:"type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	DeletedAt              gorm.DeletedAt `gorm:"index"`
}

func (BusinessProfile) TableName() string {
	return "business_profiles"
}
