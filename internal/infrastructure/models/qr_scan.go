package models

import (
	"time"

	"github.com/google/uuid"
)

type QRScan struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID     uuid.UUID  `gorm:"type:uuid;index"`
	BusinessID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
}

func (QRScan) TableName() string {
	return "qr_scans"
}
