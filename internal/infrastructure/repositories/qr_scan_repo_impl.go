package repositories

import (
	"context"

	"gorm.io/gorm"
	"laundry-scout.backend/internal/infrastructure/models"
)

// QRScanRepository exposes the scan counter used by the dashboard
type QRScanRepository struct {
	db *gorm.DB
}

// NewQRScanRepository creates a new QR scan repository
func NewQRScanRepository(db *gorm.DB) *QRScanRepository {
	return &QRScanRepository{db: db}
}

// Count returns the total number of recorded scans
func (r *QRScanRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.QRScan{}).Count(&count).Error
	return count, err
}
