package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/infrastructure/models"
)

// UserProfileRepository implements end-customer profile data operations
type UserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// List lists user profiles with optional search filter
func (r *UserProfileRepository) List(ctx context.Context, search string) ([]*entities.UserProfile, error) {
	var rows []models.UserProfile
	query := r.db.WithContext(ctx).Order("created_at DESC")

	if search != "" {
		term := "%" + toSearchTerm(search) + "%"
		query = query.Where(
			`LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(username) LIKE ?
			 OR LOWER(email) LIKE ? OR mobile_number LIKE ?`,
			term, term, term, term, term,
		)
	}

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.UserProfile, 0, len(rows))
	for i := range rows {
		items = append(items, userProfileToEntity(&rows[i]))
	}
	return items, nil
}

// GetByID gets a user profile by ID
func (r *UserProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	var m models.UserProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userProfileToEntity(&m), nil
}

// SoftDelete soft deletes a user profile
func (r *UserProfileRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UserProfile{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the number of registered customers
func (r *UserProfileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UserProfile{}).Count(&count).Error
	return count, err
}

// Recent returns the latest signups, newest first
func (r *UserProfileRepository) Recent(ctx context.Context, limit int) ([]*entities.UserProfile, error) {
	var rows []models.UserProfile
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.UserProfile, 0, len(rows))
	for i := range rows {
		items = append(items, userProfileToEntity(&rows[i]))
	}
	return items, nil
}

// CreatedAfter returns signups newer than t, oldest first
func (r *UserProfileRepository) CreatedAfter(ctx context.Context, t time.Time, limit int) ([]*entities.UserProfile, error) {
	var rows []models.UserProfile
	err := r.db.WithContext(ctx).
		Where("created_at > ?", t).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.UserProfile, 0, len(rows))
	for i := range rows {
		items = append(items, userProfileToEntity(&rows[i]))
	}
	return items, nil
}

// GetPushToken returns the stored device token for a user
func (r *UserProfileRepository) GetPushToken(ctx context.Context, id uuid.UUID) (string, error) {
	var m models.UserProfile
	if err := r.db.WithContext(ctx).Select("fcm_token").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrNotFound
		}
		return "", err
	}
	if m.FCMToken == nil || *m.FCMToken == "" {
		return "", domainerrors.ErrNotFound
	}
	return *m.FCMToken, nil
}

func userProfileToEntity(m *models.UserProfile) *entities.UserProfile {
	return &entities.UserProfile{
		ID:              m.ID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Username:        m.Username,
		Email:           m.Email,
		MobileNumber:    m.MobileNumber,
		VerifiedStatus:  m.VerifiedStatus,
		ProfileImageURL: null.StringFromPtr(m.ProfileImageURL),
		FCMToken:        null.StringFromPtr(m.FCMToken),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
