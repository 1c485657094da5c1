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

// AdminRepository implements admin account data operations
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	m := &models.Admin{
		ID:           admin.ID,
		Username:     admin.Username,
		Email:        admin.Email.Ptr(),
		PhoneNumber:  admin.PhoneNumber.Ptr(),
		PasswordHash: admin.PasswordHash,
		AvatarURL:    admin.AvatarURL.Ptr(),
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
	if admin.Preferences.Valid {
		raw := string(admin.Preferences.JSON)
		m.Preferences = &raw
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	return nil
}

// GetByID gets an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	var m models.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m), nil
}

// GetByUsernameOrEmail resolves a login identifier case-insensitively
func (r *AdminRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*entities.Admin, error) {
	term := toSearchTerm(identifier)
	var m models.Admin
	err := r.db.WithContext(ctx).
		Where("LOWER(username) = ? OR LOWER(email) = ?", term, term).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m), nil
}

// GetByEmail gets an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	var m models.Admin
	err := r.db.WithContext(ctx).Where("LOWER(email) = ?", toSearchTerm(email)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return adminToEntity(&m), nil
}

// Update writes the mutable profile fields
func (r *AdminRepository) Update(ctx context.Context, admin *entities.Admin) error {
	updates := map[string]interface{}{
		"username":     admin.Username,
		"email":        admin.Email.Ptr(),
		"phone_number": admin.PhoneNumber.Ptr(),
		"avatar_url":   admin.AvatarURL.Ptr(),
		"updated_at":   time.Now(),
	}
	result := r.db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", admin.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored bcrypt hash
func (r *AdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePreferences replaces the settings JSON document
func (r *AdminRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, raw []byte) error {
	result := r.db.WithContext(ctx).Model(&models.Admin{}).Where("id = ?", id).Updates(map[string]interface{}{
		"preferences": string(raw),
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func adminToEntity(m *models.Admin) *entities.Admin {
	e := &entities.Admin{
		ID:           m.ID,
		Username:     m.Username,
		Email:        null.StringFromPtr(m.Email),
		PhoneNumber:  null.StringFromPtr(m.PhoneNumber),
		PasswordHash: m.PasswordHash,
		AvatarURL:    null.StringFromPtr(m.AvatarURL),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Preferences != nil {
		e.Preferences = null.JSONFrom([]byte(*m.Preferences))
	}
	return e
}
