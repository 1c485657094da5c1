package usecases

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/domain/repositories"
)

// ProfileUsecase manages the admin's own profile and settings
type ProfileUsecase struct {
	adminRepo     repositories.AdminRepository
	resolver      URLResolver
	avatarsBucket string
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(adminRepo repositories.AdminRepository, resolver URLResolver, avatarsBucket string) *ProfileUsecase {
	return &ProfileUsecase{adminRepo: adminRepo, resolver: resolver, avatarsBucket: avatarsBucket}
}

// Get returns the admin profile with the avatar URL resolved
func (u *ProfileUsecase) Get(ctx context.Context, adminID uuid.UUID) (*entities.Admin, error) {
	admin, err := u.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	u.resolveAvatar(admin)
	return admin, nil
}

// Update applies field-level changes; nil fields stay untouched
func (u *ProfileUsecase) Update(ctx context.Context, adminID uuid.UUID, input *entities.UpdateProfileInput) (*entities.Admin, error) {
	admin, err := u.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		if *input.Username == "" {
			return nil, domainerrors.ErrInvalidInput
		}
		admin.Username = *input.Username
	}
	if input.Email != nil {
		admin.Email = null.StringFrom(*input.Email)
	}
	if input.PhoneNumber != nil {
		admin.PhoneNumber = null.StringFrom(*input.PhoneNumber)
	}
	if input.AvatarURL != nil {
		admin.AvatarURL = null.StringFrom(*input.AvatarURL)
	}

	if err := u.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	u.resolveAvatar(admin)
	return admin, nil
}

// SetAvatar stores an uploaded avatar path and returns its public URL
func (u *ProfileUsecase) SetAvatar(ctx context.Context, adminID uuid.UUID, path string) (string, error) {
	if path == "" {
		return "", domainerrors.ErrInvalidInput
	}

	admin, err := u.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return "", err
	}

	admin.AvatarURL = null.StringFrom(path)
	if err := u.adminRepo.Update(ctx, admin); err != nil {
		return "", err
	}
	return u.resolver.PublicURL(u.avatarsBucket, path), nil
}

// GetSettings returns the stored preferences, defaults when unset
func (u *ProfileUsecase) GetSettings(ctx context.Context, adminID uuid.UUID) (*entities.Preferences, error) {
	admin, err := u.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}

	prefs := entities.DefaultPreferences()
	if admin.Preferences.Valid {
		if err := json.Unmarshal(admin.Preferences.JSON, &prefs); err != nil {
			// a corrupt document falls back to defaults rather than
			// locking the admin out of the settings page
			prefs = entities.DefaultPreferences()
		}
	}
	return &prefs, nil
}

// UpdateSettings replaces the preferences document
func (u *ProfileUsecase) UpdateSettings(ctx context.Context, adminID uuid.UUID, prefs *entities.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return u.adminRepo.UpdatePreferences(ctx, adminID, raw)
}

func (u *ProfileUsecase) resolveAvatar(admin *entities.Admin) {
	if admin.AvatarURL.Valid && admin.AvatarURL.String != "" {
		admin.AvatarURL.String = u.resolver.PublicURL(u.avatarsBucket, admin.AvatarURL.String)
	}
}
