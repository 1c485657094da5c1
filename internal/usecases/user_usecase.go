package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/domain/repositories"
)

// AuthAccountDeleter removes the auth account behind a user profile
type AuthAccountDeleter interface {
	DeleteUser(ctx context.Context, userID string) error
}

// UserUsecase handles end-customer account management
type UserUsecase struct {
	userRepo repositories.UserProfileRepository
	authAPI  AuthAccountDeleter
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(userRepo repositories.UserProfileRepository, authAPI AuthAccountDeleter) *UserUsecase {
	return &UserUsecase{userRepo: userRepo, authAPI: authAPI}
}

// List lists user profiles with optional search
func (u *UserUsecase) List(ctx context.Context, search string) ([]*entities.UserProfile, error) {
	return u.userRepo.List(ctx, search)
}

// Get gets one user profile
func (u *UserUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	return u.userRepo.GetByID(ctx, id)
}

// Delete removes the profile row and the auth account behind it. The
// remote call happens first: if it fails the profile stays, so a user
// is never left able to log in against a deleted profile.
func (u *UserUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := u.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	if err := u.authAPI.DeleteUser(ctx, id.String()); err != nil {
		// a missing auth account is fine, the profile removal proceeds
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
	}

	return u.userRepo.SoftDelete(ctx, id)
}
