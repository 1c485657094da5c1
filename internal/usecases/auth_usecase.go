package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/domain/repositories"
	"laundry-scout.backend/pkg/crypto"
	"laundry-scout.backend/pkg/jwt"
	"laundry-scout.backend/pkg/redis"
)

// AuthUsecase handles admin authentication business logic
type AuthUsecase struct {
	adminRepo     repositories.AdminRepository
	jwtService    *jwt.JWTService
	sessionStore  *redis.SessionStore
	sessionExpiry time.Duration
	resetTokenTTL time.Duration
}

var (
	setResetValue = redis.Set
	getResetValue = redis.Get
	delResetValue = redis.Del
)

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	adminRepo repositories.AdminRepository,
	jwtService *jwt.JWTService,
	sessionStore *redis.SessionStore,
	sessionExpiry time.Duration,
	resetTokenTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		adminRepo:     adminRepo,
		jwtService:    jwtService,
		sessionStore:  sessionStore,
		sessionExpiry: sessionExpiry,
		resetTokenTTL: resetTokenTTL,
	}
}

// Login authenticates an admin by username or email and opens a
// server-side session. There is no client-stored "remember me": coming
// back within the session lifetime is what remembers the admin.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	admin, err := u.adminRepo.GetByUsernameOrEmail(ctx, input.Identifier)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, admin.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	sessionID := uuid.NewString()
	err = u.sessionStore.CreateSession(ctx, sessionID, &redis.SessionData{
		AdminID:      admin.ID.String(),
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, u.sessionExpiry)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Admin:        admin,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    int64(u.jwtService.AccessExpiry().Seconds()),
		SessionID:    sessionID,
	}, nil
}

// RefreshToken rotates the token pair inside an existing session
func (u *AuthUsecase) RefreshToken(ctx context.Context, sessionID, refreshToken string) (*entities.AuthResponse, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthorized
	}

	admin, err := u.adminRepo.GetByID(ctx, claims.AdminID)
	if err != nil {
		return nil, err
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(admin.ID, admin.Username)
	if err != nil {
		return nil, err
	}

	if sessionID != "" {
		err = u.sessionStore.CreateSession(ctx, sessionID, &redis.SessionData{
			AdminID:      admin.ID.String(),
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}, u.sessionExpiry)
		if err != nil {
			return nil, err
		}
	}

	return &entities.AuthResponse{
		Admin:        admin,
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		ExpiresIn:    int64(u.jwtService.AccessExpiry().Seconds()),
		SessionID:    sessionID,
	}, nil
}

// Logout drops the server-side session
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return u.sessionStore.DeleteSession(ctx, sessionID)
}

// GetAdminByID gets an admin by ID
func (u *AuthUsecase) GetAdminByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	return u.adminRepo.GetByID(ctx, id)
}

// ChangePassword verifies the current password before storing a new hash
func (u *AuthUsecase) ChangePassword(ctx context.Context, adminID uuid.UUID, input *entities.ChangePasswordInput) error {
	admin, err := u.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, admin.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}
	return u.adminRepo.UpdatePassword(ctx, adminID, hash)
}

// ForgotPassword issues a one-time reset token. Only its SHA-256 digest
// is stored, with a TTL, so a leaked Redis dump cannot be replayed.
// The token is returned to the caller for delivery; an unknown email
// yields ErrNotFound so the handler can reply uniformly.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) (string, error) {
	admin, err := u.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := crypto.GenerateResetToken()
	if err != nil {
		return "", err
	}

	key := "password_reset:" + crypto.HashToken(token)
	if err := setResetValue(ctx, key, admin.ID.String(), u.resetTokenTTL); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes a reset token and stores the new hash
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	key := "password_reset:" + crypto.HashToken(input.Token)
	adminIDStr, err := getResetValue(ctx, key)
	if err != nil {
		return domainerrors.ErrTokenExpired
	}

	adminID, err := uuid.Parse(adminIDStr)
	if err != nil {
		return domainerrors.ErrTokenExpired
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	if err := u.adminRepo.UpdatePassword(ctx, adminID, hash); err != nil {
		return err
	}
	return delResetValue(ctx, key)
}
