package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Admin is a dashboard operator account. Passwords are stored as bcrypt
// hashes only.
type Admin struct {
	ID           uuid.UUID   `json:"id"`
	Username     string      `json:"username"`
	Email        null.String `json:"email,omitempty"`
	PhoneNumber  null.String `json:"phoneNumber,omitempty"`
	PasswordHash string      `json:"-"`
	AvatarURL    null.String `json:"avatarUrl,omitempty"`
	Preferences  null.JSON   `json:"preferences,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// LoginInput accepts either the username or the email in Identifier.
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AuthResponse is returned by login and refresh.
type AuthResponse struct {
	Admin        *Admin `json:"admin"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
	SessionID    string `json:"sessionId"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// UpdateProfileInput carries field-level profile updates. Nil pointers
// leave the column untouched.
type UpdateProfileInput struct {
	Username    *string `json:"username"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	AvatarURL   *string `json:"avatarUrl"`
}

// Preferences is the per-admin settings document stored as JSON on the
// admin row.
type Preferences struct {
	Theme              string `json:"theme"`
	Language           string `json:"language"`
	PanelTitle         string `json:"panelTitle"`
	PanelLogoURL       string `json:"panelLogoUrl"`
	AutoApprove        bool   `json:"autoApprove"`
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
}

// DefaultPreferences are used until the admin saves their own.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:              "light",
		Language:           "en",
		PanelTitle:         "Laundry Scout Admin",
		EmailNotifications: true,
		PushNotifications:  true,
	}
}
