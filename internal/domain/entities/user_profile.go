package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerifiedStatus values for end-customer accounts
const (
	VerifiedStatusVerified    = "Verified"
	VerifiedStatusNotVerified = "Not-Verified"
)

// UserProfile is an end-customer account created by the mobile app.
// The dashboard only reads and deletes these.
type UserProfile struct {
	ID              uuid.UUID   `json:"id"`
	FirstName       string      `json:"firstName"`
	LastName        string      `json:"lastName"`
	Username        string      `json:"username"`
	Email           string      `json:"email"`
	MobileNumber    string      `json:"mobileNumber"`
	VerifiedStatus  string      `json:"verifiedStatus"`
	ProfileImageURL null.String `json:"profileImageUrl,omitempty"`
	FCMToken        null.String `json:"-"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// DisplayName prefers the username, falling back to the email.
func (u *UserProfile) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
