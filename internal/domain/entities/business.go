package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// BusinessStatus represents the lifecycle state of a business profile
type BusinessStatus string

const (
	BusinessStatusPending  BusinessStatus = "pending"
	BusinessStatusApproved BusinessStatus = "approved"
	BusinessStatusRejected BusinessStatus = "rejected"
)

// RejectionReasons is the fixed set an admin must pick from when
// rejecting an application.
var RejectionReasons = []string{
	"Incomplete Documents",
	"Invalid Documents",
	"Duplicate Registration",
	"Unclear Photo of Documentation",
}

// IsValidRejectionReason reports whether reason is in the allowed set.
func IsValidRejectionReason(reason string) bool {
	for _, r := range RejectionReasons {
		if r == reason {
			return true
		}
	}
	return false
}

// BusinessProfile is a laundry business application and, once approved,
// the client profile shown in the Clients view.
type BusinessProfile struct {
	ID                     uuid.UUID      `json:"id"`
	BusinessName           string         `json:"businessName"`
	BusinessAddress        string         `json:"businessAddress"`
	BusinessType           string         `json:"businessType"`
	BusinessPhoneNumber    string         `json:"businessPhoneNumber"`
	OwnerFirstName         string         `json:"ownerFirstName"`
	OwnerLastName          string         `json:"ownerLastName"`
	OwnerEmail             string         `json:"ownerEmail"`
	OwnerPhone             string         `json:"ownerPhone"`
	BIRRegistrationURL     null.String    `json:"birRegistrationUrl,omitempty"`
	BusinessCertificateURL null.String    `json:"businessCertificateUrl,omitempty"`
	MayorsPermitURL        null.String    `json:"mayorsPermitUrl,omitempty"`
	CoverPhotoURL          null.String    `json:"coverPhotoUrl,omitempty"`
	Status                 BusinessStatus `json:"status"`
	RejectionReason        null.String    `json:"rejectionReason,omitempty"`
	RejectionNotes         null.String    `json:"rejectionNotes,omitempty"`
	CreatedAt              time.Time      `json:"createdAt"`
	UpdatedAt              time.Time      `json:"updatedAt"`
}

// OwnerName returns the owner's display name.
func (b *BusinessProfile) OwnerName() string {
	switch {
	case b.OwnerFirstName == "":
		return b.OwnerLastName
	case b.OwnerLastName == "":
		return b.OwnerFirstName
	default:
		return b.OwnerFirstName + " " + b.OwnerLastName
	}
}

// ListFilter bounds a business-profile list query. From/To are inclusive
// calendar dates; the repository widens them to whole days.
type ListFilter struct {
	Search string     `form:"search"`
	Status string     `form:"status"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
	Page   int        `form:"page"`
	Limit  int        `form:"limit"`
}

// RejectInput is the body of a reject request.
type RejectInput struct {
	Reason string `json:"reason" binding:"required"`
	Notes  string `json:"notes"`
}

// ReviewDocument is one uploaded document with its resolved display URL.
type ReviewDocument struct {
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Uploaded bool   `json:"uploaded"`
}

// ApplicationReview is the review snapshot for a single application.
type ApplicationReview struct {
	Profile   *BusinessProfile `json:"profile"`
	Documents []ReviewDocument `json:"documents"`
}
