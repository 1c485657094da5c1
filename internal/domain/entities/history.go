package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// HistoryAction labels a reviewed application in the History view
type HistoryAction string

const (
	HistoryActionApproval  HistoryAction = "Approval"
	HistoryActionRejection HistoryAction = "Rejection"
)

// HistoryRecord is a read projection of business profiles whose review
// is decided. It is never stored; it is recomputed from the business
// table on every query.
type HistoryRecord struct {
	ID              uuid.UUID      `json:"id"`
	BusinessName    string         `json:"businessName"`
	OwnerName       string         `json:"ownerName"`
	Action          HistoryAction  `json:"action"`
	Status          BusinessStatus `json:"status"`
	RejectionReason null.String    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// HistoryFromProfile projects a decided business profile into a history
// record. Returns nil for profiles still pending.
func HistoryFromProfile(b *BusinessProfile) *HistoryRecord {
	var action HistoryAction
	switch b.Status {
	case BusinessStatusApproved:
		action = HistoryActionApproval
	case BusinessStatusRejected:
		action = HistoryActionRejection
	default:
		return nil
	}
	return &HistoryRecord{
		ID:              b.ID,
		BusinessName:    b.BusinessName,
		OwnerName:       b.OwnerName(),
		Action:          action,
		Status:          b.Status,
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}
