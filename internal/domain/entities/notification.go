package entities

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies which table a feed item came from.
type NotificationType string

const (
	NotificationTypeUser     NotificationType = "new_user"
	NotificationTypeBusiness NotificationType = "new_business"
	NotificationTypeApproval NotificationType = "application_approved"
	NotificationTypeRejected NotificationType = "application_rejected"
)

// Notification is a synthesized feed item. Nothing is persisted; the
// feed is recomputed from recent rows on each request.
type Notification struct {
	ID      uuid.UUID        `json:"id"`
	Type    NotificationType `json:"type"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Time    time.Time        `json:"time"`
}

// MergeNotifications combines feed sources newest-first and caps the
// result at limit. limit <= 0 means unbounded.
func MergeNotifications(limit int, sources ...[]Notification) []Notification {
	merged := make([]Notification, 0)
	for _, s := range sources {
		merged = append(merged, s...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Time.After(merged[j].Time)
	})
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

// Event is what the realtime hub pushes to connected dashboards.
type Event struct {
	Type    NotificationType `json:"type"`
	Payload any              `json:"payload"`
	At      time.Time        `json:"at"`
}

// PushInput is the body of a push-notification dispatch request.
type PushInput struct {
	UserID uuid.UUID         `json:"userId" binding:"required"`
	Title  string            `json:"title" binding:"required"`
	Body   string            `json:"body" binding:"required"`
	Data   map[string]string `json:"data"`
}

// PushResult reports a dispatched (or stubbed) push message. Token is
// masked before it leaves the service.
type PushResult struct {
	UserID      uuid.UUID `json:"userId"`
	MaskedToken string    `json:"maskedToken"`
	Delivered   bool      `json:"delivered"`
}

// MaskToken keeps the first 10 characters of a device token and elides
// the rest.
func MaskToken(token string) string {
	if len(token) <= 10 {
		return token
	}
	return token[:10] + "..."
}
