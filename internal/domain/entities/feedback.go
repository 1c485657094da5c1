package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// FeedbackType tags who the feedback is about
type FeedbackType string

const (
	FeedbackTypeUser     FeedbackType = "user"
	FeedbackTypeBusiness FeedbackType = "business"
	FeedbackTypeAdmin    FeedbackType = "admin"
)

// Feedback is a rating plus comment left by a user. Read-only here.
type Feedback struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"userId"`
	BusinessID uuid.NullUUID `json:"businessId,omitempty"`
	Rating     int           `json:"rating"`
	Comment    string        `json:"comment"`
	Type       FeedbackType  `json:"feedbackType"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// FeedbackView is a feedback row joined with the author's identity.
type FeedbackView struct {
	Feedback
	UserFullName string      `json:"userFullName"`
	UserUsername string      `json:"userUsername"`
	UserAvatar   null.String `json:"userAvatar,omitempty"`
}

// RatingSummary aggregates feedback ratings in [1,5]. Ratings outside
// that range are excluded from the buckets, the total and the average.
type RatingSummary struct {
	Counts  map[int]int64 `json:"counts"`
	Total   int64         `json:"total"`
	Average float64       `json:"average"`
}

// SummarizeRatings buckets ratings per star and computes the mean
// rounded to one decimal. Out-of-range values are dropped silently.
func SummarizeRatings(ratings []int) RatingSummary {
	s := RatingSummary{Counts: map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	var sum int64
	for _, r := range ratings {
		if r < 1 || r > 5 {
			continue
		}
		s.Counts[r]++
		s.Total++
		sum += int64(r)
	}
	if s.Total > 0 {
		s.Average = float64(int64(float64(sum)/float64(s.Total)*10+0.5)) / 10
	}
	return s
}
