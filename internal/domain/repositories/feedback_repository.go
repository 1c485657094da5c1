package repositories

import (
	"context"

	"laundry-scout.backend/internal/domain/entities"
)

// FeedbackRepository defines read-only feedback data operations
type FeedbackRepository interface {
	List(ctx context.Context, feedbackType string) ([]*entities.FeedbackView, error)
	// Ratings returns every stored rating value, unfiltered. Range
	// filtering happens in the summary aggregation.
	Ratings(ctx context.Context) ([]int, error)
	CountByTypes(ctx context.Context, types ...entities.FeedbackType) (int64, error)
}
