package usecases

import (
	"context"

	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/internal/domain/repositories"
)

// FeedbackUsecase serves feedback listing and the rating summary
type FeedbackUsecase struct {
	feedbackRepo repositories.FeedbackRepository
}

// NewFeedbackUsecase creates a new feedback usecase
func NewFeedbackUsecase(feedbackRepo repositories.FeedbackRepository) *FeedbackUsecase {
	return &FeedbackUsecase{feedbackRepo: feedbackRepo}
}

// List returns feedback joined with author identity, optionally
// filtered by type
func (u *FeedbackUsecase) List(ctx context.Context, feedbackType string) ([]*entities.FeedbackView, error) {
	return u.feedbackRepo.List(ctx, feedbackType)
}

// Summary aggregates ratings into per-star buckets and an in-range
// mean. Ratings outside [1,5] never enter the buckets, the total or
// the mean.
func (u *FeedbackUsecase) Summary(ctx context.Context) (*entities.RatingSummary, error) {
	ratings, err := u.feedbackRepo.Ratings(ctx)
	if err != nil {
		return nil, err
	}
	summary := entities.SummarizeRatings(ratings)
	return &summary, nil
}
