package usecases

import (
	"context"

	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/internal/domain/repositories"
)

// DashboardUsecase aggregates the landing page counters and feeds
type DashboardUsecase struct {
	userRepo     repositories.UserProfileRepository
	businessRepo repositories.BusinessRepository
	qrScanRepo   repositories.QRScanRepository
	feedbackRepo repositories.FeedbackRepository
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	userRepo repositories.UserProfileRepository,
	businessRepo repositories.BusinessRepository,
	qrScanRepo repositories.QRScanRepository,
	feedbackRepo repositories.FeedbackRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		qrScanRepo:   qrScanRepo,
		feedbackRepo: feedbackRepo,
	}
}

// Stats returns the headline counters. Private feedback counts only
// messages addressed to the platform or to businesses, not public
// user reviews.
func (u *DashboardUsecase) Stats(ctx context.Context) (*entities.DashboardStats, error) {
	customers, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	owners, err := u.businessRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	scans, err := u.qrScanRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	private, err := u.feedbackRepo.CountByTypes(ctx, entities.FeedbackTypeAdmin, entities.FeedbackTypeBusiness)
	if err != nil {
		return nil, err
	}

	return &entities.DashboardStats{
		Customers:       customers,
		BusinessOwners:  owners,
		QRScans:         scans,
		PrivateFeedback: private,
	}, nil
}

// RecentApplications returns the latest registrations for the widget
func (u *DashboardUsecase) RecentApplications(ctx context.Context, limit int) ([]*entities.BusinessProfile, error) {
	if limit <= 0 {
		limit = 5
	}
	return u.businessRepo.Recent(ctx, limit)
}

// Ratings returns the same rating histogram the feedback page shows
func (u *DashboardUsecase) Ratings(ctx context.Context) (*entities.RatingSummary, error) {
	ratings, err := u.feedbackRepo.Ratings(ctx)
	if err != nil {
		return nil, err
	}
	summary := entities.SummarizeRatings(ratings)
	return &summary, nil
}

// RecentHistory returns the latest decided applications as history rows
func (u *DashboardUsecase) RecentHistory(ctx context.Context, limit int) ([]*entities.HistoryRecord, error) {
	if limit <= 0 {
		limit = 5
	}

	profiles, _, err := u.businessRepo.ListDecided(ctx, entities.ListFilter{Page: 1, Limit: limit})
	if err != nil {
		return nil, err
	}

	records := make([]*entities.HistoryRecord, 0, len(profiles))
	for _, p := range profiles {
		if rec := entities.HistoryFromProfile(p); rec != nil {
			records = append(records, rec)
		}
	}
	return records, nil
}
