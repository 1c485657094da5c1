package usecases

import (
	"context"

	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/internal/domain/repositories"
)

// HistoryUsecase serves the History view: decided applications
// relabeled as Approval/Rejection actions. Nothing is stored; rows come
// straight from the business table, so re-approving a business can
// never create a duplicate entry.
type HistoryUsecase struct {
	businessRepo repositories.BusinessRepository
}

// NewHistoryUsecase creates a new history usecase
func NewHistoryUsecase(businessRepo repositories.BusinessRepository) *HistoryUsecase {
	return &HistoryUsecase{businessRepo: businessRepo}
}

// List returns history records matching the filter, newest first
func (u *HistoryUsecase) List(ctx context.Context, filter entities.ListFilter) ([]*entities.HistoryRecord, int64, error) {
	profiles, total, err := u.businessRepo.ListDecided(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	records := make([]*entities.HistoryRecord, 0, len(profiles))
	for _, p := range profiles {
		if rec := entities.HistoryFromProfile(p); rec != nil {
			records = append(records, rec)
		}
	}
	return records, total, nil
}

// Recent returns the latest decided applications for the dashboard
func (u *HistoryUsecase) Recent(ctx context.Context, limit int) ([]*entities.HistoryRecord, error) {
	records, _, err := u.List(ctx, entities.ListFilter{Limit: limit, Page: 1})
	return records, err
}
