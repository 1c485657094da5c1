package usecases

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/internal/domain/repositories"
	"laundry-scout.backend/pkg/logger"
)

// DefaultFeedLimit is the dropdown slice size
const DefaultFeedLimit = 5

// feedWindow bounds how many rows each source contributes to the
// unbounded overlay
const feedWindow = 50

// NotificationUsecase synthesizes the notification feed from recent
// registrations and dispatches push messages.
type NotificationUsecase struct {
	userRepo     repositories.UserProfileRepository
	businessRepo repositories.BusinessRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(
	userRepo repositories.UserProfileRepository,
	businessRepo repositories.BusinessRepository,
) *NotificationUsecase {
	return &NotificationUsecase{userRepo: userRepo, businessRepo: businessRepo}
}

// Feed merges recent signups and applications newest-first. limit <= 0
// returns the whole window. One source failing degrades the feed to
// the other source instead of erroring the endpoint; both failing is
// an error.
func (u *NotificationUsecase) Feed(ctx context.Context, limit int) ([]entities.Notification, error) {
	var (
		userItems     []entities.Notification
		businessItems []entities.Notification
	)

	users, userErr := u.userRepo.Recent(ctx, feedWindow)
	if userErr != nil {
		logger.Warn(ctx, "notification feed: user source failed", zap.Error(userErr))
	} else {
		for _, usr := range users {
			userItems = append(userItems, entities.Notification{
				ID:      usr.ID,
				Type:    entities.NotificationTypeUser,
				Title:   "New User Registered",
				Message: fmt.Sprintf("%s just signed up", usr.DisplayName()),
				Time:    usr.CreatedAt,
			})
		}
	}

	businesses, businessErr := u.businessRepo.Recent(ctx, feedWindow)
	if businessErr != nil {
		logger.Warn(ctx, "notification feed: business source failed", zap.Error(businessErr))
	} else {
		for _, b := range businesses {
			businessItems = append(businessItems, entities.Notification{
				ID:      b.ID,
				Type:    entities.NotificationTypeBusiness,
				Title:   "New Business Application",
				Message: fmt.Sprintf("%s applied for registration", b.BusinessName),
				Time:    b.CreatedAt,
			})
		}
	}

	if userErr != nil && businessErr != nil {
		return nil, userErr
	}

	return entities.MergeNotifications(limit, userItems, businessItems), nil
}
