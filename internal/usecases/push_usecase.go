package usecases

import (
	"context"

	"go.uber.org/zap"
	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/internal/domain/repositories"
	"laundry-scout.backend/pkg/logger"
)

// PushUsecase dispatches push notifications to user devices. Delivery
// is currently a logged stub: the device token is looked up and the
// intended message recorded, with the token masked past its first 10
// characters.
type PushUsecase struct {
	userRepo repositories.UserProfileRepository
}

// NewPushUsecase creates a new push usecase
func NewPushUsecase(userRepo repositories.UserProfileRepository) *PushUsecase {
	return &PushUsecase{userRepo: userRepo}
}

// Send resolves the target device token and records the dispatch
func (u *PushUsecase) Send(ctx context.Context, input *entities.PushInput) (*entities.PushResult, error) {
	token, err := u.userRepo.GetPushToken(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	masked := entities.MaskToken(token)
	logger.Info(ctx, "push notification dispatched",
		zap.String("user_id", input.UserID.String()),
		zap.String("token", masked),
		zap.String("title", input.Title),
		zap.String("body", input.Body),
		zap.Any("data", input.Data),
	)

	return &entities.PushResult{
		UserID:      input.UserID,
		MaskedToken: masked,
		Delivered:   true,
	}, nil
}
