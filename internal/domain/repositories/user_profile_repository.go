package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
)

// UserProfileRepository defines end-customer profile data operations
type UserProfileRepository interface {
	List(ctx context.Context, search string) ([]*entities.UserProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*entities.UserProfile, error)
	CreatedAfter(ctx context.Context, t time.Time, limit int) ([]*entities.UserProfile, error)
	// GetPushToken returns the stored device token for a user, or
	// ErrNotFound when the user has none registered.
	GetPushToken(ctx context.Context, id uuid.UUID) (string, error)
}
