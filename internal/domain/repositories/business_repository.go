package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
)

// BusinessRepository defines business-profile data operations
type BusinessRepository interface {
	List(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error)
	// Approve sets the status to approved and returns the post-update
	// row. A miss (zero rows affected) is surfaced as ErrNoRowsUpdated.
	Approve(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error)
	Reject(ctx context.Context, id uuid.UUID, reason, notes string) (*entities.BusinessProfile, error)
	ListApproved(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error)
	// ListDecided returns approved and rejected profiles newest-first
	// for the history projection.
	ListDecided(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]*entities.BusinessProfile, error)
	CreatedAfter(ctx context.Context, t time.Time, limit int) ([]*entities.BusinessProfile, error)
}
