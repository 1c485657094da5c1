package usecases

import (
	"context"

	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/domain/repositories"
)

// ClientUsecase serves the Clients view, a projection of approved
// business profiles. It shares the application repository so there is
// exactly one query definition for "approved".
type ClientUsecase struct {
	businessRepo repositories.BusinessRepository
	resolver     URLResolver
	bucket       string
}

// NewClientUsecase creates a new client usecase
func NewClientUsecase(businessRepo repositories.BusinessRepository, resolver URLResolver, bucket string) *ClientUsecase {
	return &ClientUsecase{businessRepo: businessRepo, resolver: resolver, bucket: bucket}
}

// List returns approved businesses matching the filter
func (u *ClientUsecase) List(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	items, total, err := u.businessRepo.ListApproved(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for _, b := range items {
		u.resolveCover(b)
	}
	return items, total, nil
}

// Get returns one approved business. Pending and rejected profiles are
// not clients and read as not found here.
func (u *ClientUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error) {
	profile, err := u.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile.Status != entities.BusinessStatusApproved {
		return nil, domainerrors.ErrNotApproved
	}
	u.resolveCover(profile)
	return profile, nil
}

func (u *ClientUsecase) resolveCover(b *entities.BusinessProfile) {
	if b.CoverPhotoURL.Valid && b.CoverPhotoURL.String != "" {
		b.CoverPhotoURL.String = u.resolver.PublicURL(u.bucket, b.CoverPhotoURL.String)
	}
}
