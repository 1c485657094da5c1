package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/domain/repositories"
)

// URLResolver resolves stored document paths to public URLs
type URLResolver interface {
	PublicURL(bucket, path string) string
}

// EventBroadcaster pushes review events to connected dashboards
type EventBroadcaster interface {
	Broadcast(event entities.Event)
}

// ApplicationUsecase handles business application review
type ApplicationUsecase struct {
	businessRepo    repositories.BusinessRepository
	resolver        URLResolver
	hub             EventBroadcaster
	documentsBucket string
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(
	businessRepo repositories.BusinessRepository,
	resolver URLResolver,
	hub EventBroadcaster,
	documentsBucket string,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		businessRepo:    businessRepo,
		resolver:        resolver,
		hub:             hub,
		documentsBucket: documentsBucket,
	}
}

// List returns applications matching the filter plus the total count
func (u *ApplicationUsecase) List(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	return u.businessRepo.List(ctx, filter)
}

// Review loads one application with its documents resolved for display
func (u *ApplicationUsecase) Review(ctx context.Context, id uuid.UUID) (*entities.ApplicationReview, error) {
	profile, err := u.businessRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	docs := []entities.ReviewDocument{
		u.document("BIR Registration", profile.BIRRegistrationURL.String),
		u.document("Business Certificate", profile.BusinessCertificateURL.String),
		u.document("Mayor's Permit", profile.MayorsPermitURL.String),
	}

	return &entities.ApplicationReview{
		Profile:   profile,
		Documents: docs,
	}, nil
}

func (u *ApplicationUsecase) document(name, path string) entities.ReviewDocument {
	doc := entities.ReviewDocument{Name: name}
	if path == "" {
		return doc
	}
	doc.URL = u.resolver.PublicURL(u.documentsBucket, path)
	doc.Uploaded = true
	return doc
}

// Approve marks an application approved and notifies dashboards.
// Approving an already-approved application is a no-op success; history
// is a projection of the row, so no duplicate entry can appear.
func (u *ApplicationUsecase) Approve(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error) {
	profile, err := u.businessRepo.Approve(ctx, id)
	if err != nil {
		return nil, err
	}

	u.hub.Broadcast(entities.Event{
		Type:    entities.NotificationTypeApproval,
		Payload: profile,
		At:      time.Now(),
	})
	return profile, nil
}

// Reject marks an application rejected. The reason must come from the
// enumerated set; nothing is written when it does not.
func (u *ApplicationUsecase) Reject(ctx context.Context, id uuid.UUID, input *entities.RejectInput) (*entities.BusinessProfile, error) {
	if !entities.IsValidRejectionReason(input.Reason) {
		return nil, domainerrors.ErrInvalidReason
	}

	profile, err := u.businessRepo.Reject(ctx, id, input.Reason, input.Notes)
	if err != nil {
		return nil, err
	}

	u.hub.Broadcast(entities.Event{
		Type:    entities.NotificationTypeRejected,
		Payload: profile,
		At:      time.Now(),
	})
	return profile, nil
}

// RejectionReasons returns the fixed reason set for the review dialog
func (u *ApplicationUsecase) RejectionReasons() []string {
	return entities.RejectionReasons
}
