package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/usecases"
)

func TestHistoryList_ProjectsDecidedApplications(t *testing.T) {
	repo := new(MockBusinessRepository)
	uc := usecases.NewHistoryUsecase(repo)

	now := time.Now()
	repo.On("ListDecided", mock.Anything, mock.Anything).Return([]*entities.BusinessProfile{
		{
			ID:             uuid.New(),
			BusinessName:   "Sparkle Wash",
			OwnerFirstName: "Maria",
			OwnerLastName:  "Santos",
			Status:         entities.BusinessStatusApproved,
			UpdatedAt:      now,
		},
		{
			ID:              uuid.New(),
			BusinessName:    "Bubble Laundry",
			Status:          entities.BusinessStatusRejected,
			RejectionReason: null.StringFrom("Invalid Documents"),
			UpdatedAt:       now.Add(-time.Hour),
		},
	}, int64(2), nil)

	records, total, err := uc.List(context.Background(), entities.ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, records, 2)

	assert.Equal(t, entities.HistoryActionApproval, records[0].Action)
	assert.Equal(t, "Maria Santos", records[0].OwnerName)
	assert.Equal(t, entities.HistoryActionRejection, records[1].Action)
	assert.Equal(t, "Invalid Documents", records[1].RejectionReason.String)
}

func TestHistoryList_RepoError(t *testing.T) {
	repo := new(MockBusinessRepository)
	uc := usecases.NewHistoryUsecase(repo)

	repo.On("ListDecided", mock.Anything, mock.Anything).Return(nil, int64(0), assert.AnError)

	_, _, err := uc.List(context.Background(), entities.ListFilter{})
	assert.Error(t, err)
}

func TestClientGet_OnlyApprovedIsVisible(t *testing.T) {
	repo := new(MockBusinessRepository)
	uc := usecases.NewClientUsecase(repo, stubResolver{}, "businessdocuments")
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&entities.BusinessProfile{
		ID:     id,
		Status: entities.BusinessStatusPending,
	}, nil)

	_, err := uc.Get(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrNotApproved)
}

func TestClientList_ResolvesCoverPhotos(t *testing.T) {
	repo := new(MockBusinessRepository)
	uc := usecases.NewClientUsecase(repo, stubResolver{}, "businessdocuments")

	repo.On("ListApproved", mock.Anything, mock.Anything).Return([]*entities.BusinessProfile{
		{ID: uuid.New(), Status: entities.BusinessStatusApproved, CoverPhotoURL: null.StringFrom("covers/shop.png")},
	}, int64(1), nil)

	items, total, err := uc.List(context.Background(), entities.ListFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "https://cdn.test/businessdocuments/covers/shop.png", items[0].CoverPhotoURL.String)
}
