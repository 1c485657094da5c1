package usecases_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/usecases"
)

func newProfileUsecase(repo *MockAdminRepository) *usecases.ProfileUsecase {
	return usecases.NewProfileUsecase(repo, stubResolver{}, "admin-avatars")
}

func TestProfileGet_ResolvesAvatar(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := newProfileUsecase(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&entities.Admin{
		ID:        id,
		Username:  "operator",
		AvatarURL: null.StringFrom("avatars/op.png"),
	}, nil)

	admin, err := uc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/admin-avatars/avatars/op.png", admin.AvatarURL.String)
}

func TestProfileUpdate_FieldLevel(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := newProfileUsecase(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&entities.Admin{
		ID:       id,
		Username: "operator",
		Email:    null.StringFrom("old@example.com"),
	}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *entities.Admin) bool {
		return a.Username == "operator" && a.Email.String == "new@example.com" && a.PhoneNumber.String == "09991234567"
	})).Return(nil)

	email := "new@example.com"
	phone := "09991234567"
	admin, err := uc.Update(context.Background(), id, &entities.UpdateProfileInput{
		Email:       &email,
		PhoneNumber: &phone,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", admin.Email.String)
	repo.AssertExpectations(t)
}

func TestProfileUpdate_RejectsEmptyUsername(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := newProfileUsecase(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&entities.Admin{ID: id, Username: "operator"}, nil)

	empty := ""
	_, err := uc.Update(context.Background(), id, &entities.UpdateProfileInput{Username: &empty})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileSetAvatar(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := newProfileUsecase(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&entities.Admin{ID: id, Username: "operator"}, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(a *entities.Admin) bool {
		return a.AvatarURL.String == "avatars/new.png"
	})).Return(nil)

	url, err := uc.SetAvatar(context.Background(), id, "avatars/new.png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/admin-avatars/avatars/new.png", url)

	_, err = uc.SetAvatar(context.Background(), id, "")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestProfileSettings_DefaultsWhenUnset(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := newProfileUsecase(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&entities.Admin{ID: id, Username: "operator"}, nil)

	prefs, err := uc.GetSettings(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "light", prefs.Theme)
	assert.True(t, prefs.PushNotifications)
}

func TestProfileSettings_RoundTrip(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := newProfileUsecase(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&entities.Admin{
		ID:          id,
		Username:    "operator",
		Preferences: null.JSONFrom([]byte(`{"theme":"dark","autoApprove":true}`)),
	}, nil)
	repo.On("UpdatePreferences", mock.Anything, id, mock.Anything).Return(nil)

	prefs, err := uc.GetSettings(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "dark", prefs.Theme)
	assert.True(t, prefs.AutoApprove)

	prefs.Language = "fil"
	require.NoError(t, uc.UpdateSettings(context.Background(), id, prefs))
	repo.AssertExpectations(t)
}

func TestProfileSettings_CorruptDocumentFallsBack(t *testing.T) {
	repo := new(MockAdminRepository)
	uc := newProfileUsecase(repo)
	id := uuid.New()

	repo.On("GetByID", mock.Anything, id).Return(&entities.Admin{
		ID:          id,
		Username:    "operator",
		Preferences: null.JSONFrom([]byte(`{not json`)),
	}, nil)

	prefs, err := uc.GetSettings(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "light", prefs.Theme)
}
