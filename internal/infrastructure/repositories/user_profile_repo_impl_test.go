package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	domainerrors "laundry-scout.backend/internal/domain/errors"
)

func seedUserProfile(t *testing.T, db *gorm.DB, id uuid.UUID, username, email, fcmToken string, createdAt time.Time) {
	t.Helper()
	var token interface{}
	if fcmToken != "" {
		token = fcmToken
	}
	mustExec(t, db, `INSERT INTO user_profiles
		(id, first_name, last_name, username, email, mobile_number, verified_status, fcm_token, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, "Juan", "Dela Cruz", username, email, "09180000002", "Verified", token, createdAt, createdAt)
}

func TestUserProfileRepository_ListAndSearch(t *testing.T) {
	db := newTestDB(t)
	createUserProfileTable(t, db)
	repo := NewUserProfileRepository(db)
	ctx := context.Background()

	now := time.Now()
	seedUserProfile(t, db, uuid.New(), "juandc", "juan@example.com", "", now)
	seedUserProfile(t, db, uuid.New(), "annam", "anna@example.com", "", now.Add(time.Minute))

	items, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "annam", items[0].Username)

	items, err = repo.List(ctx, "ANNA")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "annam", items[0].Username)

	items, err = repo.List(ctx, "09180000002")
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestUserProfileRepository_SoftDelete(t *testing.T) {
	db := newTestDB(t)
	createUserProfileTable(t, db)
	repo := NewUserProfileRepository(db)
	ctx := context.Background()

	id := uuid.New()
	seedUserProfile(t, db, id, "juandc", "juan@example.com", "", time.Now())

	require.NoError(t, repo.SoftDelete(ctx, id))

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	require.ErrorIs(t, repo.SoftDelete(ctx, uuid.New()), domainerrors.ErrNotFound)
}

func TestUserProfileRepository_GetPushToken(t *testing.T) {
	db := newTestDB(t)
	createUserProfileTable(t, db)
	repo := NewUserProfileRepository(db)
	ctx := context.Background()

	withToken := uuid.New()
	withoutToken := uuid.New()
	seedUserProfile(t, db, withToken, "juandc", "juan@example.com", "fcm-token-abcdef123456", time.Now())
	seedUserProfile(t, db, withoutToken, "annam", "anna@example.com", "", time.Now())

	token, err := repo.GetPushToken(ctx, withToken)
	require.NoError(t, err)
	require.Equal(t, "fcm-token-abcdef123456", token)

	_, err = repo.GetPushToken(ctx, withoutToken)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetPushToken(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserProfileRepository_RecentAndCreatedAfter(t *testing.T) {
	db := newTestDB(t)
	createUserProfileTable(t, db)
	repo := NewUserProfileRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		seedUserProfile(t, db, uuid.New(), "user", "u@example.com", "", base.Add(time.Duration(i)*time.Minute))
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.True(t, recent[0].CreatedAt.After(recent[1].CreatedAt))

	newer, err := repo.CreatedAfter(ctx, base.Add(30*time.Second), 10)
	require.NoError(t, err)
	require.Len(t, newer, 2)
	require.True(t, newer[0].CreatedAt.Before(newer[1].CreatedAt))
}
