package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
)

func seedBusiness(t *testing.T, db *gorm.DB, id uuid.UUID, name, status string, createdAt time.Time) {
	t.Helper()
	mustExec(t, db, `INSERT INTO business_profiles
		(id, business_name, business_address, owner_first_name, owner_last_name, owner_email, business_phone_number, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, name, "123 Main St", "Maria", "Santos", "maria@example.com", "09170000001", status, createdAt, createdAt)
}

func TestBusinessRepository_ListSearchAndStatus(t *testing.T) {
	db := newTestDB(t)
	createBusinessProfileTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	now := time.Now()
	seedBusiness(t, db, uuid.New(), "Sparkle Wash", "pending", now)
	seedBusiness(t, db, uuid.New(), "Bubble Laundry", "approved", now)
	seedBusiness(t, db, uuid.New(), "Fresh Fold", "rejected", now)

	items, total, err := repo.List(ctx, entities.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.EqualValues(t, 3, total)

	// search is case-insensitive across business and owner fields
	items, total, err = repo.List(ctx, entities.ListFilter{Search: "SPARKLE"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.EqualValues(t, 1, total)
	require.Equal(t, "Sparkle Wash", items[0].BusinessName)

	items, _, err = repo.List(ctx, entities.ListFilter{Search: "maria"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	// status filter is normalized to lowercase equality
	items, _, err = repo.List(ctx, entities.ListFilter{Status: "Approved"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, entities.BusinessStatusApproved, items[0].Status)
}

func TestBusinessRepository_ListDateRangeWidensToWholeDays(t *testing.T) {
	db := newTestDB(t)
	createBusinessProfileTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	day := func(s string) time.Time {
		ts, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		return ts
	}

	seedBusiness(t, db, uuid.New(), "Too Early", "pending", day("2024-12-18T23:59:59Z"))
	seedBusiness(t, db, uuid.New(), "First Minute", "pending", day("2024-12-19T00:00:00Z"))
	seedBusiness(t, db, uuid.New(), "Midday", "pending", day("2024-12-19T12:30:00Z"))
	seedBusiness(t, db, uuid.New(), "Last Second", "pending", day("2024-12-20T23:59:59Z"))
	seedBusiness(t, db, uuid.New(), "Too Late", "pending", day("2024-12-21T00:00:00Z"))

	from := day("2024-12-19T08:15:00Z")
	to := day("2024-12-20T08:15:00Z")
	items, total, err := repo.List(ctx, entities.ListFilter{From: &from, To: &to})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)

	names := make([]string, 0, len(items))
	for _, b := range items {
		names = append(names, b.BusinessName)
	}
	require.ElementsMatch(t, []string{"First Minute", "Midday", "Last Second"}, names)
}

func TestBusinessRepository_ListPagination(t *testing.T) {
	db := newTestDB(t)
	createBusinessProfileTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 7; i++ {
		seedBusiness(t, db, uuid.New(), "Shop", "pending", base.Add(time.Duration(i)*time.Minute))
	}

	items, total, err := repo.List(ctx, entities.ListFilter{Page: 2, Limit: 3})
	require.NoError(t, err)
	require.EqualValues(t, 7, total)
	require.Len(t, items, 3)

	items, total, err = repo.List(ctx, entities.ListFilter{Page: 3, Limit: 3})
	require.NoError(t, err)
	require.EqualValues(t, 7, total)
	require.Len(t, items, 1)
}

func TestBusinessRepository_ApproveAndReject(t *testing.T) {
	db := newTestDB(t)
	createBusinessProfileTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	id := uuid.New()
	seedBusiness(t, db, id, "Sparkle Wash", "pending", time.Now())

	approved, err := repo.Approve(ctx, id)
	require.NoError(t, err)
	require.Equal(t, entities.BusinessStatusApproved, approved.Status)
	require.False(t, approved.RejectionReason.Valid)

	// approving again succeeds and reports the same status
	again, err := repo.Approve(ctx, id)
	require.NoError(t, err)
	require.Equal(t, entities.BusinessStatusApproved, again.Status)

	rejected, err := repo.Reject(ctx, id, "Incomplete Documents", "missing permit")
	require.NoError(t, err)
	require.Equal(t, entities.BusinessStatusRejected, rejected.Status)
	require.Equal(t, "Incomplete Documents", rejected.RejectionReason.String)
	require.Equal(t, "missing permit", rejected.RejectionNotes.String)

	// re-approval clears the rejection metadata
	cleared, err := repo.Approve(ctx, id)
	require.NoError(t, err)
	require.False(t, cleared.RejectionReason.Valid)
	require.False(t, cleared.RejectionNotes.Valid)
}

func TestBusinessRepository_ReviewNotFound(t *testing.T) {
	db := newTestDB(t)
	createBusinessProfileTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	_, err := repo.Approve(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.Reject(ctx, uuid.New(), "Invalid Documents", "")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestBusinessRepository_Projections(t *testing.T) {
	db := newTestDB(t)
	createBusinessProfileTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	now := time.Now()
	seedBusiness(t, db, uuid.New(), "Pending Shop", "pending", now)
	seedBusiness(t, db, uuid.New(), "Approved Shop", "approved", now)
	seedBusiness(t, db, uuid.New(), "Rejected Shop", "rejected", now)

	// clients view returns approved rows only, even when the caller
	// asks for another status
	clients, total, err := repo.ListApproved(ctx, entities.ListFilter{Status: "rejected"})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Len(t, clients, 1)
	require.Equal(t, entities.BusinessStatusApproved, clients[0].Status)

	decided, total, err := repo.ListDecided(ctx, entities.ListFilter{})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	for _, b := range decided {
		require.NotEqual(t, entities.BusinessStatusPending, b.Status)
	}
}

func TestBusinessRepository_CountRecentAndCreatedAfter(t *testing.T) {
	db := newTestDB(t)
	createBusinessProfileTable(t, db)
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 4; i++ {
		seedBusiness(t, db, uuid.New(), "Shop", "pending", base.Add(time.Duration(i)*time.Minute))
	}

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 4, count)

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.True(t, recent[0].CreatedAt.After(recent[1].CreatedAt))

	newer, err := repo.CreatedAfter(ctx, base.Add(90*time.Second), 10)
	require.NoError(t, err)
	require.Len(t, newer, 2)
	require.True(t, newer[0].CreatedAt.Before(newer[1].CreatedAt))
}

func TestBusinessRepository_DBErrorBranches(t *testing.T) {
	db := newTestDB(t)
	// intentionally skip table creation
	repo := NewBusinessRepository(db)
	ctx := context.Background()

	_, _, err := repo.List(ctx, entities.ListFilter{})
	require.Error(t, err)
	_, err = repo.GetByID(ctx, uuid.New())
	require.Error(t, err)
	_, err = repo.Approve(ctx, uuid.New())
	require.Error(t, err)
	_, err = repo.Count(ctx)
	require.Error(t, err)
}
