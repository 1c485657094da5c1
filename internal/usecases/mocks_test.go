package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"laundry-scout.backend/internal/domain/entities"
)

// Mock BusinessRepository
type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) List(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.BusinessProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockBusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusinessProfile), args.Error(1)
}

func (m *MockBusinessRepository) Approve(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusinessProfile), args.Error(1)
}

func (m *MockBusinessRepository) Reject(ctx context.Context, id uuid.UUID, reason, notes string) (*entities.BusinessProfile, error) {
	args := m.Called(ctx, id, reason, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.BusinessProfile), args.Error(1)
}

func (m *MockBusinessRepository) ListApproved(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.BusinessProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockBusinessRepository) ListDecided(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.BusinessProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockBusinessRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBusinessRepository) Recent(ctx context.Context, limit int) ([]*entities.BusinessProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BusinessProfile), args.Error(1)
}

func (m *MockBusinessRepository) CreatedAfter(ctx context.Context, t time.Time, limit int) ([]*entities.BusinessProfile, error) {
	args := m.Called(ctx, t, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.BusinessProfile), args.Error(1)
}

// Mock UserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) List(ctx context.Context, search string) ([]*entities.UserProfile, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserProfileRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserProfileRepository) Recent(ctx context.Context, limit int) ([]*entities.UserProfile, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) CreatedAfter(ctx context.Context, t time.Time, limit int) ([]*entities.UserProfile, error) {
	args := m.Called(ctx, t, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) GetPushToken(ctx context.Context, id uuid.UUID) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// Mock FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) List(ctx context.Context, feedbackType string) ([]*entities.FeedbackView, error) {
	args := m.Called(ctx, feedbackType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FeedbackView), args.Error(1)
}

func (m *MockFeedbackRepository) Ratings(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockFeedbackRepository) CountByTypes(ctx context.Context, types ...entities.FeedbackType) (int64, error) {
	args := m.Called(ctx, types)
	return args.Get(0).(int64), args.Error(1)
}

// Mock AdminRepository
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) Create(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByUsernameOrEmail(ctx context.Context, identifier string) (*entities.Admin, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) GetByEmail(ctx context.Context, email string) (*entities.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Admin), args.Error(1)
}

func (m *MockAdminRepository) Update(ctx context.Context, admin *entities.Admin) error {
	args := m.Called(ctx, admin)
	return args.Error(0)
}

func (m *MockAdminRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockAdminRepository) UpdatePreferences(ctx context.Context, id uuid.UUID, raw []byte) error {
	args := m.Called(ctx, id, raw)
	return args.Error(0)
}

// Mock QRScanRepository
type MockQRScanRepository struct {
	mock.Mock
}

func (m *MockQRScanRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// stubResolver joins bucket and path so assertions can see both
type stubResolver struct{}

func (stubResolver) PublicURL(bucket, path string) string {
	return "https://cdn.test/" + bucket + "/" + path
}

// stubHub records broadcast events
type stubHub struct {
	events []entities.Event
}

func (s *stubHub) Broadcast(event entities.Event) {
	s.events = append(s.events, event)
}

// stubAuthAPI records auth-admin deletions
type stubAuthAPI struct {
	deleted []string
	err     error
}

func (s *stubAuthAPI) DeleteUser(_ context.Context, userID string) error {
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, userID)
	return nil
}
