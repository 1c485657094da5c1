package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"laundry-scout.backend/internal/domain/entities"
	domainerrors "laundry-scout.backend/internal/domain/errors"
	"laundry-scout.backend/internal/infrastructure/models"
	"laundry-scout.backend/pkg/utils"
)

// BusinessRepository implements business-profile data operations
type BusinessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository creates a new business repository
func NewBusinessRepository(db *gorm.DB) *BusinessRepository {
	return &BusinessRepository{db: db}
}

// applyFilter narrows a business_profiles query by search term, status
// and creation date range. Date bounds are inclusive calendar dates
// widened to whole days (start 00:00:00.000, end 23:59:59.999).
func applyFilter(query *gorm.DB, filter entities.ListFilter) *gorm.DB {
	if filter.Search != "" {
		term := "%" + toSearchTerm(filter.Search) + "%"
		query = query.Where(
			`LOWER(business_name) LIKE ? OR LOWER(owner_first_name) LIKE ? OR LOWER(owner_last_name) LIKE ?
			 OR LOWER(owner_email) LIKE ? OR LOWER(business_address) LIKE ? OR business_phone_number LIKE ?`,
			term, term, term, term, term, term,
		)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", toSearchTerm(filter.Status))
	}
	if filter.From != nil {
		start := startOfDay(*filter.From)
		query = query.Where("created_at >= ?", start)
	}
	if filter.To != nil {
		end := endOfDay(*filter.To)
		query = query.Where("created_at <= ?", end)
	}
	return query
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, t.Location())
}

// List returns business profiles matching the filter plus the total
// match count before pagination.
func (r *BusinessRepository) List(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&models.BusinessProfile{}), filter)
}

// ListApproved returns only approved profiles. This is the single query
// definition behind the Clients view.
func (r *BusinessRepository) ListApproved(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	filter.Status = ""
	query := r.db.WithContext(ctx).Model(&models.BusinessProfile{}).
		Where("status = ?", string(entities.BusinessStatusApproved))
	return r.list(ctx, query, filter)
}

// ListDecided returns approved and rejected profiles newest-first for
// the history projection.
func (r *BusinessRepository) ListDecided(ctx context.Context, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	filter.Status = ""
	query := r.db.WithContext(ctx).Model(&models.BusinessProfile{}).
		Where("status IN ?", []string{
			string(entities.BusinessStatusApproved),
			string(entities.BusinessStatusRejected),
		})
	return r.list(ctx, query, filter)
}

func (r *BusinessRepository) list(ctx context.Context, query *gorm.DB, filter entities.ListFilter) ([]*entities.BusinessProfile, int64, error) {
	query = applyFilter(query, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params := utils.GetPaginationParams(filter.Page, filter.Limit)
	query = query.Order("updated_at DESC")
	if params.Limit > 0 {
		query = query.Offset(params.CalculateOffset()).Limit(params.Limit)
	}

	var rows []models.BusinessProfile
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.BusinessProfile, 0, len(rows))
	for i := range rows {
		items = append(items, businessToEntity(&rows[i]))
	}
	return items, total, nil
}

// GetByID gets a business profile by ID
func (r *BusinessRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error) {
	var m models.BusinessProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return businessToEntity(&m), nil
}

// Approve marks a profile approved and returns the post-update row.
// Zero rows affected on an existing row is surfaced as ErrNoRowsUpdated
// so a silently dropped write can never look like success.
func (r *BusinessRepository) Approve(ctx context.Context, id uuid.UUID) (*entities.BusinessProfile, error) {
	updates := map[string]interface{}{
		"status":           string(entities.BusinessStatusApproved),
		"rejection_reason": nil,
		"rejection_notes":  nil,
		"updated_at":       time.Now(),
	}
	return r.review(ctx, id, updates)
}

// Reject marks a profile rejected with the given reason and notes.
func (r *BusinessRepository) Reject(ctx context.Context, id uuid.UUID, reason, notes string) (*entities.BusinessProfile, error) {
	updates := map[string]interface{}{
		"status":           string(entities.BusinessStatusRejected),
		"rejection_reason": reason,
		"updated_at":       time.Now(),
	}
	if notes != "" {
		updates["rejection_notes"] = notes
	} else {
		updates["rejection_notes"] = nil
	}
	return r.review(ctx, id, updates)
}

func (r *BusinessRepository) review(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*entities.BusinessProfile, error) {
	result := r.db.WithContext(ctx).Model(&models.BusinessProfile{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&models.BusinessProfile{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, domainerrors.ErrNotFound
		}
		return nil, domainerrors.ErrNoRowsUpdated
	}
	return r.GetByID(ctx, id)
}

// Count returns the number of registered businesses
func (r *BusinessRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BusinessProfile{}).Count(&count).Error
	return count, err
}

// Recent returns the latest registrations, newest first
func (r *BusinessRepository) Recent(ctx context.Context, limit int) ([]*entities.BusinessProfile, error) {
	var rows []models.BusinessProfile
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.BusinessProfile, 0, len(rows))
	for i := range rows {
		items = append(items, businessToEntity(&rows[i]))
	}
	return items, nil
}

// CreatedAfter returns registrations newer than t, oldest first, so the
// watcher can advance its watermark in order.
func (r *BusinessRepository) CreatedAfter(ctx context.Context, t time.Time, limit int) ([]*entities.BusinessProfile, error) {
	var rows []models.BusinessProfile
	err := r.db.WithContext(ctx).
		Where("created_at > ?", t).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]*entities.BusinessProfile, 0, len(rows))
	for i := range rows {
		items = append(items, businessToEntity(&rows[i]))
	}
	return items, nil
}

func businessToEntity(m *models.BusinessProfile) *entities.BusinessProfile {
	return &entities.BusinessProfile{
		ID:                     m.ID,
		BusinessName:           m.BusinessName,
		BusinessAddress:        m.BusinessAddress,
		BusinessType:           m.BusinessType,
		BusinessPhoneNumber:    m.BusinessPhoneNumber,
		OwnerFirstName:         m.OwnerFirstName,
		OwnerLastName:          m.OwnerLastName,
		OwnerEmail:             m.OwnerEmail,
		OwnerPhone:             m.OwnerPhone,
		BIRRegistrationURL:     null.StringFromPtr(m.BIRRegistrationURL),
		BusinessCertificateURL: null.StringFromPtr(m.BusinessCertificateURL),
		MayorsPermitURL:        null.StringFromPtr(m.MayorsPermitURL),
		CoverPhotoURL:          null.StringFromPtr(m.CoverPhotoURL),
		Status:                 entities.BusinessStatus(m.Status),
		RejectionReason:        null.StringFromPtr(m.RejectionReason),
		RejectionNotes:         null.StringFromPtr(m.RejectionNotes),
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}
