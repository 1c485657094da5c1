package repositories

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"laundry-scout.backend/internal/domain/entities"
	"laundry-scout.backend/internal/infrastructure/models"
)

// FeedbackRepository implements read-only feedback data operations
type FeedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

type feedbackRow struct {
	models.Feedback
	UserFirstName   string  `gorm:"column:user_first_name"`
	UserLastName    string  `gorm:"column:user_last_name"`
	UserUsername    string  `gorm:"column:user_username"`
	ProfileImageURL *string `gorm:"column:profile_image_url"`
}

// List returns feedback rows joined with the author's identity, newest
// first. An empty feedbackType returns everything.
func (r *FeedbackRepository) List(ctx context.Context, feedbackType string) ([]*entities.FeedbackView, error) {
	query := r.db.WithContext(ctx).
		Table("feedback").
		Select(`feedback.*, user_profiles.first_name AS user_first_name,
			user_profiles.last_name AS user_last_name,
			user_profiles.username AS user_username,
			user_profiles.profile_image_url`).
		Joins("LEFT JOIN user_profiles ON user_profiles.id = feedback.user_id").
		Order("feedback.created_at DESC")

	if feedbackType != "" {
		query = query.Where("feedback.feedback_type = ?", toSearchTerm(feedbackType))
	}

	var rows []feedbackRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.FeedbackView, 0, len(rows))
	for i := range rows {
		items = append(items, feedbackToView(&rows[i]))
	}
	return items, nil
}

// Ratings returns every stored rating value, unfiltered
func (r *FeedbackRepository) Ratings(ctx context.Context) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).Model(&models.Feedback{}).Pluck("rating", &ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// CountByTypes counts feedback whose type is in the given set
func (r *FeedbackRepository) CountByTypes(ctx context.Context, types ...entities.FeedbackType) (int64, error) {
	values := make([]string, 0, len(types))
	for _, t := range types {
		values = append(values, string(t))
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Feedback{}).
		Where("feedback_type IN ?", values).
		Count(&count).Error
	return count, err
}

func feedbackToView(row *feedbackRow) *entities.FeedbackView {
	v := &entities.FeedbackView{
		Feedback: entities.Feedback{
			ID:        row.ID,
			UserID:    row.UserID,
			Rating:    row.Rating,
			Comment:   row.Comment,
			Type:      entities.FeedbackType(row.FeedbackType),
			CreatedAt: row.CreatedAt,
		},
		UserFullName: strings.TrimSpace(row.UserFirstName + " " + row.UserLastName),
		UserUsername: row.UserUsername,
	}
	if row.BusinessID != nil {
		v.BusinessID.UUID = *row.BusinessID
		v.BusinessID.Valid = true
	}
	if row.ProfileImageURL != nil {
		v.UserAvatar.SetValid(*row.ProfileImageURL)
	}
	return v
}
