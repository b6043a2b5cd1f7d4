package repositories

import (
	"context"

	"gorm.io/gorm"

	"myguide/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	CreateFeedback(ctx context.Context, feedback *db_models.PlaceFeedback) error
	ListFeedbackByPlace(ctx context.Context, placeID string, page, pageSize int) ([]db_models.PlaceFeedback, error)
	PlaceExists(ctx context.Context, placeID string) (bool, error)
}
type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *db_models.PlaceFeedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *FeedbackRepository) ListFeedbackByPlace(ctx context.Context, placeID string, page, pageSize int) ([]db_models.PlaceFeedback, error) {
	var feedbacks []db_models.PlaceFeedback
	err := r.db.WithContext(ctx).
		Where("place_id = ?", placeID).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Order("created_at DESC").
		Find(&feedbacks).Error
	return feedbacks, err
}

// PlaceExists only counts active places.
func (r *FeedbackRepository) PlaceExists(ctx context.Context, placeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Place{}).
		Where("id = ? AND status = ?", placeID, db_models.PlaceStatusActive).
		Count(&count).Error
	return count > 0, err
}
