package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"myguide/internal/models/db_models"
	"myguide/internal/models/request_models"
	"myguide/internal/models/response_models"
	"myguide/internal/repositories"
	"myguide/pkg/utils"
)

// FeedbackServiceInterface records traveller ratings of places. The catalog
// averages them into the rating the itinerary ranking uses.
type FeedbackServiceInterface interface {
	AddFeedback(ctx context.Context, userID string, placeID string, req request_models.AddFeedbackRequest) error
	GetFeedback(ctx context.Context, placeID string, page, pageSize int) ([]response_models.FeedbackResponse, error)
}

type FeedbackService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	logger       *zap.Logger
}

func NewFeedbackService(feedbackRepo repositories.FeedbackRepositoryInterface, logger *zap.Logger) FeedbackServiceInterface {
	return &FeedbackService{feedbackRepo: feedbackRepo, logger: logger}
}

func (s *FeedbackService) AddFeedback(ctx context.Context, userID string, placeID string, req request_models.AddFeedbackRequest) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrUnauthorized
	}
	pid, err := uuid.Parse(placeID)
	if err != nil {
		return utils.ErrPlaceNotFound
	}
	if req.Rating < 1 || req.Rating > 5 {
		return utils.ErrInvalidInput
	}

	exists, err := s.feedbackRepo.PlaceExists(ctx, placeID)
	if err != nil {
		s.logger.Error("failed to look up place", zap.Error(err), zap.String("place_id", placeID))
		return utils.ErrDatabaseError
	}
	if !exists {
		return utils.ErrPlaceNotFound
	}

	feedback := &db_models.PlaceFeedback{
		PlaceID: pid,
		UserID:  uid,
		Comment: req.Comment,
		Rating:  req.Rating,
	}
	if err := s.feedbackRepo.CreateFeedback(ctx, feedback); err != nil {
		s.logger.Error("failed to store feedback", zap.Error(err), zap.String("place_id", placeID))
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *FeedbackService) GetFeedback(ctx context.Context, placeID string, page, pageSize int) ([]response_models.FeedbackResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	if _, err := uuid.Parse(placeID); err != nil {
		return nil, utils.ErrPlaceNotFound
	}

	feedbacks, err := s.feedbackRepo.ListFeedbackByPlace(ctx, placeID, page, pageSize)
	if err != nil {
		s.logger.Error("failed to list feedback", zap.Error(err), zap.String("place_id", placeID))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		out = append(out, response_models.FeedbackResponse{
			ID:        f.ID.String(),
			PlaceID:   f.PlaceID.String(),
			Rating:    f.Rating,
			Comment:   f.Comment,
			CreatedAt: utils.FormatRFC3339DZ(utils.FromUnixSecondsDZ(f.CreatedAt)),
		})
	}
	return out, nil
}
