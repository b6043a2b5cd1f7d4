package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"myguide/internal/models/db_models"
	"myguide/internal/models/response_models"
	"myguide/internal/repositories"
	"myguide/pkg/utils"
)

type JourneyServiceInterface interface {
	GetListOfJourneyByUserId(ctx context.Context, page int, pagesize int, userId string) ([]response_models.JourneyResponse, error)
	GetDetailsInfoOfJourneyById(ctx context.Context, journeyId string, userId string) (*response_models.JourneyDetailResponse, error)
}

type JourneyService struct {
	journeyRepo repositories.JourneyRepository
	logger      *zap.Logger
}

func NewJourneyService(journeyRepo repositories.JourneyRepository, logger *zap.Logger) JourneyServiceInterface {
	return &JourneyService{
		journeyRepo: journeyRepo,
		logger:      logger,
	}
}

func (j *JourneyService) GetListOfJourneyByUserId(
	ctx context.Context, page, pagesize int, userId string,
) ([]response_models.JourneyResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pagesize < 1 || pagesize > 100 {
		return nil, utils.ErrInvalidPageSize
	}
	if _, err := uuid.Parse(userId); err != nil {
		return nil, utils.ErrUnauthorized
	}

	journeys, err := j.journeyRepo.GetListOfJourneyByUserId(ctx, page, pagesize, userId)
	if err != nil {
		j.logger.Error("failed to list journeys", zap.Error(err), zap.String("user_id", userId))
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.JourneyResponse, 0, len(journeys))
	for _, journey := range journeys {
		var end int64
		if journey.EndDate != nil {
			end = *journey.EndDate
		}
		out = append(out, response_models.JourneyResponse{
			ID:        journey.ID.String(),
			Title:     journey.Title,
			StartDate: utils.FormatDateDZ(utils.FromUnixSecondsDZ(journey.StartDate)), // "" if zero
			EndDate:   utils.FormatDateDZ(utils.FromUnixSecondsDZ(end)),
			Location:  journey.Location,
		})
	}
	return out, nil
}

// GetDetailsInfoOfJourneyById hides journeys owned by someone else behind not found.
func (j *JourneyService) GetDetailsInfoOfJourneyById(ctx context.Context, journeyId string, userId string) (*response_models.JourneyDetailResponse, error) {
	if _, err := uuid.Parse(journeyId); err != nil {
		return nil, utils.ErrJourneyNotFound
	}

	journey, err := j.journeyRepo.GetDetailsOfJourneyById(ctx, journeyId)
	if err != nil {
		j.logger.Error("failed to load journey", zap.Error(err), zap.String("journey_id", journeyId))
		return nil, utils.ErrDatabaseError
	}
	if journey == nil || journey.UserID.String() != userId {
		return nil, utils.ErrJourneyNotFound
	}

	return buildJourneyDetailResponse(journey), nil
}

func buildJourneyDetailResponse(j *db_models.Journey) *response_models.JourneyDetailResponse {
	start := utils.FromUnixSecondsDZ(j.StartDate)
	var end int64
	if j.EndDate != nil {
		end = *j.EndDate
	}

	out := &response_models.JourneyDetailResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Location:        j.Location,
		StartDate:       utils.FormatDateDZ(start),
		EndDate:         utils.FormatDateDZ(utils.FromUnixSecondsDZ(end)),
		IsShared:        j.IsShared,
		IsCompleted:     j.IsCompleted,
		TripType:        j.TripType,
		GroupSize:       j.GroupSize,
		Currency:        j.Currency,
		EstimatedTotal:  j.EstimatedTotal,
		ConfidenceScore: j.ConfidenceScore,
		TotalDays:       len(j.Days),
		Days:            make([]response_models.JourneyDayResponse, 0, len(j.Days)),
	}
	if end > 0 && j.StartDate > 0 {
		out.DurationDays = int((end-j.StartDate)/86400) + 1
	}

	for _, d := range j.Days {
		day := response_models.JourneyDayResponse{
			ID:          d.ID,
			DayNumber:   d.DayNumber,
			Date:        utils.FormatDateDZ(d.Date),
			Title:       d.Title,
			Description: d.Description,
			Activities:  make([]response_models.JourneyActivityDetail, 0, len(d.Activities)),
		}
		for _, a := range d.Activities {
			detail := response_models.JourneyActivityDetail{
				ID:              a.ID,
				StartTime:       utils.FormatClockDZ(a.Time),
				DurationMinutes: a.DurationMinutes,
				ActivityType:    a.ActivityType,
				EstimatedCost:   a.EstimatedCost,
				Notes:           a.Notes,
			}
			if a.EndTime != nil {
				detail.EndTime = utils.FormatClockDZ(*a.EndTime)
			}
			if p := a.SelectedPlace; p != nil {
				detail.SelectedPlace = &response_models.PlaceSummary{
					ID:        p.ID,
					Name:      p.Name,
					Latitude:  p.Latitude,
					Longitude: p.Longitude,
					Status:    p.Status,
				}
			}
			day.Activities = append(day.Activities, detail)
		}
		out.TotalActivities += len(day.Activities)
		out.Days = append(out.Days, day)
	}
	return out
}
