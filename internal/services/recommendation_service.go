package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"myguide/internal/models/response_models"
	"myguide/internal/planner"
	"myguide/internal/repositories"
	"myguide/pkg/utils"
)

const (
	popularDestinationCount = 10
	trendingWindow          = 30 * 24 * time.Hour
	trendingTripTypeCount   = 5

	fallbackTripType         = "adventure"
	defaultRecommendBudget   = 500
	defaultRecommendDuration = 5
	budgetTripBudget         = 300
	weekendTripDuration      = 2
)

type RecommendationServiceInterface interface {
	GetRecommendations(ctx context.Context, userID string, limit int) ([]response_models.TripRecommendationResponse, error)
}

type RecommendationService struct {
	placeRepo   repositories.PlaceRepository
	journeyRepo repositories.JourneyRepository
	logger      *zap.Logger
	now         func() time.Time
}

func NewRecommendationService(
	placeRepo repositories.PlaceRepository,
	journeyRepo repositories.JourneyRepository,
	logger *zap.Logger,
) RecommendationServiceInterface {
	return &RecommendationService{
		placeRepo:   placeRepo,
		journeyRepo: journeyRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// GetRecommendations suggests up to limit trip ideas for userID, drawn from
// the user's favourite trip type, the best rated places and the trip types
// saved most often over the last 30 days.
func (s *RecommendationService) GetRecommendations(
	ctx context.Context,
	userID string,
	limit int,
) ([]response_models.TripRecommendationResponse, error) {
	ctx, span := otel.Tracer("RecommendationService").Start(ctx, "GetRecommendations", trace.WithAttributes(
		attribute.Int("recommendations.limit", limit),
	))
	defer span.End()

	if limit < 1 {
		err := errors.Wrapf(utils.ErrInvalidInput, "limit %d must be positive", limit)
		failSpan(span, err, "Invalid limit")
		return nil, err
	}
	if _, err := uuid.Parse(userID); err != nil {
		failSpan(span, utils.ErrUnauthorized, "Invalid user id")
		return nil, utils.ErrUnauthorized
	}

	history, err := s.journeyRepo.CountTripTypesByUser(ctx, userID)
	if err != nil {
		s.logger.Error("failed to count user trip types", zap.Error(err), zap.String("user_id", userID))
		failSpan(span, err, "Failed to load trip history")
		return nil, utils.ErrDatabaseError
	}

	rows, err := s.placeRepo.ListCatalog(ctx)
	if err != nil {
		s.logger.Error("failed to load place catalog", zap.Error(err))
		failSpan(span, err, "Failed to load place catalog")
		return nil, utils.ErrDatabaseError
	}
	popular := planner.RankByPopularity(toPlannerPlaces(rows), popularDestinationCount)

	trending, err := s.journeyRepo.CountTripTypesSince(ctx, s.now().Add(-trendingWindow).Unix())
	if err != nil {
		s.logger.Error("failed to count trending trip types", zap.Error(err))
		failSpan(span, err, "Failed to load trending trip types")
		return nil, utils.ErrDatabaseError
	}
	if len(trending) > trendingTripTypeCount {
		trending = trending[:trendingTripTypeCount]
	}

	out := buildRecommendations(history, popular, trending)
	if len(out) > limit {
		out = out[:limit]
	}

	span.SetAttributes(
		attribute.Int("recommendations.count", len(out)),
		attribute.Int("recommendations.history_types", len(history)),
	)
	span.SetStatus(codes.Ok, "Recommendations built")
	return out, nil
}

// buildRecommendations orders suggestions from the most to the least personal.
// Confidence is fixed per kind of suggestion.
func buildRecommendations(history []repositories.TripTypeCount, popular []planner.Place, trending []repositories.TripTypeCount) []response_models.TripRecommendationResponse {
	title := cases.Title(language.English)
	var out []response_models.TripRecommendationResponse

	favourite, reason, confidence := fallbackTripType, "Popular first trip", 0.75
	if len(history) > 0 {
		favourite, reason, confidence = history[0].TripType, "Based on your trip history", 0.9
	}
	out = append(out, recommendation(
		fmt.Sprintf("More %s Adventures", title.String(favourite)),
		fmt.Sprintf("Explore more %s destinations like your previous trips", favourite),
		favourite, window(popular, 0, 3), reason, confidence))

	if len(popular) > 0 {
		area := popular[0].District
		if area == "" {
			area = popular[0].Province
		}
		out = append(out, recommendation(
			"Discover "+area,
			fmt.Sprintf("Experience the best of %s with highly-rated attractions", area),
			"sightseeing", popular[:1], "Popular destination", 0.85))
	}

	if len(trending) > 0 {
		tt := trending[0].TripType
		out = append(out, recommendation(
			fmt.Sprintf("Trending: %s Experience", title.String(tt)),
			fmt.Sprintf("Join the trend with a %s trip to popular destinations", tt),
			tt, window(popular, 0, 2), "Trending trip type", 0.8))
	}

	budget := recommendation(
		"Budget-Friendly Adventure",
		"Amazing experiences that won't break the bank",
		"adventure", widen(popular, 2, 4), "Budget-friendly", 0.75)
	budget.EstimatedBudget = budgetTripBudget
	out = append(out, budget)

	weekend := recommendation(
		"Perfect Weekend Getaway",
		"Short trip perfect for a weekend escape",
		"relaxation", widen(popular, 1, 3), "Weekend trip", 0.7)
	weekend.EstimatedDuration = weekendTripDuration
	out = append(out, weekend)

	return out
}

func recommendation(title, description, tripType string, places []planner.Place, reason string, confidence float64) response_models.TripRecommendationResponse {
	destinations := make([]response_models.RecommendedDestination, 0, len(places))
	for _, p := range places {
		destinations = append(destinations, response_models.RecommendedDestination{
			ID:       p.ID,
			Name:     p.Name,
			District: p.District,
			Province: p.Province,
		})
	}
	return response_models.TripRecommendationResponse{
		Title:             title,
		Description:       description,
		TripType:          tripType,
		Destinations:      destinations,
		EstimatedBudget:   defaultRecommendBudget,
		EstimatedDuration: defaultRecommendDuration,
		Reason:            reason,
		ConfidenceScore:   confidence,
	}
}

// window is places[from:to] clamped to the slice bounds.
func window(places []planner.Place, from, to int) []planner.Place {
	if to > len(places) {
		to = len(places)
	}
	if from >= to {
		return nil
	}
	return places[from:to]
}

// widen is window, except that a catalog too short to reach from yields
// every place.
func widen(places []planner.Place, from, to int) []planner.Place {
	if len(places) <= from {
		return places
	}
	return window(places, from, to)
}
