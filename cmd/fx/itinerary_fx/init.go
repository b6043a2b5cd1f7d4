package itinerary_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"myguide/internal/config"
	"myguide/internal/planner"
	"myguide/internal/repositories"
	"myguide/internal/services"
	mem "myguide/pkg/memcache"
)

var Module = fx.Provide(provideItineraryService, provideRecommendationService)

func provideItineraryService(
	generator *planner.Generator,
	placeRepo repositories.PlaceRepository,
	journeyRepo repositories.JourneyRepository,
	drafts mem.DraftStore,
	cfg *config.Config,
	logger *zap.Logger,
) services.ItineraryServiceInterface {
	limits := services.ItineraryLimits{
		MaxTripDays:  cfg.MaxTripDays,
		MaxGroupSize: cfg.MaxGroupSize,
		DraftTTL:     cfg.DraftTTL,
	}
	return services.NewItineraryService(generator, placeRepo, journeyRepo, drafts, limits, logger.Named("itinerary"))
}

func provideRecommendationService(
	placeRepo repositories.PlaceRepository,
	journeyRepo repositories.JourneyRepository,
	logger *zap.Logger,
) services.RecommendationServiceInterface {
	return services.NewRecommendationService(placeRepo, journeyRepo, logger.Named("recommendation"))
}
