package journey_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"myguide/internal/repositories"
	"myguide/internal/services"
)

var Module = fx.Provide(provideJourneyRepo, provideJourneyService)

func provideJourneyRepo(db *gorm.DB) repositories.JourneyRepository {
	return repositories.NewJourneyRepository(db)
}

func provideJourneyService(journeyRepo repositories.JourneyRepository, logger *zap.Logger) services.JourneyServiceInterface {
	return services.NewJourneyService(journeyRepo, logger.Named("journey"))
}
