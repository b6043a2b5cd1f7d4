package controllers_fx

import (
	"go.uber.org/fx"

	"myguide/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewJourneyController),
	fx.Provide(controllers.NewProvincesController),
	fx.Provide(controllers.NewAdminController),
	fx.Provide(controllers.NewRecommendationController))
