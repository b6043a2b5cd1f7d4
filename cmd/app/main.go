package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"myguide/cmd/fx/config_fx"
	"myguide/cmd/fx/controllers_fx"
	"myguide/cmd/fx/db_fx"
	"myguide/cmd/fx/feedback_fx"
	"myguide/cmd/fx/itinerary_fx"
	"myguide/cmd/fx/journey_fx"
	"myguide/cmd/fx/memcache_fx"
	"myguide/cmd/fx/places_fx"
	"myguide/cmd/fx/province_fx"
	"myguide/internal/api/controllers"
	"myguide/internal/config"
	"myguide/pkg/middleware"
	"myguide/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		db_fx.Module,
		memcache_fx.Module,
		places_fx.Module,
		journey_fx.Module,
		itinerary_fx.Module,
		feedback_fx.Module,
		province_fx.Module,
		controllers_fx.Module,

		fx.Invoke(zap.ReplaceGlobals),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.JWTSecret == "" {
				logger.Warn("JWT_SECRET is empty, tokens are signed with an empty key")
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	jwtManager *utils.JWTManager,
	itineraryController *controllers.ItineraryController,
	journeyController *controllers.JourneyController,
	feedbackController *controllers.FeedbackController,
	provincesController *controllers.ProvincesController,
	adminController *controllers.AdminController,
	recommendationController *controllers.RecommendationController) *gin.Engine {

	gin.SetMode(cfg.GinMode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, jwtManager, itineraryController, journeyController, feedbackController,
		provincesController, adminController, recommendationController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	jwtManager *utils.JWTManager,
	itineraryController *controllers.ItineraryController,
	journeyController *controllers.JourneyController,
	feedbackController *controllers.FeedbackController,
	provincesController *controllers.ProvincesController,
	adminController *controllers.AdminController,
	recommendationController *controllers.RecommendationController) {

	auth := middleware.JWTAuthMiddleware(jwtManager)

	itineraryGroup := r.Group("/itineraries", auth)
	itineraryGroup.POST("/generate", itineraryController.GenerateItinerary)
	itineraryGroup.POST("/destinations", itineraryController.PreviewDestinations)
	itineraryGroup.POST("/drafts/:draftId/save", itineraryController.SaveDraft)
	itineraryGroup.GET("/recommendations", recommendationController.GetRecommendations)

	journeyGroup := r.Group("/journeys", auth)
	journeyGroup.GET("", journeyController.GetJourneyByUserId)
	journeyGroup.GET("/:journeyId", journeyController.GetDetailsInfoOfJourneyById)

	placesGroup := r.Group("/places", auth)
	placesGroup.POST("/:placeId/feedback", feedbackController.AddFeedback)
	placesGroup.GET("/:placeId/feedback", feedbackController.ListFeedback)

	r.GET("/provinces", provincesController.GetAllProvinces)

	adminGroup := r.Group("/admin", auth, middleware.RoleMiddleware(utils.RoleAdmin))
	adminGroup.GET("/planner/tuning", adminController.GetPlannerTuning)
}
