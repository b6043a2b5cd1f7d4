package config_fx

import (
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"myguide/internal/config"
	"myguide/internal/planner"
	"myguide/pkg/utils"
)

const tokenTTL = 24 * time.Hour

var Module = fx.Provide(
	config.Load,
	config.NewLogger,
	providePlannerConfig,
	provideGenerator,
	provideJWTManager,
)

func providePlannerConfig(cfg *config.Config) (planner.Config, error) {
	return config.LoadPlannerConfig(cfg.PlannerTuningFile)
}

func provideGenerator(plannerCfg planner.Config, logger *zap.Logger) (*planner.Generator, error) {
	return planner.NewGenerator(
		planner.WithConfig(plannerCfg),
		planner.WithLogger(logger.Named("planner")),
	)
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, tokenTTL)
}
