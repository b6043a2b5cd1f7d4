package infra

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"myguide/internal/config"
	dbm "myguide/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "connect to postgres")
	}

	if cfg.AutoMigrate {
		if err := Migrate(connectionPool); err != nil {
			return nil, err
		}
		logger.Info("database schema migrated")
	}

	logger.Info("connected to postgres")
	return connectionPool, nil
}

// Migrate creates or updates the catalog and journey tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&dbm.Province{},
		&dbm.District{},
		&dbm.Municipality{},
		&dbm.Category{},
		&dbm.Place{},
		&dbm.PlaceFeedback{},
		&dbm.Journey{},
		&dbm.JourneyDay{},
		&dbm.JourneyActivity{},
	)
	return errors.Wrap(err, "auto migrate")
}

func ClosePostgresql(db *gorm.DB, logger *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("error closing database connection", zap.Error(err))
	} else {
		logger.Info("PostgreSQL database connection closed successfully")
	}
}
