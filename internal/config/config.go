package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port        string
	PostgresURL string
	AutoMigrate bool
	JWTSecret   string
	LogLevel    string
	GinMode     string

	PlannerTuningFile string
	DraftTTL          time.Duration
	MaxTripDays       int
	MaxGroupSize      int
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		PostgresURL: getEnv("POSTGRES_URL", "host=localhost port=5432 user=postgres dbname=myguide sslmode=disable"),
		AutoMigrate: getEnv("DB_AUTO_MIGRATE", "false") == "true",
		JWTSecret:   getEnv("JWT_SECRET", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		GinMode:     getEnv("GIN_MODE", "debug"),

		PlannerTuningFile: getEnv("PLANNER_TUNING_FILE", ""),
		DraftTTL:          time.Duration(getEnvInt("DRAFT_TTL_MINUTES", 30)) * time.Minute,
		MaxTripDays:       getEnvInt("MAX_TRIP_DAYS", 30),
		MaxGroupSize:      getEnvInt("MAX_GROUP_SIZE", 20),
	}
}

// NewLogger builds the production zap logger at the configured level.
// Unknown levels fall back to info.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zc.Level = level
	}
	if cfg.GinMode == "debug" {
		zc.Development = true
	}
	return zc.Build()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}
