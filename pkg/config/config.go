package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cafeops/eventbrew/pkg/database"
	"github.com/cafeops/eventbrew/pkg/logger"
)

// Config holds all service configuration
type Config struct {
	ServiceName string
	Environment string
	LogLevel    string
	HTTPPort    string

	Database database.Config

	RedisAddr     string
	RedisPassword string

	KafkaBrokers []string

	SyncDebounce time.Duration
	SyncInterval time.Duration
}

// Load reads configuration from the environment, loading a .env file first
// if one is present.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		logger.Logger.Info().Msg("Loaded configuration from .env file")
	}

	return Config{
		ServiceName: getEnv("SERVICE_NAME", "eventbrew"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		HTTPPort:    getEnv("HTTP_PORT", "8080"),

		Database: database.Config{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "eventbrewdb"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),

		SyncDebounce: getDuration("SYNC_DEBOUNCE", 500*time.Millisecond),
		SyncInterval: getDuration("SYNC_INTERVAL", 5*time.Minute),
	}
}

// IsDevelopment reports whether the service runs in development mode
func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
