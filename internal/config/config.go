package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// MongoDB. Both values must be set for the store to be configured;
	// otherwise the API runs degraded (data endpoints return 500, the
	// diagnostics endpoint keeps working).
	DatabaseURL  string
	DatabaseName string

	// Redis (optional, city directory cache)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Server
	Port string

	// App Defaults
	AppName        string
	CitiesCacheTTL time.Duration
}

// StoreConfigured reports whether both store environment variables are set.
func (c *Config) StoreConfigured() bool {
	return c.DatabaseURL != "" && c.DatabaseName != ""
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	cfg.DatabaseURL = getEnv("DATABASE_URL", "")
	cfg.DatabaseName = getEnv("DATABASE_NAME", "")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.Port = getEnv("PORT", "8000")
	cfg.AppName = getEnv("APP_NAME", "RAKB API")

	var err error
	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cacheTTLSeconds, err := strconv.ParseInt(getEnv("CITIES_CACHE_TTL", "300"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid CITIES_CACHE_TTL: %w", err)
	}
	cfg.CitiesCacheTTL = time.Duration(cacheTTLSeconds) * time.Second

	return cfg, nil
}
