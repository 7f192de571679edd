// Package config resolves all configuration from the environment at
// startup.
package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all configuration values for the backend.
type Config struct {
	// APIURL is the base URL clients reach the API under. Required.
	APIURL *url.URL

	// CORSAllowOrigins is the space-separated allowlist of frontend
	// origins for cross-origin requests. CORS stays disabled when empty.
	CORSAllowOrigins string

	// DBDSN is the path of the sqlite database file.
	DBDSN string

	// Port the HTTP server listens on.
	Port string

	// SeedData enables creation of the initial data set on an empty
	// database.
	SeedData bool

	// EnablePprof mounts the pprof profiling routes.
	EnablePprof bool
}

// Load reads the configuration from the environment. A .env file is
// loaded first when present. Missing required values are an error, the
// caller is expected to fail fast.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded configuration from .env")
	}

	raw, ok := os.LookupEnv("API_URL")
	if !ok || raw == "" {
		return Config{}, fmt.Errorf("environment variable API_URL must be set")
	}

	apiURL, err := url.Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("environment variable API_URL must be a valid URL: %w", err)
	}

	return Config{
		APIURL:           apiURL,
		CORSAllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
		DBDSN:            getEnv("DB_DSN", "data/expense-tracker.db"),
		Port:             getEnv("PORT", "8080"),
		SeedData:         os.Getenv("SEED_DATA") == "true",
		EnablePprof:      os.Getenv("ENABLE_PPROF") == "true",
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
