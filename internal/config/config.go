// Package config loads and validates application configuration from
// environment variables. A .env file in the working directory is loaded
// first when present (local development); real environment variables win.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// DefaultPageLimit is the page size used when a list request omits
	// ?limit=. Defaults to 10. The hard cap of 100 is not configurable.
	DefaultPageLimit int

	// MaxBodyBytes caps the size of any request body. Defaults to 1 MiB.
	MaxBodyBytes int64

	// RateLimitRPS and RateLimitBurst configure the shared token-bucket
	// request limiter. Defaults: 100 rps, burst 200.
	RateLimitRPS   int
	RateLimitBurst int

	// RunMigrations applies pending goose migrations at startup when true.
	// Defaults to true; set RUN_MIGRATIONS=false when migrations are run
	// out of band.
	RunMigrations bool
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Not an error when absent; production sets real env vars.
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		DefaultPageLimit: getEnvAsInt("DEFAULT_PAGE_LIMIT", 10),
		MaxBodyBytes:     int64(getEnvAsInt("MAX_BODY_BYTES", 1<<20)),
		RateLimitRPS:     getEnvAsInt("RATE_LIMIT_RPS", 100),
		RateLimitBurst:   getEnvAsInt("RATE_LIMIT_BURST", 200),
		RunMigrations:    getEnvAsBool("RUN_MIGRATIONS", true),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getEnvAsInt returns the integer value of the named environment variable,
// or fallback if the variable is unset, empty, or not a valid integer.
func getEnvAsInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// getEnvAsBool returns the boolean value of the named environment variable,
// or fallback if the variable is unset, empty, or not a valid boolean.
func getEnvAsBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
