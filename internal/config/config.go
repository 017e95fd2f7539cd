// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the site server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of origins allowed to call /api.
	// Defaults to ["http://localhost:5173"]. Comma-separated in CORS_ORIGINS.
	CORSOrigins []string

	// BaseURL is the public origin used in the sitemap, robots.txt and
	// canonical links. No trailing slash.
	BaseURL string

	// RedisURL enables the shared destination cache when set.
	RedisURL string

	// CacheTTL is how long a cached collection stays valid.
	CacheTTL time.Duration

	// SearchRateLimit is the number of /api/destinations/search requests a
	// single client IP may make per minute.
	SearchRateLimit int

	// BrandRotateInterval is the period of the navbar label rotation.
	BrandRotateInterval time.Duration

	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing required variables that are not set and values
// that cannot be parsed.
func Load() (Config, error) {
	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		BaseURL:     strings.TrimRight(getEnv("BASE_URL", "https://lakbayregion8.com"), "/"),
		RedisURL:    os.Getenv("REDIS_URL"),
	}

	var missing, invalid []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	var err error
	if cfg.CacheTTL, err = parseDuration("CACHE_TTL", 5*time.Minute); err != nil {
		invalid = append(invalid, err.Error())
	}
	if cfg.BrandRotateInterval, err = parseDuration("BRAND_ROTATE_INTERVAL", 5*time.Second); err != nil {
		invalid = append(invalid, err.Error())
	}
	if cfg.SearchRateLimit, err = parseInt("SEARCH_RATE_LIMIT", 60); err != nil {
		invalid = append(invalid, err.Error())
	}
	maxBody, err := parseInt("MAX_BODY_BYTES", 1<<20)
	if err != nil {
		invalid = append(invalid, err.Error())
	}
	cfg.MaxBodyBytes = int64(maxBody)

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid environment variables: "+strings.Join(invalid, "; "))
	}
	if len(problems) > 0 {
		return Config{}, fmt.Errorf("%s", strings.Join(problems, "; "))
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

// parseDuration reads a positive time.Duration such as "5m" or "30s".
func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s=%q is not a positive duration", key, v)
	}
	return d, nil
}

// parseInt reads a positive integer.
func parseInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s=%q is not a positive integer", key, v)
	}
	return n, nil
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
