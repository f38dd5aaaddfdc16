// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/subosito/gotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// MaxBodyBytes caps request body size. Defaults to 1 MiB.
	MaxBodyBytes int64

	// ExportRatePerMinute is the per-client allowance for export endpoints.
	// Defaults to 30; 0 disables the limit.
	ExportRatePerMinute int

	// MaxTripDays is the longest itinerary that can be requested. Defaults to 30.
	MaxTripDays int
}

// Load reads configuration from environment variables and returns a Config.
//
// Variables from a dotenv file are loaded first without overriding variables
// that are already set. The file is ENV_FILE, or ".env" in the working
// directory; a missing file is not an error.
//
// Returns an error listing every variable with an invalid value.
func Load() (Config, error) {
	if err := gotenv.Load(getEnv("ENV_FILE", ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		CORSOrigins: splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}

	var invalid []string

	maxBody, err := getInt("MAX_BODY_BYTES", 1<<20, 1)
	if err != nil {
		invalid = append(invalid, err.Error())
	}
	cfg.MaxBodyBytes = int64(maxBody)

	cfg.ExportRatePerMinute, err = getInt("EXPORT_RATE_PER_MINUTE", 30, 0)
	if err != nil {
		invalid = append(invalid, err.Error())
	}

	cfg.MaxTripDays, err = getInt("MAX_TRIP_DAYS", 30, 1)
	if err != nil {
		invalid = append(invalid, err.Error())
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variables: %s", strings.Join(invalid, "; "))
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

// getInt parses the integer variable key, which must be at least lowest.
// An unset or empty variable yields fallback.
func getInt(key string, fallback, lowest int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%s=%q is not an integer", key, v)
	}
	if n < lowest {
		return 0, fmt.Errorf("%s=%d must be at least %d", key, n, lowest)
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
