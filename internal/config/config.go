package config

import (
	"os"
	"strings"
	"time"
)

// Config holds the runtime settings of the client. Everything is optional:
// the defaults point at a local development backend.
type Config struct {
	APIBaseURL  string
	APITimeout  time.Duration
	StoragePath string
	LogLevel    string
}

const defaultBaseURL = "http://localhost:4000/api"

func Load() Config {
	return Config{
		APIBaseURL:  envOr("API_BASE_URL", defaultBaseURL),
		APITimeout:  durationOr("API_TIMEOUT", 15*time.Second),
		StoragePath: envOr("TALENTIA_STORAGE_PATH", ""),
		LogLevel:    envOr("LOG_LEVEL", "info"),
	}
}

func envOr(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func durationOr(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return duration
}
