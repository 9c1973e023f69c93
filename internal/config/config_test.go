package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")
	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:4000/api" {
		t.Fatalf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("timeout = %v", cfg.APITimeout)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.talentia.example/api")
	t.Setenv("API_TIMEOUT", "2s")
	cfg := Load()
	if cfg.APIBaseURL != "https://api.talentia.example/api" {
		t.Fatalf("base url = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 2*time.Second {
		t.Fatalf("timeout = %v", cfg.APITimeout)
	}
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	cfg := Load()
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("timeout = %v", cfg.APITimeout)
	}
}
