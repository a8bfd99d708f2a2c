package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected default model %s", cfg.Model)
	}
	if cfg.AITimeout() != 6*time.Second {
		t.Fatalf("unexpected default timeout %s", cfg.AITimeout())
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected default origins %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("AI_TIMEOUT_SECONDS", "12")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173,https://mannmitra.app")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %s", cfg.Port)
	}
	if cfg.AITimeout() != 12*time.Second {
		t.Fatalf("expected 12s timeout, got %s", cfg.AITimeout())
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://mannmitra.app" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestAITimeoutClampsNonPositive(t *testing.T) {
	cfg := Config{AITimeoutSeconds: 0}
	if cfg.AITimeout() != 6*time.Second {
		t.Fatalf("expected clamp to 6s, got %s", cfg.AITimeout())
	}
}
