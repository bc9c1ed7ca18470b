package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values count as unset, so everything falls back.
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("ADMIN_EMAILS", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.Env != "development" {
		t.Errorf("Expected env development, got %s", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Port)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://localhost:3000" {
		t.Errorf("Unexpected default origins: %v", cfg.AllowedOrigins)
	}
	if cfg.AdminEmails != nil {
		t.Errorf("Expected no admin emails by default, got %v", cfg.AdminEmails)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ADMIN_EMAILS", "a@example.com, b@example.com ,,")
	t.Setenv("ALLOWED_ORIGINS", "https://hackhub.dev")

	cfg := Load()

	if cfg.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Port)
	}
	if len(cfg.AdminEmails) != 2 || cfg.AdminEmails[0] != "a@example.com" || cfg.AdminEmails[1] != "b@example.com" {
		t.Errorf("Admin emails not parsed: %v", cfg.AdminEmails)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://hackhub.dev" {
		t.Errorf("Origins not parsed: %v", cfg.AllowedOrigins)
	}
}
