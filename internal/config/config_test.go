package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/pearl")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("LLM_TIMEOUT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("expected gemini provider, got %s", cfg.LLM.Provider)
	}
	if cfg.LLM.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.LLM.Timeout)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %v", cfg.CORSOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	cfg, _ := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing DATABASE_URL")
	}
}

func TestValidateUnknownProvider(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/pearl")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("LLM_PROVIDER", "Llama")

	cfg, _ := Load()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestOptionalIntegrations(t *testing.T) {
	if (R2Config{Endpoint: "e", AccessKey: "a", SecretKey: "s", PublicBaseURL: "p"}).Enabled() {
		t.Error("R2 without bucket should be disabled")
	}
	if (R2Config{Endpoint: "e", AccessKey: "a", SecretKey: "s", Bucket: "b"}).Enabled() {
		t.Error("R2 without public base URL should be disabled")
	}
	if !(R2Config{Endpoint: "e", AccessKey: "a", SecretKey: "s", Bucket: "b", PublicBaseURL: "p"}).Enabled() {
		t.Error("complete R2 config should be enabled")
	}
	if !(TelegramConfig{Token: "t", AdminChatID: 42}).Enabled() {
		t.Error("telegram with token and chat should be enabled")
	}
}
