package config

import (
	"context"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.APIBaseURL != "http://127.0.0.1:8000" {
		t.Errorf("unexpected default base url: %s", cfg.APIBaseURL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("unexpected default log level: %s", cfg.LogLevel)
	}
	if cfg.DebugAddr != ":9090" {
		t.Errorf("unexpected default debug addr: %s", cfg.DebugAddr)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://shop.internal:9000")
	t.Setenv("ENV", "production")
	t.Setenv("DEBUG_ADDR", "")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.APIBaseURL != "http://shop.internal:9000" {
		t.Errorf("override not applied: %s", cfg.APIBaseURL)
	}
	if cfg.IsDevelopment() {
		t.Error("production env reported as development")
	}
	if cfg.DebugAddr != "" {
		t.Errorf("expected empty debug addr, got %q", cfg.DebugAddr)
	}
}
