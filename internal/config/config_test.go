package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Errorf("expected default env development, got %s", cfg.Env)
	}
	if cfg.OrgName != "Clinidoc Medical System" {
		t.Errorf("unexpected default org name: %s", cfg.OrgName)
	}
	if cfg.MaxUploadMB != 25 {
		t.Errorf("expected default MAX_UPLOAD_MB 25, got %d", cfg.MaxUploadMB)
	}
	if !cfg.IsDev() {
		t.Error("expected IsDev to be true by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("PORT", "9090")
	os.Setenv("ENV", "production")
	os.Setenv("PIPELINE_DELAY_MS", "250")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("expected IsDev to be false for production")
	}
	if cfg.PipelineDelay() != 250*time.Millisecond {
		t.Errorf("expected 250ms pipeline delay, got %v", cfg.PipelineDelay())
	}
}

func TestPipelineDelay_ZeroDisabled(t *testing.T) {
	cfg := &Config{PipelineDelayMS: 0}
	if cfg.PipelineDelay() != 0 {
		t.Errorf("expected zero delay, got %v", cfg.PipelineDelay())
	}
	cfg.PipelineDelayMS = -5
	if cfg.PipelineDelay() != 0 {
		t.Errorf("expected negative delay to be disabled, got %v", cfg.PipelineDelay())
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "8000", MaxUploadMB: 25}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := &Config{Port: "", MaxUploadMB: 25}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty port")
	}

	bad = &Config{Port: "8000", MaxUploadMB: 0}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero upload limit")
	}

	bad = &Config{Port: "8000", MaxUploadMB: 25, RateLimitRPS: -1}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative rate limit")
	}
}
