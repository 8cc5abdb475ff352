package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("PORT", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("AUTH_DISABLED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Milestones.Weights != [4]float64{0.25, 0.40, 0.25, 0.10} {
		t.Fatalf("expected default weights, got %v", cfg.Milestones.Weights)
	}
}

func TestLoadFileWithEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte(`server:
  port: 9000
auth:
  secret: file-secret
milestones:
  weights: [0.30, 0.30, 0.30, 0.10]
  due_offset_days: [0, 10, 30, 45]
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")
	t.Setenv("AUTH_SECRET", "env-secret")
	t.Setenv("AUTH_DISABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Fatalf("expected env port to win, got %d", cfg.Server.Port)
	}
	if cfg.Auth.Secret != "env-secret" {
		t.Fatalf("expected env secret to win, got %q", cfg.Auth.Secret)
	}
	if !cfg.Auth.Disabled {
		t.Fatalf("expected auth disabled via env")
	}
	if cfg.Milestones.DueOffsets != [4]int{0, 10, 30, 45} {
		t.Fatalf("expected file due offsets, got %v", cfg.Milestones.DueOffsets)
	}
}

func TestLoadRejectsBadWeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte(`milestones:
  weights: [0.50, 0.50, 0.50, 0.10]
  due_offset_days: [0, 15, 45, 60]
`)
	if err := os.WriteFile(path, body, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := Load(); err == nil {
		t.Fatalf("expected weight validation error")
	}
}
