package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(filepath.Join(dir, "absent.yaml"), dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, DBFileName) {
		t.Fatalf("DBPath = %q", cfg.DBPath)
	}
	if cfg.SkipBackThreshold != SkipBackThreshold {
		t.Fatalf("SkipBackThreshold = %v", cfg.SkipBackThreshold)
	}
	if !cfg.Bell || cfg.Theme != "default" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	body := "db_path: /tmp/custom.db\ntheme: dracula\nbell: false\nskip_back_threshold: 5s\ntask_poll_interval: 250ms\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path, dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" || cfg.Theme != "dracula" || cfg.Bell {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.SkipBackThreshold != 5*time.Second {
		t.Fatalf("SkipBackThreshold = %v, want 5s", cfg.SkipBackThreshold)
	}
	if cfg.TaskPollInterval != 250*time.Millisecond {
		t.Fatalf("TaskPollInterval = %v", cfg.TaskPollInterval)
	}
	if cfg.SessionPollInterval != SessionPollInterval {
		t.Fatalf("unset keys should keep defaults, got %v", cfg.SessionPollInterval)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKTIMER_THEME", "dracula")
	cfg, err := Load("", dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Theme != "dracula" {
		t.Fatalf("Theme = %q, want env override", cfg.Theme)
	}
}

func TestLoadRejectsBrokenYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("theme: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path, dir); err == nil {
		t.Fatalf("expected parse error")
	}
}
