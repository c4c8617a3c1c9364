package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.TimeoutSeconds != 60 {
		t.Errorf("expected default timeout_seconds 60, got %d", cfg.TimeoutSeconds)
	}
	if cfg.ReportsDir != "reports" {
		t.Errorf("expected default reports_dir %q, got %q", "reports", cfg.ReportsDir)
	}
	if cfg.HistoryLimit != 100 {
		t.Errorf("expected default history_limit 100, got %d", cfg.HistoryLimit)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.aidetect.yml")

	original := DefaultConfig()
	original.APIBase = "https://detector.example.com"
	original.TimeoutSeconds = 30
	original.ReportsDir = "out"
	original.HistoryLimit = 25

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.APIBase != original.APIBase {
		t.Errorf("api_base: got %q, want %q", loaded.APIBase, original.APIBase)
	}
	if loaded.TimeoutSeconds != original.TimeoutSeconds {
		t.Errorf("timeout_seconds: got %d, want %d", loaded.TimeoutSeconds, original.TimeoutSeconds)
	}
	if loaded.ReportsDir != original.ReportsDir {
		t.Errorf("reports_dir: got %q, want %q", loaded.ReportsDir, original.ReportsDir)
	}
	if loaded.HistoryLimit != original.HistoryLimit {
		t.Errorf("history_limit: got %d, want %d", loaded.HistoryLimit, original.HistoryLimit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.TimeoutSeconds != 60 {
		t.Errorf("expected default timeout, got %d", cfg.TimeoutSeconds)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	cfg.APIBase = "https://detector.example.com"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	os.Setenv("AIDETECT_API_BASE", "https://other.example.com")
	defer os.Unsetenv("AIDETECT_API_BASE")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.APIBase != "https://other.example.com" {
		t.Errorf("env override failed: got %q", loaded.APIBase)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIBase = "https://detector.example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("config should be valid, got: %v", err)
	}
}

func TestValidateMissingAPIBase(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty api_base")
	}
}

func TestValidateBadScheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIBase = "ftp://detector.example.com"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for non-http scheme")
	}
}

func TestValidateNonPositiveTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIBase = "https://detector.example.com"
	cfg.TimeoutSeconds = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero timeout_seconds")
	}
}

func TestValidateEmptyReportsDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIBase = "https://detector.example.com"
	cfg.ReportsDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for empty reports_dir")
	}
}

func TestValidateNegativeHistoryLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIBase = "https://detector.example.com"
	cfg.HistoryLimit = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative history_limit")
	}
}
