package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadFrom_MissingFile tests that a missing config file yields the
// default configuration rather than an error
func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() unexpected error: %v", err)
	}
	if cfg.APIKey != "" || cfg.Model != "" {
		t.Errorf("missing file should yield empty defaults, got %+v", cfg)
	}
}

// TestSaveTo_RoundTrip tests that a saved config loads back identically
func TestSaveTo_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	original := &Config{
		APIKey:     "test-key",
		Model:      "gemini-1.5-pro",
		UploadsDir: "/tmp/uploads",
	}
	if err := original.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() unexpected error: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() unexpected error: %v", err)
	}
	if *loaded != *original {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, original)
	}
}

// TestLoadFrom_InvalidJSON tests that a corrupt config file is an error,
// not silently replaced with defaults
func TestLoadFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := (&Config{}).SaveTo(path); err != nil {
		t.Fatalf("SaveTo() unexpected error: %v", err)
	}

	// Overwrite with garbage.
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Errorf("LoadFrom() expected error for invalid JSON")
	}
}

// TestResolveAPIKey_EnvWins tests that the environment variable takes
// precedence over the config file value
func TestResolveAPIKey_EnvWins(t *testing.T) {
	cfg := &Config{APIKey: "file-key"}

	t.Setenv(EnvAPIKey, "env-key")
	if got := cfg.ResolveAPIKey(); got != "env-key" {
		t.Errorf("ResolveAPIKey() = %q, want env-key", got)
	}

	t.Setenv(EnvAPIKey, "")
	if got := cfg.ResolveAPIKey(); got != "file-key" {
		t.Errorf("ResolveAPIKey() = %q, want file-key", got)
	}
}

// TestApplyToEnv tests that config values reach the environment without
// overwriting variables already set
func TestApplyToEnv(t *testing.T) {
	cfg := &Config{APIKey: "file-key", Model: "file-model"}

	t.Setenv(EnvAPIKey, "already-set")
	t.Setenv(EnvModel, "")
	cfg.ApplyToEnv()

	if got := cfg.ResolveAPIKey(); got != "already-set" {
		t.Errorf("ResolveAPIKey() after ApplyToEnv = %q, want already-set", got)
	}
	if got := cfg.ResolveModel(); got != "file-model" {
		t.Errorf("ResolveModel() after ApplyToEnv = %q, want file-model", got)
	}
}
