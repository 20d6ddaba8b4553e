package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfiguration(t *testing.T) {
	cfg := DefaultConfiguration()
	if !cfg.EnableBigInt || !cfg.EnableExponentiation {
		t.Errorf("defaults should enable the full operator set: %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "newt.toml")
	content := `
enable_bigint = false
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg := DefaultConfiguration()
	if err := LoadConfigFile(path, &cfg); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.EnableBigInt {
		t.Errorf("enable_bigint override not applied")
	}
	if !cfg.EnableExponentiation {
		t.Errorf("unset key should keep its default")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	cfg := DefaultConfiguration()
	if err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg); err == nil {
		t.Errorf("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("enable_bigint = maybe"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if err := LoadConfigFile(path, &cfg); err == nil {
		t.Errorf("expected an error for invalid TOML")
	}
}
