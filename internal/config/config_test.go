package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Catalog.Path = "memes.yaml"
	cfg.Picker.AnimatedOnly = true
	seed := uint64(99)
	cfg.Picker.Seed = &seed
	cfg.Log.Enabled = true

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Catalog.Path != "memes.yaml" {
		t.Errorf("Catalog.Path: got %q, want %q", loaded.Catalog.Path, "memes.yaml")
	}
	if !loaded.Picker.AnimatedOnly {
		t.Error("Picker.AnimatedOnly: got false, want true")
	}
	if loaded.Picker.Seed == nil || *loaded.Picker.Seed != 99 {
		t.Errorf("Picker.Seed: got %v, want 99", loaded.Picker.Seed)
	}
	if !loaded.Log.Enabled {
		t.Error("Log.Enabled: got false, want true")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Version != 1 {
		t.Errorf("Version: got %d, want 1", cfg.Version)
	}
	if cfg.Catalog.AssetDir != "images" {
		t.Errorf("Catalog.AssetDir: got %q, want images", cfg.Catalog.AssetDir)
	}
	if cfg.Catalog.Path != "" || cfg.Picker.AnimatedOnly || cfg.Picker.Seed != nil || cfg.Log.Enabled {
		t.Errorf("unexpected non-zero defaults: %+v", cfg)
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	partial := "version: 1\npicker:\n  animated_only: true\n"
	configPath := filepath.Join(tmpDir, ".memepicker")
	if err := os.MkdirAll(configPath, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yaml"), []byte(partial), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if cfg.Catalog.AssetDir != "images" {
		t.Errorf("AssetDir default lost: got %q", cfg.Catalog.AssetDir)
	}
	if !cfg.Picker.AnimatedOnly {
		t.Error("AnimatedOnly not read")
	}
}

func TestReadConfigMalformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".memepicker")
	if err := os.MkdirAll(configPath, 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configPath, "config.yaml"), []byte("picker: [oops"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := ReadConfig(tmpDir); err == nil {
		t.Fatal("ReadConfig should fail on malformed YAML")
	}
	if _, err := Load(tmpDir); err == nil {
		t.Fatal("Load should not hide malformed YAML")
	}
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	if Exists(tmpDir) {
		t.Fatal("Exists reported a config in an empty directory")
	}
	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Catalog.AssetDir != "images" {
		t.Errorf("AssetDir: got %q, want images", cfg.Catalog.AssetDir)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MEMEPICKER_CATALOG_PATH", "/tmp/other.yaml")
	t.Setenv("MEMEPICKER_PICKER_ANIMATED_ONLY", "true")
	t.Setenv("MEMEPICKER_PICKER_SEED", "12")
	t.Setenv("MEMEPICKER_LOG_ENABLED", "true")

	cfg := DefaultConfig()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv failed: %v", err)
	}
	if cfg.Catalog.Path != "/tmp/other.yaml" {
		t.Errorf("Catalog.Path: got %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.AssetDir != "images" {
		t.Errorf("unset variable changed AssetDir: got %q", cfg.Catalog.AssetDir)
	}
	if !cfg.Picker.AnimatedOnly || cfg.Picker.Seed == nil || *cfg.Picker.Seed != 12 || !cfg.Log.Enabled {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestApplyEnvInvalidValue(t *testing.T) {
	t.Setenv("MEMEPICKER_PICKER_SEED", "not-a-number")
	if err := ApplyEnv(DefaultConfig()); err == nil {
		t.Fatal("ApplyEnv should reject a non-numeric seed")
	}
}

func TestZeroSeedSurvivesRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig()
	var zero uint64
	cfg.Picker.Seed = &zero
	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if loaded.Picker.Seed == nil || *loaded.Picker.Seed != 0 {
		t.Errorf("Picker.Seed: got %v, want explicit 0", loaded.Picker.Seed)
	}
}
