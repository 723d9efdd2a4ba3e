// Package config handles reading and writing .memepicker/config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config is the top-level structure for .memepicker/config.yaml.
type Config struct {
	Version int           `yaml:"version"`
	Catalog CatalogConfig `yaml:"catalog" envPrefix:"CATALOG_"`
	Picker  PickerConfig  `yaml:"picker" envPrefix:"PICKER_"`
	Log     LogConfig     `yaml:"log" envPrefix:"LOG_"`
}

// CatalogConfig selects the dataset and where its images live.
type CatalogConfig struct {
	Path     string `yaml:"path" env:"PATH"`           // empty means the embedded catalog
	AssetDir string `yaml:"asset_dir" env:"ASSET_DIR"` // prefix for image paths
}

// PickerConfig controls session defaults.
type PickerConfig struct {
	AnimatedOnly bool    `yaml:"animated_only" env:"ANIMATED_ONLY"`
	Seed         *uint64 `yaml:"seed,omitempty" env:"SEED"` // nil means unseeded
}

// LogConfig controls the diagnostics event log.
type LogConfig struct {
	Enabled bool `yaml:"enabled" env:"ENABLED"`
}

const configDir = ".memepicker"
const configFile = "config.yaml"

// EnvPrefix is prepended to every environment override, e.g.
// MEMEPICKER_CATALOG_PATH.
const EnvPrefix = "MEMEPICKER_"

// ReadConfig reads .memepicker/config.yaml from the given directory.
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// WriteConfig writes cfg to .memepicker/config.yaml in the given directory.
// Creates the .memepicker/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Exists reports whether dir already has a config file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, configDir, configFile))
	return err == nil
}

// ApplyEnv overlays MEMEPICKER_* environment variables onto cfg. Unset
// variables leave the existing values alone.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// Load reads the config in dir, falling back to defaults when there is none,
// then applies environment overrides.
func Load(dir string) (*Config, error) {
	cfg, err := ReadConfig(dir)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = DefaultConfig()
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Catalog: CatalogConfig{
			AssetDir: "images",
		},
	}
}
