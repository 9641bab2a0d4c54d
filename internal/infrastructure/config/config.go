// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for dreamlife configuration.
	DefaultConfigDir = ".dreamlife"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultCatalogFile is the default catalog database file name.
	DefaultCatalogFile = "catalog.db"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	Catalog CatalogConfig `yaml:"catalog,omitempty"`
	Game    GameConfig    `yaml:"game,omitempty"`
}

// CatalogConfig holds configuration for the authored-content catalog.
type CatalogConfig struct {
	// Path is the file path to the catalog SQLite database. Relative
	// paths resolve against the config directory.
	Path string `yaml:"path,omitempty"`
	// EventFiles lists extra event pack files (JSON or YAML) imported
	// into the catalog before play.
	EventFiles []string `yaml:"event_files,omitempty"`
}

// GameConfig holds gameplay configuration.
type GameConfig struct {
	// Seed fixes the random seed for reproducible runs. Unset means a
	// fresh seed per game.
	Seed *uint64 `yaml:"seed,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: DefaultCatalogFile,
		},
	}
}

// Load loads configuration from the .dreamlife directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'dreamlife catalog init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("DREAMLIFE_CATALOG_PATH"); path != "" {
		c.Catalog.Path = path
	}
}

// CatalogDBPath resolves the catalog database path against the config
// directory when it is relative.
func (c *Config) CatalogDBPath(basePath string) string {
	if c.Catalog.Path == "" {
		return filepath.Join(basePath, DefaultConfigDir, DefaultCatalogFile)
	}
	if filepath.IsAbs(c.Catalog.Path) {
		return c.Catalog.Path
	}
	return filepath.Join(basePath, DefaultConfigDir, c.Catalog.Path)
}

// ConfigDir returns the path to the .dreamlife config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a dreamlife config exists in the given path.
func Exists(basePath string) bool {
	configFile := filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
	_, err := os.Stat(configFile)
	return err == nil
}
