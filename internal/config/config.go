package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultBaseDirName is the projects root used when none is configured.
const DefaultBaseDirName = "projects"

// Config represents the application configuration
type Config struct {
	// Base path under which project trees and the index document live
	BasePath string `json:"base_path"`

	// Archive format used by the package command when none is given
	DefaultArchiveFormat string `json:"default_archive_format,omitempty"`
}

// Dir returns the directory holding the global config file
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".forj"), nil
}

// Path returns the location of the global config file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load loads the configuration from the given file path
func Load(path string) (*Config, error) {
	// If config file doesn't exist, return default config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{
			BasePath:             DefaultBaseDirName,
			DefaultArchiveFormat: "zip",
		}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.BasePath == "" {
		cfg.BasePath = DefaultBaseDirName
	}
	if cfg.DefaultArchiveFormat == "" {
		cfg.DefaultArchiveFormat = "zip"
	}

	return &cfg, nil
}

// Save saves the configuration to the given file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
