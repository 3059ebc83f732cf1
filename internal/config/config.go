// Package config loads the optional configuration file that overrides
// the built-in defaults for paths, timezone, and refresh cadence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDir      = ".copilot-status"
	configFileName = "config.yaml"
)

// Config is the full configuration. Zero values mean "use the default";
// DefaultConfig fills every field so a merged config is always complete.
type Config struct {
	SessionsDir     string `yaml:"sessions_dir"`
	UsageLogPath    string `yaml:"usage_log_path"`
	Timezone        string `yaml:"timezone"`
	RefreshInterval int    `yaml:"refresh_interval"`
	LogLevel        string `yaml:"log_level"`
	LogFile         string `yaml:"log_file,omitempty"`
}

// DefaultConfig returns the built-in defaults rooted in the home directory.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		SessionsDir:     filepath.Join(home, ".copilot", "history-session-state"),
		UsageLogPath:    filepath.Join(home, configDir, "usage.log"),
		Timezone:        "Local",
		RefreshInterval: 5,
		LogLevel:        "info",
		LogFile:         filepath.Join(home, configDir, "logs", "app.log"),
	}
}

// DefaultPath returns where Load looks for the config file.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, configDir, configFileName)
}

// Load reads the config file at path, merged over the defaults. An
// absent file is not an error; an unreadable or malformed file is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var overrides Config
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	merge(cfg, &overrides)
	return cfg, nil
}

// merge copies every non-zero field of src over dst.
func merge(dst, src *Config) {
	if src.SessionsDir != "" {
		dst.SessionsDir = src.SessionsDir
	}
	if src.UsageLogPath != "" {
		dst.UsageLogPath = src.UsageLogPath
	}
	if src.Timezone != "" {
		dst.Timezone = src.Timezone
	}
	if src.RefreshInterval > 0 {
		dst.RefreshInterval = src.RefreshInterval
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
}
