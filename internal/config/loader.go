package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".levelcheck"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk configuration. It only seeds defaults; CLI flags
// always win over file values.
type File struct {
	// Tolerance is the default dampener tolerance.
	Tolerance *int `yaml:"tolerance,omitempty"`

	// Concurrency is the default number of parallel evaluations.
	Concurrency *int `yaml:"concurrency,omitempty"`

	// Format is the default report format: "text", "json", or "markdown".
	Format string `yaml:"format,omitempty"`

	// ShowAll lists every report with its classification by default.
	ShowAll *bool `yaml:"show_all,omitempty"`
}

// LoadConfigFile loads default settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply copies the file's settings onto the config.
// Nil fields are left untouched so the config keeps its defaults.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Tolerance != nil {
		cfg.Tolerance = *f.Tolerance
	}
	if f.Concurrency != nil {
		cfg.Concurrency = *f.Concurrency
	}
	if f.ShowAll != nil {
		cfg.ShowAll = *f.ShowAll
	}
	switch f.Format {
	case "json":
		cfg.JSONReport = true
	case "markdown":
		cfg.MarkdownReport = true
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .levelcheck in the current directory
// 3. Look for .levelcheck in the XDG config directory
// 4. Look for .levelcheck in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check XDG config directory
	xdgConfig := filepath.Join(XDGConfigDir(), DefaultConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
