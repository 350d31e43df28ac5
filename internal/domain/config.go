package domain

import (
	"path/filepath"
	"strings"
)

// Config file names and defaults.
const (
	AppName             = "todo"
	ConfigFileName      = "config.toml"
	LocalConfigFileName = ".todo.toml"
	DefaultStorePath    = "TaskList.json"
	DefaultLogLevel     = "info"
	LogDisabled         = "-"
)

// Store formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the application configuration.
type Config struct {
	Warnings []string    `toml:"-"`
	Store    StoreConfig `toml:"store"`
	Log      LogConfig   `toml:"log"`
	Input    InputConfig `toml:"input"`
}

// StoreConfig holds settings from the [store] section.
type StoreConfig struct {
	Path   string `toml:"path"`             // Task file path, relative to the working directory
	Format string `toml:"format,omitempty"` // "json", "yaml" or "" (infer from extension)
}

// LogConfig holds settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"`          // debug | info | warn | error
	File  string `toml:"file,omitempty"` // Log file path; "-" disables logging
}

// InputConfig holds settings from the [input] section.
type InputConfig struct {
	RetryInvalidID bool `toml:"retry_invalid_id"` // Re-prompt instead of aborting on a malformed id
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: DefaultStorePath,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// ResolveFormat returns the store format to use.
// An explicit json/yaml format wins; otherwise the file extension decides.
func (c StoreConfig) ResolveFormat() string {
	switch strings.ToLower(c.Format) {
	case FormatJSON:
		return FormatJSON
	case FormatYAML, "yml":
		return FormatYAML
	}
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// IsKnownFormat reports whether the configured format is empty or supported.
func (c StoreConfig) IsKnownFormat() bool {
	switch strings.ToLower(c.Format) {
	case "", FormatJSON, FormatYAML, "yml":
		return true
	default:
		return false
	}
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// DefaultLogPath returns the default log file path under the global config directory.
func DefaultLogPath(globalDir string) string {
	return filepath.Join(globalDir, "logs", AppName+".log")
}
