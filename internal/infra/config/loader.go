// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Working directory holding the local config
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory,
// or "" if no home directory can be determined.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// GlobalDir returns the global config directory.
func (l *Loader) GlobalDir() string {
	return l.globalConfDir
}

// GlobalConfigPath returns the global config file path, or "" if unknown.
func (l *Loader) GlobalConfigPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// LocalConfigPath returns the working-directory config file path.
func (l *Loader) LocalConfigPath() string {
	return filepath.Join(l.workDir, domain.LocalConfigFileName)
}

// Sources returns the config files consulted by Load, in merge order.
func (l *Loader) Sources() []domain.ConfigSource {
	var sources []domain.ConfigSource
	for _, path := range l.paths() {
		_, err := os.Stat(path)
		sources = append(sources, domain.ConfigSource{Path: path, Exists: err == nil})
	}
	return sources
}

func (l *Loader) paths() []string {
	var paths []string
	if p := l.GlobalConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, l.LocalConfigPath())
}

// Load returns the merged configuration.
// Merge order: default <- global <- local (later takes precedence).
// A file that fails to parse is skipped and reported in Config.Warnings.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	var warnings []string

	for _, path := range l.paths() {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}

		merged, err := mergeFile(base, data)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("ignoring %s: %v", path, err))
			continue
		}
		base = merged
	}

	warnings = append(warnings, validate(base)...)
	base.Warnings = warnings
	return base, nil
}

// mergeFile decodes data over a copy of base so that a failed decode
// leaves base untouched.
func mergeFile(base *domain.Config, data []byte) (*domain.Config, error) {
	merged := *base
	merged.Warnings = nil
	if err := toml.Unmarshal(data, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

// validate reports settings that will be replaced by a fallback.
func validate(cfg *domain.Config) []string {
	var warnings []string
	if !cfg.Store.IsKnownFormat() {
		warnings = append(warnings, fmt.Sprintf("unknown store format %q, using %s", cfg.Store.Format, cfg.Store.ResolveFormat()))
	}
	switch strings.ToLower(cfg.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unknown log level %q, using info", cfg.Log.Level))
	}
	if cfg.Store.Path == "" {
		warnings = append(warnings, fmt.Sprintf("empty store path, using %s", domain.DefaultStorePath))
		cfg.Store.Path = domain.DefaultStorePath
	}
	return warnings
}
