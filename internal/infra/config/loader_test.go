package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDirs(t *testing.T) (workDir, globalDir string) {
	t.Helper()
	workDir = t.TempDir()
	globalDir = filepath.Join(t.TempDir(), "todo")
	require.NoError(t, os.MkdirAll(globalDir, 0o750))
	return workDir, globalDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	workDir, globalDir := setupDirs(t)
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStorePath, cfg.Store.Path)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Input.RetryInvalidID)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_GlobalOnly(t *testing.T) {
	workDir, globalDir := setupDirs(t)
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "debug"
file = "-"
`)
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "-", cfg.Log.File)
	assert.Equal(t, domain.DefaultStorePath, cfg.Store.Path, "unset keys keep defaults")
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	workDir, globalDir := setupDirs(t)
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[store]
path = "global.json"

[log]
level = "warn"
`)
	writeFile(t, filepath.Join(workDir, domain.LocalConfigFileName), `
[store]
path = "tasks.yaml"

[input]
retry_invalid_id = true
`)
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "tasks.yaml", cfg.Store.Path)
	assert.Equal(t, domain.FormatYAML, cfg.Store.ResolveFormat())
	assert.Equal(t, "warn", cfg.Log.Level, "global value survives when local omits it")
	assert.True(t, cfg.Input.RetryInvalidID)
}

func TestLoader_Load_InvalidFileIsSkippedWithWarning(t *testing.T) {
	workDir, globalDir := setupDirs(t)
	writeFile(t, filepath.Join(globalDir, domain.ConfigFileName), `
[log]
level = "error"
`)
	writeFile(t, filepath.Join(workDir, domain.LocalConfigFileName), `[store
path = broken`)
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, domain.DefaultStorePath, cfg.Store.Path)
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], domain.LocalConfigFileName)
}

func TestLoader_Load_ValidationWarnings(t *testing.T) {
	workDir, globalDir := setupDirs(t)
	writeFile(t, filepath.Join(workDir, domain.LocalConfigFileName), `
[store]
path = ""
format = "xml"

[log]
level = "verbose"
`)
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultStorePath, cfg.Store.Path)
	assert.Len(t, cfg.Warnings, 3)
}

func TestLoader_Load_NoGlobalDir(t *testing.T) {
	workDir := t.TempDir()
	writeFile(t, filepath.Join(workDir, domain.LocalConfigFileName), `
[store]
path = "mine.json"
`)
	loader := NewLoaderWithGlobalDir(workDir, "")

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, "mine.json", cfg.Store.Path)
	assert.Equal(t, "", loader.GlobalConfigPath())
	require.Len(t, loader.Sources(), 1)
}

func TestLoader_Sources(t *testing.T) {
	workDir, globalDir := setupDirs(t)
	writeFile(t, filepath.Join(workDir, domain.LocalConfigFileName), "")
	loader := NewLoaderWithGlobalDir(workDir, globalDir)

	sources := loader.Sources()

	require.Len(t, sources, 2)
	assert.Equal(t, filepath.Join(globalDir, domain.ConfigFileName), sources[0].Path)
	assert.False(t, sources[0].Exists)
	assert.Equal(t, filepath.Join(workDir, domain.LocalConfigFileName), sources[1].Path)
	assert.True(t, sources[1].Exists)
}

func TestDefaultGlobalConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	assert.Equal(t, filepath.Join("/tmp/xdg", "todo"), DefaultGlobalConfigDir())
}
