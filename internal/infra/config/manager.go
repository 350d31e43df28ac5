package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Template is the commented default configuration written by InitLocal.
const Template = `# todo configuration

[store]
# Task file, relative to the working directory.
path = "TaskList.json"
# "json", "yaml", or empty to infer from the file extension.
format = ""

[log]
# debug | info | warn | error
level = "info"
# Empty uses ~/.config/todo/logs/todo.log; "-" disables logging.
file = ""

[input]
# Re-prompt instead of aborting when a task id is not a number.
retry_invalid_id = false
`

// Manager manages configuration files.
type Manager struct {
	loader *Loader
}

// NewManager creates a new Manager writing to the loader's locations.
func NewManager(loader *Loader) *Manager {
	return &Manager{loader: loader}
}

// InitLocal writes Template to the local config path.
func (m *Manager) InitLocal() (string, error) {
	path := m.loader.LocalConfigPath()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return path, domain.ErrConfigExists
		}
		return path, fmt.Errorf("create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.WriteString(Template); err != nil {
		return path, fmt.Errorf("write config file: %w", err)
	}
	return path, f.Close()
}
