package domain

// TaskStore persists a whole task list to a single file.
type TaskStore interface {
	// Load reads the task list. Any failure matches ErrLoadFailed.
	Load() (*TaskList, error)

	// Save overwrites the file with the given list. Any failure matches ErrSaveFailed.
	Save(list *TaskList) error

	// Path returns the backing file path.
	Path() string
}

// Logger records diagnostic events. It never writes to the console.
type Logger interface {
	Info(category, msg string)
	Debug(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (default <- global <- local).
	Load() (*Config, error)

	// Sources returns the config file paths consulted by Load, in merge order.
	Sources() []ConfigSource
}

// ConfigManager writes configuration files.
type ConfigManager interface {
	// InitLocal writes the default config template to the local config path.
	// Returns ErrConfigExists if the file is already present.
	InitLocal() (string, error)
}

// ConfigSource describes one configuration file location.
type ConfigSource struct {
	Path   string
	Exists bool
}
