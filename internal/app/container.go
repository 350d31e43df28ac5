// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/jsonstore"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/yamlstore"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the application paths resolved at startup.
type Config struct {
	WorkDir   string // Working directory of the process
	GlobalDir string // Global config directory ("" if unknown)
	StorePath string // Task file path
	LogPath   string // Log file path ("" if disabled)
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskStore
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	closer    interface{ Close() error }

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(workDir string) (*Container, error) {
	return newWithLoader(workDir, config.NewLoader(workDir))
}

// NewWithGlobalDir creates a Container with a custom global config directory.
// This is useful for testing.
func NewWithGlobalDir(workDir, globalDir string) (*Container, error) {
	return newWithLoader(workDir, config.NewLoaderWithGlobalDir(workDir, globalDir))
}

func newWithLoader(workDir string, loader *config.Loader) (*Container, error) {
	appConfig, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := Config{
		WorkDir:   workDir,
		GlobalDir: loader.GlobalDir(),
		StorePath: resolvePath(workDir, appConfig.Store.Path),
		LogPath:   resolveLogPath(workDir, loader.GlobalDir(), appConfig.Log.File),
	}

	logger := logging.New(cfg.LogPath, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Store:         newStore(cfg.StorePath, appConfig.Store.Format),
		Logger:        logger,
		ConfigLoader:  loader,
		ConfigManager: config.NewManager(loader),
		AppConfig:     appConfig,
		closer:        logger,
		Config:        cfg,
	}, nil
}

// newStore picks the task store for path. An empty format is inferred
// from the file extension.
func newStore(path, format string) domain.TaskStore {
	if (domain.StoreConfig{Path: path, Format: format}).ResolveFormat() == domain.FormatYAML {
		return yamlstore.New(path)
	}
	return jsonstore.New(path)
}

// UseStorePath replaces the task store with one backed by path.
// The format is inferred from the extension; store.format does not apply.
func (c *Container) UseStorePath(path string) {
	c.Config.StorePath = resolvePath(c.Config.WorkDir, path)
	c.Store = newStore(c.Config.StorePath, "")
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.TaskStore, logger domain.Logger, loader domain.ConfigLoader, manager domain.ConfigManager) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Store:         store,
		Logger:        logger,
		ConfigLoader:  loader,
		ConfigManager: manager,
		AppConfig:     appConfig,
		Config:        cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

func resolvePath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// resolveLogPath returns "" when logging is disabled or no location is known.
func resolveLogPath(workDir, globalDir, file string) string {
	switch {
	case file == domain.LogDisabled:
		return ""
	case file != "":
		return resolvePath(workDir, file)
	case globalDir != "":
		return domain.DefaultLogPath(globalDir)
	default:
		return ""
	}
}

// UseCase factory methods

// LoadTasksUseCase returns a new LoadTasks use case.
func (c *Container) LoadTasksUseCase() *usecase.LoadTasks {
	return usecase.NewLoadTasks(c.Store, c.Logger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Logger)
}

// MarkDoneUseCase returns a new MarkDone use case.
func (c *Container) MarkDoneUseCase() *usecase.MarkDone {
	return usecase.NewMarkDone(c.Logger)
}

// SaveTasksUseCase returns a new SaveTasks use case.
func (c *Container) SaveTasksUseCase() *usecase.SaveTasks {
	return usecase.NewSaveTasks(c.Store, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
