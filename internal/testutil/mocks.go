// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// MockTaskStore is a test double for domain.TaskStore.
// Saved holds a deep copy of every list passed to Save.
type MockTaskStore struct {
	List     *domain.TaskList
	LoadErr  error
	SaveErr  error
	FilePath string
	Saved    []*domain.TaskList
}

// NewMockTaskStore creates a MockTaskStore that loads the given tasks.
func NewMockTaskStore(tasks ...domain.Task) *MockTaskStore {
	list := domain.NewTaskList()
	list.Tasks = append(list.Tasks, tasks...)
	return &MockTaskStore{
		List:     list,
		FilePath: "TaskList.json",
	}
}

// Load returns a copy of the configured list or LoadErr.
func (m *MockTaskStore) Load() (*domain.TaskList, error) {
	if m.LoadErr != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLoadFailed, m.LoadErr)
	}
	if m.List == nil {
		return domain.NewTaskList(), nil
	}
	return m.List.Clone(), nil
}

// Save records a copy of list or returns SaveErr.
func (m *MockTaskStore) Save(list *domain.TaskList) error {
	if m.SaveErr != nil {
		return fmt.Errorf("%w: %w", domain.ErrSaveFailed, m.SaveErr)
	}
	m.Saved = append(m.Saved, list.Clone())
	m.List = list.Clone()
	return nil
}

// Path returns FilePath.
func (m *MockTaskStore) Path() string {
	return m.FilePath
}

// LastSaved returns the most recently saved list, or nil.
func (m *MockTaskStore) LastSaved() *domain.TaskList {
	if len(m.Saved) == 0 {
		return nil
	}
	return m.Saved[len(m.Saved)-1]
}

// LogEntry is one entry captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.record("info", category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.record("debug", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.record("warn", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.record("error", category, msg) }

// HasLevel reports whether any entry was recorded at level.
func (m *MockLogger) HasLevel(level string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config      *domain.Config
	LoadErr     error
	SourceFiles []domain.ConfigSource
}

// Load returns Config (or defaults) or LoadErr.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// Sources returns SourceFiles.
func (m *MockConfigLoader) Sources() []domain.ConfigSource {
	return m.SourceFiles
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr   error
	LocalPath string
	Calls     int
}

// InitLocal returns LocalPath or InitErr.
func (m *MockConfigManager) InitLocal() (string, error) {
	m.Calls++
	return m.LocalPath, m.InitErr
}

// Ensure mocks implement their interfaces.
var (
	_ domain.TaskStore     = (*MockTaskStore)(nil)
	_ domain.Logger        = (*MockLogger)(nil)
	_ domain.ConfigLoader  = (*MockConfigLoader)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)
