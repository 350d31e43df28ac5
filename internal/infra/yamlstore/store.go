// Package yamlstore provides a YAML file-based implementation of TaskStore.
// It uses the same document shape and field names as the JSON store.
package yamlstore

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/todo/internal/domain"
	"gopkg.in/yaml.v3"
)

// taskData mirrors domain.Task with pointers so missing fields can be detected.
type taskData struct {
	ID          *uint32 `yaml:"id"`
	Description *string `yaml:"description"`
	Done        *bool   `yaml:"done"`
}

// storeData represents the YAML file structure.
type storeData struct {
	Tasks *[]taskData `yaml:"tasks"`
}

var errMissingTasks = errors.New("missing tasks field")

// Store implements domain.TaskStore using a YAML file.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the task list file.
func (s *Store) Load() (*domain.TaskList, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrLoadFailed, s.path, err)
	}

	list, err := decode(content)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrLoadFailed, s.path, err)
	}
	return list, nil
}

// Save overwrites the file with the YAML form of list.
func (s *Store) Save(list *domain.TaskList) error {
	out := domain.TaskList{Tasks: list.Tasks}
	if out.Tasks == nil {
		out.Tasks = []domain.Task{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("%w: marshal task list: %w", domain.ErrSaveFailed, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: marshal task list: %w", domain.ErrSaveFailed, err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrSaveFailed, s.path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrSaveFailed, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrSaveFailed, s.path, err)
	}
	return nil
}

func decode(content []byte) (*domain.TaskList, error) {
	var data storeData
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	if data.Tasks == nil {
		return nil, errMissingTasks
	}

	tasks := make([]domain.Task, 0, len(*data.Tasks))
	for i, t := range *data.Tasks {
		if t.ID == nil || t.Description == nil || t.Done == nil {
			return nil, fmt.Errorf("task %d: incomplete entry", i)
		}
		tasks = append(tasks, domain.Task{
			ID:          *t.ID,
			Description: *t.Description,
			Done:        *t.Done,
		})
	}
	return &domain.TaskList{Tasks: tasks}, nil
}

// Ensure Store implements TaskStore.
var _ domain.TaskStore = (*Store)(nil)
