// Package jsonstore provides a JSON file-based implementation of TaskStore.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/runoshun/todo/internal/domain"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// Store implements domain.TaskStore using a JSON file.
type Store struct {
	schema *jsonschema.Schema
	path   string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first save.
func New(path string) *Store {
	return &Store{
		path:   path,
		schema: taskListSchema,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the task list file.
func (s *Store) Load() (*domain.TaskList, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", domain.ErrLoadFailed, s.path, err)
	}

	if err := s.validate(content); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrLoadFailed, s.path, err)
	}

	var list domain.TaskList
	if err := json.Unmarshal(content, &list); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", domain.ErrLoadFailed, s.path, err)
	}
	if list.Tasks == nil {
		list.Tasks = []domain.Task{}
	}

	return &list, nil
}

// Save overwrites the file with the indented JSON form of list.
// The write is not atomic: the file is truncated before encoding.
func (s *Store) Save(list *domain.TaskList) error {
	content, err := marshal(list)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSaveFailed, err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", domain.ErrSaveFailed, s.path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(content); err != nil {
		return fmt.Errorf("%w: write %s: %w", domain.ErrSaveFailed, s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", domain.ErrSaveFailed, s.path, err)
	}

	return nil
}

// validate checks the raw document against the task list schema.
func (s *Store) validate(content []byte) error {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return fmt.Errorf("invalid task list: %w", err)
	}
	return nil
}

// marshal encodes list with two-space indentation.
// A nil task slice is written as an empty array.
func marshal(list *domain.TaskList) ([]byte, error) {
	out := domain.TaskList{Tasks: list.Tasks}
	if out.Tasks == nil {
		out.Tasks = []domain.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return nil, fmt.Errorf("marshal task list: %w", err)
	}
	return buf.Bytes(), nil
}

// Ensure Store implements TaskStore.
var _ domain.TaskStore = (*Store)(nil)
