package jsonstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "TaskList.json"))
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		list *domain.TaskList
	}{
		{
			name: "empty list",
			list: domain.NewTaskList(),
		},
		{
			name: "mixed tasks",
			list: &domain.TaskList{Tasks: []domain.Task{
				{ID: 1, Description: "Buy milk", Done: true},
				{ID: 2, Description: "Walk dog"},
				{ID: 3, Description: "<escape> & \"quote\" ✓"},
				{ID: 4, Description: ""},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)

			require.NoError(t, store.Save(tt.list))
			got, err := store.Load()

			require.NoError(t, err)
			assert.Equal(t, tt.list, got)
		})
	}
}

func TestStore_Save_Format(t *testing.T) {
	store := newTestStore(t)
	list := &domain.TaskList{Tasks: []domain.Task{
		{ID: 1, Description: "Buy milk", Done: true},
		{ID: 2, Description: "Walk dog"},
	}}

	require.NoError(t, store.Save(list))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	want := `{
  "tasks": [
    {
      "id": 1,
      "description": "Buy milk",
      "done": true
    },
    {
      "id": 2,
      "description": "Walk dog",
      "done": false
    }
  ]
}
`
	assert.Equal(t, want, string(content))
}

func TestStore_Save_NilTasksWritesEmptyArray(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(&domain.TaskList{}))

	content, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"tasks\": []\n}\n", string(content))
}

func TestStore_Save_OverwritesExistingContent(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte(`{"tasks": [{"id": 1, "description": "a very long description that is longer", "done": false}]}`), 0o600))

	require.NoError(t, store.Save(domain.NewTaskList()))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got.Tasks)
}

func TestStore_Save_Failure(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "missing-dir", "TaskList.json"))

	err := store.Save(domain.NewTaskList())

	assert.ErrorIs(t, err, domain.ErrSaveFailed)
}

func TestStore_Load_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		create  bool
	}{
		{name: "missing file", create: false},
		{name: "empty file", content: "", create: true},
		{name: "not json", content: "tasks: []", create: true},
		{name: "truncated", content: `{"tasks": [{"id": 1,`, create: true},
		{name: "missing tasks field", content: `{}`, create: true},
		{name: "null tasks", content: `{"tasks": null}`, create: true},
		{name: "string id", content: `{"tasks": [{"id": "1", "description": "a", "done": false}]}`, create: true},
		{name: "negative id", content: `{"tasks": [{"id": -1, "description": "a", "done": false}]}`, create: true},
		{name: "fractional id", content: `{"tasks": [{"id": 1.5, "description": "a", "done": false}]}`, create: true},
		{name: "missing done", content: `{"tasks": [{"id": 1, "description": "a"}]}`, create: true},
		{name: "top-level array", content: `[]`, create: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newTestStore(t)
			if tt.create {
				require.NoError(t, os.WriteFile(store.Path(), []byte(tt.content), 0o600))
			}

			got, err := store.Load()

			assert.Nil(t, got)
			assert.ErrorIs(t, err, domain.ErrLoadFailed)
		})
	}
}

func TestStore_Load_IgnoresUnknownFields(t *testing.T) {
	store := newTestStore(t)
	content := `{"version": 2, "tasks": [{"id": 7, "description": "a", "done": true, "extra": "x"}]}`
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0o600))

	got, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{ID: 7, Description: "a", Done: true}}, got.Tasks)
}

func TestCompileSchema(t *testing.T) {
	schema, err := compileSchema()
	require.NoError(t, err)
	assert.NotNil(t, schema)
}
