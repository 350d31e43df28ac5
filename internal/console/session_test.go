package console

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/jsonstore"
	"github.com/runoshun/todo/internal/testutil"
	"github.com/runoshun/todo/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeps(store domain.TaskStore, logger domain.Logger) Deps {
	return Deps{
		AddTask:   usecase.NewAddTask(logger),
		MarkDone:  usecase.NewMarkDone(logger),
		SaveTasks: usecase.NewSaveTasks(store, logger),
		Logger:    logger,
	}
}

// runSession runs a session over input and returns its output and error.
func runSession(t *testing.T, input string, store domain.TaskStore, list *domain.TaskList, opts Options) (*Session, string, error) {
	t.Helper()
	t.Setenv("CLICOLOR_FORCE", "0")
	var out bytes.Buffer
	s := New(strings.NewReader(input), &out, list, newDeps(store, &testutil.MockLogger{}), opts)
	err := s.Run(context.Background())
	return s, out.String(), err
}

// loadList loads the store's list the way the application does at startup.
func loadList(t *testing.T, store domain.TaskStore) *domain.TaskList {
	t.Helper()
	out, err := usecase.NewLoadTasks(store, nil).Execute(context.Background(), usecase.LoadTasksInput{})
	require.NoError(t, err)
	return out.List
}

func TestSession_Render(t *testing.T) {
	store := testutil.NewMockTaskStore()
	list := &domain.TaskList{Tasks: []domain.Task{
		{ID: 1, Description: "a", Done: true},
		{ID: 2, Description: "b"},
	}}

	_, out, err := runSession(t, "3\n", store, list, Options{})

	require.NoError(t, err)
	want := `ToDo List:
[✓] 1 a
[ ] 2 b
You have 1 task(s) done.

Options:
1. Add Task to list
2. Mark Task as Complete
3. End
Ending now.
`
	assert.Equal(t, want, out)
}

func TestSession_Render_NoSummaryWithoutDoneTasks(t *testing.T) {
	store := testutil.NewMockTaskStore()
	list := &domain.TaskList{Tasks: []domain.Task{{ID: 1, Description: "a"}}}

	_, out, err := runSession(t, "3\n", store, list, Options{})

	require.NoError(t, err)
	assert.NotContains(t, out, "task(s) done")
	assert.Contains(t, out, "[ ] 1 a\nOptions:")
}

func TestSession_EndToEnd_FirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TaskList.json")
	store := jsonstore.New(path)
	list := loadList(t, store)
	require.Equal(t, 0, list.Len())

	input := "1\nBuy milk\n1\nWalk dog\n2\n1\n3\n"
	s, out, err := runSession(t, input, store, list, Options{})

	require.NoError(t, err)
	assert.Equal(t, StateEnded, s.State())
	assert.Contains(t, out, descriptionPrompt)
	assert.Contains(t, out, taskIDPrompt)
	assert.Contains(t, out, markedDoneText)
	assert.Contains(t, out, "[✓] 1 Buy milk")
	assert.Contains(t, out, "[ ] 2 Walk dog")
	assert.True(t, strings.HasSuffix(out, endingText+"\n"))

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.Task{
		{ID: 1, Description: "Buy milk", Done: true},
		{ID: 2, Description: "Walk dog", Done: false},
	}, saved.Tasks)
}

func TestSession_EndToEnd_AlreadyDoneRepersistsIdenticalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TaskList.json")
	store := jsonstore.New(path)
	_, _, err := runSession(t, "1\nBuy milk\n1\nWalk dog\n2\n1\n3\n", store, loadList(t, store), Options{})
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, out, err := runSession(t, "2\n1\n3\n", store, loadList(t, store), Options{})

	require.NoError(t, err)
	assert.Contains(t, out, alreadyDoneText)
	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestSession_MarkDone_NotFound(t *testing.T) {
	store := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Description: "Buy milk"},
		domain.Task{ID: 2, Description: "Walk dog"},
	)
	list := loadList(t, store)
	before := list.Clone()

	_, out, err := runSession(t, "2\n99\n3\n", store, list, Options{})

	require.NoError(t, err)
	assert.Contains(t, out, notFoundText)
	assert.Equal(t, before, store.LastSaved())
}

func TestSession_TrimsInput(t *testing.T) {
	store := testutil.NewMockTaskStore()

	_, _, err := runSession(t, "  1 \n   Buy milk  \n 2\n  1  \n\t3\n", store, domain.NewTaskList(), Options{})

	require.NoError(t, err)
	assert.Equal(t, []domain.Task{{ID: 1, Description: "Buy milk", Done: true}}, store.LastSaved().Tasks)
}

func TestSession_InvalidOption(t *testing.T) {
	store := testutil.NewMockTaskStore()

	s, out, err := runSession(t, "9\n\nadd\n3\n", store, domain.NewTaskList(), Options{})

	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, invalidOptionText+"\n\n"))
	assert.Equal(t, 4, strings.Count(out, headerText))
	assert.Equal(t, StateEnded, s.State())
	require.Len(t, store.Saved, 1)
}

func TestSession_MalformedIDAbortsWithoutSaving(t *testing.T) {
	tests := []string{"abc", "-1", "1.5", "", "4294967296"}

	for _, id := range tests {
		t.Run(id, func(t *testing.T) {
			store := testutil.NewMockTaskStore()
			list := domain.NewTaskList()
			list.Add("Buy milk")

			s, _, err := runSession(t, "2\n"+id+"\n3\n", store, list, Options{})

			assert.ErrorIs(t, err, domain.ErrMalformedInput)
			assert.Equal(t, StateAwaitingChoice, s.State())
			assert.Empty(t, store.Saved)
		})
	}
}

func TestSession_MalformedIDRetry(t *testing.T) {
	store := testutil.NewMockTaskStore()
	list := domain.NewTaskList()
	list.Add("Buy milk")

	_, out, err := runSession(t, "2\nabc\n2\n1\n3\n", store, list, Options{RetryInvalidID: true})

	require.NoError(t, err)
	assert.Contains(t, out, invalidNumberText)
	assert.Contains(t, out, markedDoneText)
	require.NotNil(t, store.LastSaved())
	assert.True(t, store.LastSaved().Tasks[0].Done)
}

func TestSession_InputClosed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"closed at description prompt", "1\n"},
		{"closed at id prompt", "2\n"},
		{"closed after add", "1\nBuy milk\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockTaskStore()

			_, _, err := runSession(t, tt.input, store, domain.NewTaskList(), Options{})

			assert.ErrorIs(t, err, domain.ErrInputClosed)
			assert.Empty(t, store.Saved, "nothing is saved without the end choice")
		})
	}
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	store := testutil.NewMockTaskStore()

	_, _, err := runSession(t, "1\nBuy milk\n3", store, domain.NewTaskList(), Options{})

	require.NoError(t, err)
	require.NotNil(t, store.LastSaved())
	assert.Equal(t, 1, store.LastSaved().Len())
}

func TestSession_SaveFailure(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.SaveErr = errors.New("read-only file system")

	s, out, err := runSession(t, "3\n", store, domain.NewTaskList(), Options{})

	assert.ErrorIs(t, err, domain.ErrSaveFailed)
	assert.Contains(t, out, endingText)
	assert.NotEqual(t, StateEnded, s.State())
}

func TestSession_ListGrowsAsPrefixSuperset(t *testing.T) {
	store := testutil.NewMockTaskStore(
		domain.Task{ID: 1, Description: "loaded", Done: true},
		domain.Task{ID: 2, Description: "also loaded"},
	)
	list := loadList(t, store)
	loaded := list.Clone()

	_, _, err := runSession(t, "1\nnew\n2\n2\n3\n", store, list, Options{})

	require.NoError(t, err)
	saved := store.LastSaved()
	require.Equal(t, 3, saved.Len())
	for i, task := range loaded.Tasks {
		assert.Equal(t, task.ID, saved.Tasks[i].ID)
		assert.Equal(t, task.Description, saved.Tasks[i].Description)
		assert.True(t, saved.Tasks[i].Done || !task.Done, "done never reverts")
	}
	assert.Equal(t, domain.Task{ID: 3, Description: "new"}, saved.Tasks[2])
}
