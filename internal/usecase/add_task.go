package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	List        *domain.TaskList // List to append to (required)
	Description string           // Task description (not validated)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task domain.Task // The appended task
}

// AddTask is the use case for appending a task to the in-memory list.
// It does not persist.
type AddTask struct {
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(logger domain.Logger) *AddTask {
	return &AddTask{logger: logger}
}

// Execute appends a new pending task.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	task := in.List.Add(in.Description)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("added #%d: %q", task.ID, task.Description))
	}
	return &AddTaskOutput{Task: task}, nil
}
