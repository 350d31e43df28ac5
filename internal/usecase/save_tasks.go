package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// SaveTasksInput contains the parameters for persisting the task list.
type SaveTasksInput struct {
	List *domain.TaskList // List to write (required)
}

// SaveTasksOutput contains the result of persisting the task list.
type SaveTasksOutput struct {
	Path  string // File written
	Count int    // Number of tasks written
}

// SaveTasks is the use case for writing the task list at session end.
type SaveTasks struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewSaveTasks creates a new SaveTasks use case.
func NewSaveTasks(store domain.TaskStore, logger domain.Logger) *SaveTasks {
	return &SaveTasks{
		store:  store,
		logger: logger,
	}
}

// Execute overwrites the task file with the given list.
func (uc *SaveTasks) Execute(_ context.Context, in SaveTasksInput) (*SaveTasksOutput, error) {
	if err := uc.store.Save(in.List); err != nil {
		if uc.logger != nil {
			uc.logger.Error("store", err.Error())
		}
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("store", fmt.Sprintf("saved %d task(s) to %s", in.List.Len(), uc.store.Path()))
	}
	return &SaveTasksOutput{Path: uc.store.Path(), Count: in.List.Len()}, nil
}
