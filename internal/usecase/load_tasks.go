// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// LoadTasksInput contains the parameters for loading the task list.
type LoadTasksInput struct{}

// LoadTasksOutput contains the loaded task list.
type LoadTasksOutput struct {
	List      *domain.TaskList // Never nil
	LoadError error            // Set when the file could not be used and the list starts empty
}

// LoadTasks is the use case for reading the task list at session start.
type LoadTasks struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewLoadTasks creates a new LoadTasks use case.
func NewLoadTasks(store domain.TaskStore, logger domain.Logger) *LoadTasks {
	return &LoadTasks{
		store:  store,
		logger: logger,
	}
}

// Execute loads the task list. A missing, unreadable or corrupt file
// yields an empty list; the failure is reported in the output, not as an error.
func (uc *LoadTasks) Execute(_ context.Context, _ LoadTasksInput) (*LoadTasksOutput, error) {
	list, err := uc.store.Load()
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("store", fmt.Sprintf("starting with empty list: %v", err))
		}
		return &LoadTasksOutput{List: domain.NewTaskList(), LoadError: err}, nil
	}

	if uc.logger != nil {
		uc.logger.Info("store", fmt.Sprintf("loaded %d task(s) from %s", list.Len(), uc.store.Path()))
	}
	return &LoadTasksOutput{List: list}, nil
}
