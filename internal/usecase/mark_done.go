package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// MarkDoneInput contains the parameters for completing a task.
type MarkDoneInput struct {
	List   *domain.TaskList // List to search (required)
	TaskID uint32           // ID of the task to complete
}

// MarkDoneOutput contains the result of completing a task.
type MarkDoneOutput struct {
	Task domain.Task // The completed task
}

// MarkDone is the use case for marking a task as done.
type MarkDone struct {
	logger domain.Logger
}

// NewMarkDone creates a new MarkDone use case.
func NewMarkDone(logger domain.Logger) *MarkDone {
	return &MarkDone{logger: logger}
}

// Execute marks the first task with the given ID as done.
// Returns domain.ErrTaskNotFound or domain.ErrAlreadyDone without changing the list.
func (uc *MarkDone) Execute(_ context.Context, in MarkDoneInput) (*MarkDoneOutput, error) {
	if err := in.List.MarkDone(in.TaskID); err != nil {
		if uc.logger != nil {
			uc.logger.Debug("task", fmt.Sprintf("mark #%d done rejected: %v", in.TaskID, err))
		}
		return nil, err
	}

	task := in.List.Find(in.TaskID)
	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("marked #%d done", in.TaskID))
	}
	return &MarkDoneOutput{Task: *task}, nil
}
