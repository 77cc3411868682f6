package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int `validate:"gt=0"`
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task domain.Task // The removed task
}

// DeleteTask is the use case for removing a task regardless of its status.
type DeleteTask struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(p *planner.Planner, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		planner: p,
		logger:  logger,
	}
}

// Execute removes the task.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	h := uc.planner.FindTask(in.TaskID)
	if h == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, in.TaskID)
	}
	task := *h.Value()

	uc.planner.RemoveTask(h)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("#%d deleted: %q", task.ID, task.Name))
	}

	return &DeleteTaskOutput{Task: task}, nil
}
