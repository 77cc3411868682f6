// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// NewTaskInput contains the parameters for creating a new task.
type NewTaskInput struct {
	Name        string `validate:"required"`
	Description string
	Deadline    string `validate:"omitempty,deadline"` // ISO date or date-time
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	Task domain.Task // The created task
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(p *planner.Planner, logger domain.Logger) *NewTask {
	return &NewTask{
		planner: p,
		logger:  logger,
	}
}

// Execute creates a new task with the given input.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Deadline = strings.TrimSpace(in.Deadline)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	h := uc.planner.CreateTask(planner.TaskFields{
		Name:        in.Name,
		Description: in.Description,
		Deadline:    in.Deadline,
	})

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("#%d created: %q", h.ID(), in.Name))
	}

	return &NewTaskOutput{Task: *h.Value()}, nil
}
