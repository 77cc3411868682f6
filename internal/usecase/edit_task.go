package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// EditTaskInput contains the parameters for editing a task.
// Nil fields are left unchanged.
type EditTaskInput struct {
	Name        *string // New name (optional)
	Description *string // New description (optional, empty clears it)
	TaskID      int     `validate:"gt=0"`
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task domain.Task
}

// EditTask is the use case for renaming a task or changing its description.
type EditTask struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(p *planner.Planner, logger domain.Logger) *EditTask {
	return &EditTask{
		planner: p,
		logger:  logger,
	}
}

// Execute edits the task.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Name == nil && in.Description == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	h := uc.planner.FindTask(in.TaskID)
	if h == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, in.TaskID)
	}

	name := h.Value().Name
	if in.Name != nil {
		name = strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrEmptyName
		}
	}
	desc := h.Value().Description
	if in.Description != nil {
		desc = *in.Description
	}

	uc.planner.EditTask(h, name, desc)

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("#%d edited", in.TaskID))
	}

	return &EditTaskOutput{Task: *h.Value()}, nil
}
