package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// SetTaskDeadlineInput contains the parameters for changing a task deadline.
type SetTaskDeadlineInput struct {
	Deadline string `validate:"omitempty,deadline"` // New deadline; empty clears it
	TaskID   int    `validate:"gt=0"`
}

// SetTaskDeadlineOutput contains the result of changing a task deadline.
type SetTaskDeadlineOutput struct {
	Task   domain.Task
	Queued bool // True if the task is now in the deadline queue
}

// SetTaskDeadline is the use case for changing a task deadline.
type SetTaskDeadline struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewSetTaskDeadline creates a new SetTaskDeadline use case.
func NewSetTaskDeadline(p *planner.Planner, logger domain.Logger) *SetTaskDeadline {
	return &SetTaskDeadline{
		planner: p,
		logger:  logger,
	}
}

// Execute sets the deadline and recomputes the queue.
func (uc *SetTaskDeadline) Execute(_ context.Context, in SetTaskDeadlineInput) (*SetTaskDeadlineOutput, error) {
	in.Deadline = strings.TrimSpace(in.Deadline)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	h := uc.planner.FindTask(in.TaskID)
	if h == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, in.TaskID)
	}

	uc.planner.SetDeadline(h, in.Deadline)

	out := &SetTaskDeadlineOutput{Task: *h.Value()}
	for _, t := range uc.planner.Queue() {
		if t.ID == in.TaskID {
			out.Queued = true
			break
		}
	}

	if uc.logger != nil {
		if in.Deadline == "" {
			uc.logger.Info("task", fmt.Sprintf("#%d deadline cleared", in.TaskID))
		} else {
			uc.logger.Info("task", fmt.Sprintf("#%d deadline: %s", in.TaskID, in.Deadline))
		}
	}

	return out, nil
}
