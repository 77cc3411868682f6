package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// SetTaskStatusInput contains the parameters for changing a task status.
type SetTaskStatusInput struct {
	Status string `validate:"required,taskstatus"` // New status (stored or display form)
	TaskID int    `validate:"gt=0"`
}

// SetTaskStatusOutput contains the result of changing a task status.
type SetTaskStatusOutput struct {
	Task    domain.Task   // The task after the change
	Pruned  []domain.Task // Finished tasks removed as a consequence, including Task when Removed
	Removed bool          // True if the task reached a finished status and was pruned
}

// SetTaskStatus is the use case for changing a task status.
// Reaching a finished status prunes every finished task.
type SetTaskStatus struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewSetTaskStatus creates a new SetTaskStatus use case.
func NewSetTaskStatus(p *planner.Planner, logger domain.Logger) *SetTaskStatus {
	return &SetTaskStatus{
		planner: p,
		logger:  logger,
	}
}

// Execute changes the status of the task.
func (uc *SetTaskStatus) Execute(_ context.Context, in SetTaskStatusInput) (*SetTaskStatusOutput, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	status, _ := domain.ParseStatus(in.Status)

	h := uc.planner.FindTask(in.TaskID)
	if h == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrTaskNotFound, in.TaskID)
	}

	// Handles captured before the change; whichever go stale were pruned.
	before := uc.planner.TaskHandles()
	old := h.Value().Status

	removed := uc.planner.SetStatus(h, status)

	out := &SetTaskStatusOutput{
		Task:    *h.Value(),
		Removed: removed,
		Pruned:  []domain.Task{},
	}
	for _, b := range before {
		if !b.Live() {
			out.Pruned = append(out.Pruned, *b.Value())
		}
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("#%d status: %s -> %s", in.TaskID, old, status))
		if len(out.Pruned) > 0 {
			uc.logger.Info("task", fmt.Sprintf("pruned %d finished task(s)", len(out.Pruned)))
		}
	}

	return out, nil
}
