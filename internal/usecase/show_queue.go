package usecase

import (
	"context"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
	"github.com/runoshun/taskpad/internal/scheduler"
)

// ShowQueueInput contains the parameters for showing the deadline queue.
type ShowQueueInput struct{}

// ShowQueueOutput contains the recomputed deadline queue.
type ShowQueueOutput struct {
	Tasks         []domain.Task         // Queued tasks, front first
	Notifications []domain.Notification // Reminders sent by this recompute
	Skipped       []domain.Task         // Tasks whose deadline could not be parsed
	Window        scheduler.Window      // Horizon and urgent window used
}

// ShowQueue is the use case for recomputing and reading the deadline queue.
// Every call sends reminders for the tasks in the urgent window.
type ShowQueue struct {
	planner *planner.Planner
}

// NewShowQueue creates a new ShowQueue use case.
func NewShowQueue(p *planner.Planner) *ShowQueue {
	return &ShowQueue{planner: p}
}

// Execute recomputes the queue and returns it.
func (uc *ShowQueue) Execute(_ context.Context, _ ShowQueueInput) (*ShowQueueOutput, error) {
	res := uc.planner.Recompute()

	out := &ShowQueueOutput{
		Tasks:         []domain.Task{},
		Notifications: res.Notifications,
		Skipped:       []domain.Task{},
		Window:        uc.planner.Window(),
	}
	for _, t := range uc.planner.Queue() {
		out.Tasks = append(out.Tasks, *t)
	}
	for _, t := range res.Skipped {
		out.Skipped = append(out.Skipped, *t)
	}
	return out, nil
}
