package usecase

import (
	"context"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status string `validate:"omitempty,taskstatus"` // Filter by status (optional)
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks  []domain.Task // Tasks in insertion order
	Queued map[int]bool  // IDs of tasks currently in the deadline queue
	Urgent map[int]bool  // IDs of queued tasks inside the urgent window
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	planner *planner.Planner
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(p *planner.Planner) *ListTasks {
	return &ListTasks{planner: p}
}

// Execute returns the tasks matching the filter.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var filter domain.Status
	if in.Status != "" {
		filter, _ = domain.ParseStatus(in.Status)
	}

	out := &ListTasksOutput{
		Tasks:  []domain.Task{},
		Queued: make(map[int]bool),
		Urgent: uc.planner.Urgent(),
	}
	for _, t := range uc.planner.Tasks() {
		if filter != "" && t.Status != filter {
			continue
		}
		out.Tasks = append(out.Tasks, *t)
	}
	for _, t := range uc.planner.Queue() {
		out.Queued[t.ID] = true
	}
	return out, nil
}
