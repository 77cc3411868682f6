package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// PruneTasksInput contains the parameters for pruning tasks.
type PruneTasksInput struct {
	DryRun bool // If true, only list what would be pruned
}

// PruneTasksOutput contains the result of pruning tasks.
type PruneTasksOutput struct {
	DeletedTasks []domain.Task // Tasks that were (or would be) deleted
}

// PruneTasks is the use case for removing every finished task.
type PruneTasks struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewPruneTasks creates a new PruneTasks use case.
func NewPruneTasks(p *planner.Planner, logger domain.Logger) *PruneTasks {
	return &PruneTasks{
		planner: p,
		logger:  logger,
	}
}

// Execute prunes finished tasks.
func (uc *PruneTasks) Execute(_ context.Context, in PruneTasksInput) (*PruneTasksOutput, error) {
	out := &PruneTasksOutput{DeletedTasks: []domain.Task{}}

	if in.DryRun {
		for _, t := range uc.planner.Tasks() {
			if t.IsFinished() {
				out.DeletedTasks = append(out.DeletedTasks, *t)
			}
		}
		return out, nil
	}

	for _, t := range uc.planner.PruneFinished() {
		out.DeletedTasks = append(out.DeletedTasks, *t)
	}

	if uc.logger != nil && len(out.DeletedTasks) > 0 {
		uc.logger.Info("task", fmt.Sprintf("pruned %d finished task(s)", len(out.DeletedTasks)))
	}

	return out, nil
}
