package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// ImportTasksInput contains the parameters for importing tasks from a file.
type ImportTasksInput struct {
	Content string // File content (Markdown with frontmatter)
	DryRun  bool   // If true, parse and validate without creating tasks
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks   []domain.Task // Created tasks (or tasks that would be created in dry-run mode)
	Removed []domain.Task // Tasks imported with a finished status, pruned right away
}

// ImportTasks is the use case for creating tasks from a Markdown file.
// Drafts are validated up front; nothing is created if any draft is invalid.
type ImportTasks struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(p *planner.Planner, logger domain.Logger) *ImportTasks {
	return &ImportTasks{
		planner: p,
		logger:  logger,
	}
}

// Execute parses the content and creates the tasks in file order.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	if in.Content == "" {
		return nil, domain.ErrEmptyFile
	}

	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	out := &ImportTasksOutput{Tasks: make([]domain.Task, 0, len(drafts))}

	if in.DryRun {
		for _, d := range drafts {
			out.Tasks = append(out.Tasks, domain.Task{
				Name:        d.Name,
				Description: d.Description,
				Deadline:    d.Deadline,
				Status:      d.Status,
			})
		}
		return out, nil
	}

	for _, d := range drafts {
		h := uc.planner.CreateTask(planner.TaskFields{
			Name:        d.Name,
			Description: d.Description,
			Deadline:    d.Deadline,
			Status:      d.Status,
		})
		if !h.Live() {
			out.Removed = append(out.Removed, *h.Value())
			continue
		}
		out.Tasks = append(out.Tasks, *h.Value())
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("imported %d task(s), %d already finished", len(out.Tasks), len(out.Removed)))
	}

	return out, nil
}
