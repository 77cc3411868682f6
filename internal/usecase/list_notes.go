package usecase

import (
	"context"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// ListNotesInput contains the parameters for listing notes.
type ListNotesInput struct{}

// ListNotesOutput contains the result of listing notes.
type ListNotesOutput struct {
	Notes []domain.Note // Notes in insertion order
}

// ListNotes is the use case for listing notes.
type ListNotes struct {
	planner *planner.Planner
}

// NewListNotes creates a new ListNotes use case.
func NewListNotes(p *planner.Planner) *ListNotes {
	return &ListNotes{planner: p}
}

// Execute returns all notes.
func (uc *ListNotes) Execute(_ context.Context, _ ListNotesInput) (*ListNotesOutput, error) {
	out := &ListNotesOutput{Notes: []domain.Note{}}
	for _, n := range uc.planner.Notes() {
		out.Notes = append(out.Notes, *n)
	}
	return out, nil
}
