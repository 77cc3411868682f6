package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// ShowNoteInput contains the parameters for showing a note.
type ShowNoteInput struct {
	NoteID int `validate:"gt=0"`
}

// ShowNoteOutput contains the note.
type ShowNoteOutput struct {
	Note domain.Note
}

// ShowNote is the use case for reading one note.
type ShowNote struct {
	planner *planner.Planner
}

// NewShowNote creates a new ShowNote use case.
func NewShowNote(p *planner.Planner) *ShowNote {
	return &ShowNote{planner: p}
}

// Execute returns the note.
func (uc *ShowNote) Execute(_ context.Context, in ShowNoteInput) (*ShowNoteOutput, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	h := uc.planner.FindNote(in.NoteID)
	if h == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrNoteNotFound, in.NoteID)
	}
	return &ShowNoteOutput{Note: *h.Value()}, nil
}
