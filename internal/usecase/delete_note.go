package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// DeleteNoteInput contains the parameters for deleting a note.
type DeleteNoteInput struct {
	NoteID int `validate:"gt=0"`
}

// DeleteNoteOutput contains the result of deleting a note.
type DeleteNoteOutput struct {
	Note domain.Note // The removed note
}

// DeleteNote is the use case for removing a note.
type DeleteNote struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewDeleteNote creates a new DeleteNote use case.
func NewDeleteNote(p *planner.Planner, logger domain.Logger) *DeleteNote {
	return &DeleteNote{
		planner: p,
		logger:  logger,
	}
}

// Execute removes the note.
func (uc *DeleteNote) Execute(_ context.Context, in DeleteNoteInput) (*DeleteNoteOutput, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	h := uc.planner.FindNote(in.NoteID)
	if h == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrNoteNotFound, in.NoteID)
	}
	note := *h.Value()

	uc.planner.RemoveNote(h)

	if uc.logger != nil {
		uc.logger.Info("note", fmt.Sprintf("#%d deleted: %q", note.ID, note.Title))
	}

	return &DeleteNoteOutput{Note: note}, nil
}
