package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// NewNoteInput contains the parameters for creating a note.
type NewNoteInput struct {
	Title   string `validate:"required"`
	Content string
}

// NewNoteOutput contains the result of creating a note.
type NewNoteOutput struct {
	Note domain.Note
}

// NewNote is the use case for creating a note.
type NewNote struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewNewNote creates a new NewNote use case.
func NewNewNote(p *planner.Planner, logger domain.Logger) *NewNote {
	return &NewNote{
		planner: p,
		logger:  logger,
	}
}

// Execute creates the note.
func (uc *NewNote) Execute(_ context.Context, in NewNoteInput) (*NewNoteOutput, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validateInput(in); err != nil {
		return nil, err
	}

	h := uc.planner.CreateNote(planner.NoteFields{Title: in.Title, Content: in.Content})

	if uc.logger != nil {
		uc.logger.Info("note", fmt.Sprintf("#%d created: %q", h.ID(), in.Title))
	}

	return &NewNoteOutput{Note: *h.Value()}, nil
}
