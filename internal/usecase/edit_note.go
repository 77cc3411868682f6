package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/planner"
)

// EditNoteInput contains the parameters for editing a note.
// Nil fields are left unchanged.
type EditNoteInput struct {
	Title   *string // New title (optional)
	Content *string // New content (optional, empty clears it)
	NoteID  int     `validate:"gt=0"`
}

// EditNoteOutput contains the result of editing a note.
type EditNoteOutput struct {
	Note domain.Note
}

// EditNote is the use case for editing a note in place.
type EditNote struct {
	planner *planner.Planner
	logger  domain.Logger
}

// NewEditNote creates a new EditNote use case.
func NewEditNote(p *planner.Planner, logger domain.Logger) *EditNote {
	return &EditNote{
		planner: p,
		logger:  logger,
	}
}

// Execute edits the note.
func (uc *EditNote) Execute(_ context.Context, in EditNoteInput) (*EditNoteOutput, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if in.Title == nil && in.Content == nil {
		return nil, domain.ErrNoFieldsToUpdate
	}

	h := uc.planner.FindNote(in.NoteID)
	if h == nil {
		return nil, fmt.Errorf("%w: #%d", domain.ErrNoteNotFound, in.NoteID)
	}

	title := h.Value().Title
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.ErrEmptyTitle
		}
	}
	content := h.Value().Content
	if in.Content != nil {
		content = *in.Content
	}

	uc.planner.EditNote(h, title, content)

	if uc.logger != nil {
		uc.logger.Info("note", fmt.Sprintf("#%d edited", in.NoteID))
	}

	return &EditNoteOutput{Note: *h.Value()}, nil
}
