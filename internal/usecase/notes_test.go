package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNote_Execute(t *testing.T) {
	e := newEnv(t)

	out, err := NewNewNote(e.planner, e.logger).Execute(context.Background(), NewNoteInput{
		Title:   " Lecture ",
		Content: "chapter 4",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.Note{ID: 1, Title: "Lecture", Content: "chapter 4"}, out.Note)
	assert.Contains(t, string(e.store.Slots[domain.SlotNotes]), `"Lecture"`)
	assert.Empty(t, e.notifier.Sent)
}

func TestNewNote_EmptyTitle(t *testing.T) {
	e := newEnv(t)

	_, err := NewNewNote(e.planner, nil).Execute(context.Background(), NewNoteInput{Title: "  "})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Empty(t, e.planner.Notes())
}

func TestListNotes_Execute(t *testing.T) {
	e := newEnv(t)
	e.addNote(t, "a", "")
	e.addNote(t, "b", "body")

	out, err := NewListNotes(e.planner).Execute(context.Background(), ListNotesInput{})
	require.NoError(t, err)

	require.Len(t, out.Notes, 2)
	assert.Equal(t, "a", out.Notes[0].Title)
	assert.Equal(t, "b", out.Notes[1].Title)
}

func TestShowNote_Execute(t *testing.T) {
	e := newEnv(t)
	n := e.addNote(t, "Lecture", "chapter 4")
	uc := NewShowNote(e.planner)

	out, err := uc.Execute(context.Background(), ShowNoteInput{NoteID: n.ID})
	require.NoError(t, err)
	assert.Equal(t, n, out.Note)

	_, err = uc.Execute(context.Background(), ShowNoteInput{NoteID: 5})
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestEditNote_Execute(t *testing.T) {
	e := newEnv(t)
	first := e.addNote(t, "first", "")
	n := e.addNote(t, "Lecture", "chapter 4")
	e.addNote(t, "last", "")
	uc := NewEditNote(e.planner, e.logger)

	out, err := uc.Execute(context.Background(), EditNoteInput{NoteID: n.ID, Content: strPtr("chapter 5")})
	require.NoError(t, err)
	assert.Equal(t, "Lecture", out.Note.Title)
	assert.Equal(t, "chapter 5", out.Note.Content)

	out, err = uc.Execute(context.Background(), EditNoteInput{NoteID: n.ID, Title: strPtr("Seminar")})
	require.NoError(t, err)
	assert.Equal(t, "Seminar", out.Note.Title)
	assert.Equal(t, "chapter 5", out.Note.Content)

	// Edits keep the note in place.
	notes := e.planner.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, n.ID, notes[1].ID)
}

func TestEditNote_Errors(t *testing.T) {
	e := newEnv(t)
	n := e.addNote(t, "Lecture", "")
	uc := NewEditNote(e.planner, nil)

	_, err := uc.Execute(context.Background(), EditNoteInput{NoteID: n.ID})
	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)

	_, err = uc.Execute(context.Background(), EditNoteInput{NoteID: n.ID, Title: strPtr("")})
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = uc.Execute(context.Background(), EditNoteInput{NoteID: 9, Title: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}

func TestDeleteNote_Execute(t *testing.T) {
	e := newEnv(t)
	n := e.addNote(t, "Lecture", "")
	uc := NewDeleteNote(e.planner, e.logger)

	out, err := uc.Execute(context.Background(), DeleteNoteInput{NoteID: n.ID})
	require.NoError(t, err)
	assert.Equal(t, "Lecture", out.Note.Title)
	assert.Empty(t, e.planner.Notes())

	_, err = uc.Execute(context.Background(), DeleteNoteInput{NoteID: n.ID})
	assert.ErrorIs(t, err, domain.ErrNoteNotFound)
}
