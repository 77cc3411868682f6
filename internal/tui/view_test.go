package tui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/runoshun/taskpad/internal/domain"
)

func loadedModel(width int) *Model {
	m := New(nil, true)
	m.width = width
	m.Update(MsgLoaded{
		Tasks: []domain.Task{
			{ID: 1, Name: "Pay rent", Status: domain.StatusPending, Deadline: "2026-10-19T18:00"},
			{ID: 2, Name: "Plan trip", Status: domain.StatusInProgress, Deadline: "2026-10-21"},
			{ID: 3, Name: "Read book", Status: domain.StatusPending},
		},
		Notes:  []domain.Note{{ID: 1, Title: "Groceries", Content: "milk"}},
		Queued: map[int]bool{1: true, 2: true},
		Urgent: map[int]bool{1: true},
	})
	return m
}

func TestView_LoadingBeforeWindowSize(t *testing.T) {
	m := New(nil, false)
	assert.Equal(t, "Loading...", m.View())
}

func TestView_Main(t *testing.T) {
	m := loadedModel(120)
	view := m.View()

	assert.Contains(t, view, "taskpad")
	assert.Contains(t, view, "3 tasks · 2 queued · 1 notes")
	assert.Contains(t, view, "Pay rent")
	assert.Contains(t, view, "Read book")
	assert.Contains(t, view, "Deadline queue")
	assert.Contains(t, view, "due 2026-10-21")
	assert.Contains(t, view, "Groceries")
	assert.Contains(t, view, "[In Progress]")
}

func TestView_EmptyState(t *testing.T) {
	m := New(nil, true)
	m.width = 100
	view := m.View()

	assert.Contains(t, view, "No tasks. Press n to add one.")
	assert.Contains(t, view, "Nothing due soon.")
	assert.Contains(t, view, "No notes.")
}

func TestView_MarksQueuedAndUrgentTasks(t *testing.T) {
	m := loadedModel(120)

	urgent := m.renderTask(&m.tasks[0], false)
	queued := m.renderTask(&m.tasks[1], false)
	plain := m.renderTask(&m.tasks[2], false)

	assert.Contains(t, urgent, "!")
	assert.Contains(t, queued, "*")
	assert.NotContains(t, plain, "!")
	assert.NotContains(t, plain, "*")
	assert.Contains(t, m.renderTask(&m.tasks[0], true), "> ")
}

func TestView_NoteContentShownWhenNotesFocused(t *testing.T) {
	m := loadedModel(120)
	assert.NotContains(t, m.View(), "milk")

	m.pane = PaneNotes
	assert.Contains(t, m.View(), "milk")
}

func TestView_ConfirmDialog(t *testing.T) {
	m := loadedModel(120)
	m.askConfirm(ConfirmFinishTask, 2)

	view := m.View()
	assert.Contains(t, view, "Mark task #2 done?")
	assert.Contains(t, view, "Finished tasks are removed.")

	m.askConfirm(ConfirmDeleteNote, 1)
	assert.Contains(t, m.View(), "Delete note #1?")
}

func TestView_InputDialog(t *testing.T) {
	m := loadedModel(120)
	m.startInput(ModeInputName, "Task name", "")
	assert.Contains(t, m.View(), "New task · name")

	m.pendingName = "Pay rent"
	m.startInput(ModeInputDeadline, "Deadline", "")
	assert.Contains(t, m.View(), "New task · deadline for Pay rent")

	m.deadlineFor = 3
	assert.Contains(t, m.View(), "Deadline of task #3")
}

func TestView_ErrorTakesPrecedenceOverInfo(t *testing.T) {
	m := loadedModel(120)
	m.info = "Created task #4"
	assert.Contains(t, m.View(), "Created task #4")

	m.err = errors.New("disk full")
	view := m.View()
	assert.Contains(t, view, "Error: disk full")
	assert.NotContains(t, view, "Created task #4")
}

func TestView_FooterFollowsShowHelp(t *testing.T) {
	m := loadedModel(120)
	assert.Contains(t, m.View(), "quit")

	m.showHelp = false
	assert.NotContains(t, m.View(), "quit")
}

func TestView_HelpMode(t *testing.T) {
	m := loadedModel(120)
	m.mode = ModeHelp

	view := m.View()
	assert.Contains(t, view, "Keyboard shortcuts")
	assert.Contains(t, view, "refresh queue")
	assert.NotContains(t, view, "Pay rent")
}

func TestView_NarrowTerminalUsesMinimumPaneWidth(t *testing.T) {
	m := loadedModel(40)
	assert.Equal(t, minPaneWidth, m.paneWidth())
	assert.Greater(t, lipgloss.Width(m.View()), 2*minPaneWidth)
}
