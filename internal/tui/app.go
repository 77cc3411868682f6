package tui

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskpad/internal/app"
	"github.com/runoshun/taskpad/internal/domain"
	"github.com/runoshun/taskpad/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
// It only holds copies of tasks and notes; the planner stays the owner.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	mu        *sync.Mutex // Serializes use case calls made from commands
	err       error

	// State
	queued map[int]bool
	urgent map[int]bool
	tasks  []domain.Task
	notes  []domain.Note

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	input  textinput.Model

	// Input state
	pendingName  string // Task name entered before the deadline prompt
	pendingTitle string // Note title entered before the content prompt
	info         string

	// Numeric state (smaller types last)
	mode          Mode
	pane          Pane
	confirmAction ConfirmAction
	confirmID     int
	deadlineFor   int // Task whose deadline is edited; 0 while creating a task
	selectTaskID  int // Task to select after the next load
	taskCursor    int
	noteCursor    int
	width         int
	height        int
	showHelp      bool
}

// New creates a new TUI Model with the given container.
// The container must already be open.
func New(c *app.Container, showHelp bool) *Model {
	ti := textinput.New()
	ti.CharLimit = 500

	return &Model{
		container: c,
		mu:        &sync.Mutex{},
		queued:    map[int]bool{},
		urgent:    map[int]bool{},
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		input:     ti,
		mode:      ModeNormal,
		pane:      PaneTasks,
		showHelp:  showHelp,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

// run wraps fn in a command that holds the use case lock.
func (m *Model) run(fn func(ctx context.Context) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		m.mu.Lock()
		defer m.mu.Unlock()
		return fn(context.Background())
	}
}

// load returns a command that reads tasks, notes and the current queue.
func (m *Model) load() tea.Cmd {
	return m.run(func(ctx context.Context) tea.Msg {
		tasks, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		notes, err := m.container.ListNotesUseCase().Execute(ctx, usecase.ListNotesInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgLoaded{
			Tasks:  tasks.Tasks,
			Notes:  notes.Notes,
			Queued: tasks.Queued,
			Urgent: tasks.Urgent,
		}
	})
}

// refreshQueue recomputes the deadline queue, sending reminders for urgent tasks.
func (m *Model) refreshQueue() tea.Cmd {
	return m.run(func(ctx context.Context) tea.Msg {
		out, err := m.container.ShowQueueUseCase().Execute(ctx, usecase.ShowQueueInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgQueueRefreshed{Notified: len(out.Notifications)}
	})
}

func (m *Model) createTask(name, deadline string) tea.Cmd {
	return m.run(func(ctx context.Context) tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(ctx, usecase.NewTaskInput{Name: name, Deadline: deadline})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.Task.ID}
	})
}

func (m *Model) setStatus(taskID int, status domain.Status) tea.Cmd {
	return m.run(func(ctx context.Context) tea.Msg {
		out, err := m.container.SetTaskStatusUseCase().Execute(ctx, usecase.SetTaskStatusInput{
			TaskID: taskID,
			Status: string(status),
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskStatusUpdated{
			TaskID:  taskID,
			Status:  status,
			Removed: out.Removed,
			Pruned:  len(out.Pruned),
		}
	})
}

func (m *Model) setDeadline(taskID int, deadline string) tea.Cmd {
	return m.run(func(ctx context.Context) tea.Msg {
		out, err := m.container.SetTaskDeadlineUseCase().Execute(ctx, usecase.SetTaskDeadlineInput{
			TaskID:   taskID,
			Deadline: deadline,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgDeadlineSet{TaskID: taskID, Queued: out.Queued}
	})
}

func (m *Model) deleteTask(taskID int) tea.Cmd {
	return m.run(func(ctx context.Context) tea.Msg {
		if _, err := m.container.DeleteTaskUseCase().Execute(ctx, usecase.DeleteTaskInput{TaskID: taskID}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	})
}

func (m *Model) createNote(title, content string) tea.Cmd {
	return m.run(func(ctx context.Context) tea.Msg {
		out, err := m.container.NewNoteUseCase().Execute(ctx, usecase.NewNoteInput{Title: title, Content: content})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgNoteCreated{NoteID: out.Note.ID}
	})
}

func (m *Model) deleteNote(noteID int) tea.Cmd {
	return m.run(func(ctx context.Context) tea.Msg {
		if _, err := m.container.DeleteNoteUseCase().Execute(ctx, usecase.DeleteNoteInput{NoteID: noteID}); err != nil {
			return MsgError{Err: err}
		}
		return MsgNoteDeleted{NoteID: noteID}
	})
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskCursor < 0 || m.taskCursor >= len(m.tasks) {
		return nil
	}
	return &m.tasks[m.taskCursor]
}

// SelectedNote returns the currently selected note, or nil if none.
func (m *Model) SelectedNote() *domain.Note {
	if m.noteCursor < 0 || m.noteCursor >= len(m.notes) {
		return nil
	}
	return &m.notes[m.noteCursor]
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// queueTasks returns the queued tasks in store order.
func (m *Model) queueTasks() []domain.Task {
	var out []domain.Task
	for _, t := range m.tasks {
		if m.queued[t.ID] {
			out = append(out, t)
		}
	}
	return out
}

// applyLoaded replaces the model state, keeping the selection on the same
// task and note when they still exist. When the selected record is gone the
// cursor stays at the same position, clamped to the new list.
func (m *Model) applyLoaded(msg MsgLoaded) {
	selTask := m.selectTaskID
	if selTask == 0 {
		if t := m.SelectedTask(); t != nil {
			selTask = t.ID
		}
	}
	selNote := 0
	if n := m.SelectedNote(); n != nil {
		selNote = n.ID
	}

	m.tasks = msg.Tasks
	m.notes = msg.Notes
	m.queued = msg.Queued
	m.urgent = msg.Urgent
	if m.queued == nil {
		m.queued = map[int]bool{}
	}
	if m.urgent == nil {
		m.urgent = map[int]bool{}
	}
	m.selectTaskID = 0

	for i, t := range m.tasks {
		if t.ID == selTask {
			m.taskCursor = i
		}
	}
	for i, n := range m.notes {
		if n.ID == selNote {
			m.noteCursor = i
		}
	}
	m.taskCursor = clamp(m.taskCursor, len(m.tasks))
	m.noteCursor = clamp(m.noteCursor, len(m.notes))
}

func clamp(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
