package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskpad/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgLoaded:
		m.applyLoaded(msg)
		return m, nil

	case MsgQueueRefreshed:
		if msg.Notified > 0 {
			m.info = fmt.Sprintf("Queue refreshed, %d reminder(s) sent", msg.Notified)
		} else {
			m.info = "Queue refreshed"
		}
		return m, m.load()

	case MsgTaskCreated:
		m.resetInput()
		m.selectTaskID = msg.TaskID
		m.info = fmt.Sprintf("Created task #%d", msg.TaskID)
		return m, m.load()

	case MsgTaskStatusUpdated:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		if msg.Removed {
			m.info = fmt.Sprintf("Task #%d is %s and was removed", msg.TaskID, msg.Status.Display())
		} else {
			m.info = fmt.Sprintf("Task #%d is now %s", msg.TaskID, msg.Status.Display())
		}
		if others := msg.Pruned; msg.Removed {
			others--
			if others > 0 {
				m.info += fmt.Sprintf(", %d other finished task(s) removed", others)
			}
		} else if others > 0 {
			m.info += fmt.Sprintf(", %d finished task(s) removed", others)
		}
		return m, m.load()

	case MsgDeadlineSet:
		m.resetInput()
		if msg.Queued {
			m.info = fmt.Sprintf("Task #%d added to the deadline queue", msg.TaskID)
		} else {
			m.info = fmt.Sprintf("Updated deadline of task #%d", msg.TaskID)
		}
		return m, m.load()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.info = fmt.Sprintf("Deleted task #%d", msg.TaskID)
		return m, m.load()

	case MsgNoteCreated:
		m.resetInput()
		m.info = fmt.Sprintf("Created note #%d", msg.NoteID)
		return m, m.load()

	case MsgNoteDeleted:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.info = fmt.Sprintf("Deleted note #%d", msg.NoteID)
		return m, m.load()

	case MsgError:
		m.err = msg.Err
		m.info = ""
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.input.Blur()
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	// Forward cursor blink and other component messages to the input.
	if m.mode.IsInputMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Any key press dismisses the previous error
	m.err = nil

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeInputName, ModeInputDeadline, ModeInputTitle, ModeInputContent:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.SwitchPane):
		if m.pane == PaneTasks {
			m.pane = PaneNotes
		} else {
			m.pane = PaneTasks
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.info = ""
		return m, m.refreshQueue()

	case key.Matches(msg, m.keys.New):
		m.info = ""
		if m.pane == PaneNotes {
			return m, m.startInput(ModeInputTitle, "Note title", "")
		}
		m.deadlineFor = 0
		return m, m.startInput(ModeInputName, "Task name", "")
	}

	if m.pane == PaneNotes {
		return m.handleNotesPaneKey(msg)
	}
	return m.handleTasksPaneKey(msg)
}

func (m *Model) handleTasksPaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task := m.SelectedTask()
	if task == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Deadline):
		m.info = ""
		m.deadlineFor = task.ID
		return m, m.startInput(ModeInputDeadline, "Deadline (YYYY-MM-DD or YYYY-MM-DDTHH:MM, empty clears)", task.Deadline)

	case key.Matches(msg, m.keys.Start):
		if task.Status == domain.StatusInProgress {
			return m, nil
		}
		return m, m.setStatus(task.ID, domain.StatusInProgress)

	case key.Matches(msg, m.keys.Pending):
		if task.Status == domain.StatusPending {
			return m, nil
		}
		return m, m.setStatus(task.ID, domain.StatusPending)

	case key.Matches(msg, m.keys.Finish):
		m.askConfirm(ConfirmFinishTask, task.ID)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.askConfirm(ConfirmDeleteTask, task.ID)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleNotesPaneKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note := m.SelectedNote()
	if note == nil {
		return m, nil
	}
	if key.Matches(msg, m.keys.Delete) {
		m.askConfirm(ConfirmDeleteNote, note.ID)
	}
	return m, nil
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.resetInput()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.submitInput()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitInput advances the multi-step input flows.
// New task: name then deadline. New note: title then content.
func (m *Model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case ModeInputName:
		if value == "" {
			m.err = domain.ErrEmptyName
			return m, nil
		}
		m.pendingName = value
		return m, m.startInput(ModeInputDeadline, "Deadline (optional, YYYY-MM-DD or YYYY-MM-DDTHH:MM)", "")

	case ModeInputDeadline:
		if m.deadlineFor == 0 {
			return m, m.createTask(m.pendingName, value)
		}
		return m, m.setDeadline(m.deadlineFor, value)

	case ModeInputTitle:
		if value == "" {
			m.err = domain.ErrEmptyTitle
			return m, nil
		}
		m.pendingTitle = value
		return m, m.startInput(ModeInputContent, "Content (optional)", "")

	case ModeInputContent:
		return m, m.createNote(m.pendingTitle, value)

	case ModeNormal, ModeConfirm, ModeHelp:
	}
	return m, nil
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if !key.Matches(msg, m.keys.Confirm) {
		// Anything else cancels
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil
	}

	id := m.confirmID
	action := m.confirmAction
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone

	switch action {
	case ConfirmFinishTask:
		return m, m.setStatus(id, domain.StatusDone)
	case ConfirmDeleteTask:
		return m, m.deleteTask(id)
	case ConfirmDeleteNote:
		return m, m.deleteNote(id)
	case ConfirmNone:
	}
	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
		m.mode = ModeNormal
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.pane == PaneNotes {
		m.noteCursor = clamp(m.noteCursor+delta, len(m.notes))
		return
	}
	m.taskCursor = clamp(m.taskCursor+delta, len(m.tasks))
}

func (m *Model) askConfirm(action ConfirmAction, id int) {
	m.info = ""
	m.mode = ModeConfirm
	m.confirmAction = action
	m.confirmID = id
}

// startInput switches to an input mode with a fresh, focused text input.
func (m *Model) startInput(mode Mode, placeholder, value string) tea.Cmd {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	return m.input.Focus()
}

// resetInput leaves any input flow and clears its pending state.
func (m *Model) resetInput() {
	m.mode = ModeNormal
	m.input.Reset()
	m.input.Blur()
	m.pendingName = ""
	m.pendingTitle = ""
	m.deadlineFor = 0
}
