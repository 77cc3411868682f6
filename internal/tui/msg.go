package tui

import "github.com/runoshun/taskpad/internal/domain"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgLoaded is sent when tasks, notes and the queue are loaded.
type MsgLoaded struct {
	Queued map[int]bool
	Urgent map[int]bool
	Tasks  []domain.Task
	Notes  []domain.Note
}

func (MsgLoaded) sealed() {}

// MsgQueueRefreshed is sent after the deadline queue was recomputed.
type MsgQueueRefreshed struct {
	Notified int
}

func (MsgQueueRefreshed) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	TaskID int
}

func (MsgTaskCreated) sealed() {}

// MsgTaskStatusUpdated is sent when a task status is updated.
type MsgTaskStatusUpdated struct {
	Status  domain.Status
	TaskID  int
	Pruned  int
	Removed bool
}

func (MsgTaskStatusUpdated) sealed() {}

// MsgDeadlineSet is sent when a task deadline is set or cleared.
type MsgDeadlineSet struct {
	TaskID int
	Queued bool
}

func (MsgDeadlineSet) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID int
}

func (MsgTaskDeleted) sealed() {}

// MsgNoteCreated is sent when a new note is created.
type MsgNoteCreated struct {
	NoteID int
}

func (MsgNoteCreated) sealed() {}

// MsgNoteDeleted is sent when a note is deleted.
type MsgNoteDeleted struct {
	NoteID int
}

func (MsgNoteDeleted) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError clears the error line.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
