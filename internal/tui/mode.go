// Package tui provides the terminal user interface for taskpad.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal       Mode = iota // Default navigation mode
	ModeInputName                // Task name input (new task)
	ModeInputDeadline            // Deadline input (new task or existing task)
	ModeInputTitle               // Note title input (new note)
	ModeInputContent             // Note content input (new note)
	ModeConfirm                  // Confirmation dialog mode
	ModeHelp                     // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputName:
		return "input_name"
	case ModeInputDeadline:
		return "input_deadline"
	case ModeInputTitle:
		return "input_title"
	case ModeInputContent:
		return "input_content"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputName, ModeInputDeadline, ModeInputTitle, ModeInputContent:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// Pane identifies the list that receives navigation keys.
type Pane int

const (
	PaneTasks Pane = iota
	PaneNotes
)

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone       ConfirmAction = iota
	ConfirmDeleteTask               // Delete task
	ConfirmDeleteNote               // Delete note
	ConfirmFinishTask               // Mark task done (removes it)
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDeleteTask:
		return "delete task"
	case ConfirmDeleteNote:
		return "delete note"
	case ConfirmFinishTask:
		return "finish task"
	}
	return ""
}
