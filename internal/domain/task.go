// Package domain contains core business entities and interfaces.
package domain

// Task represents a unit of work with an optional deadline.
type Task struct {
	Name        string `json:"name"`               // Display name (required)
	Description string `json:"desc,omitempty"`     // Free-form description (optional)
	Deadline    string `json:"deadline,omitempty"` // ISO date or date-time (empty = no deadline)
	Status      Status `json:"status"`             // Current status
	ID          int    `json:"id"`                 // Unique within the task store, immutable
}

// RecordID returns the task ID.
func (t *Task) RecordID() int {
	return t.ID
}

// HasDeadline returns true if the task carries a deadline.
func (t *Task) HasDeadline() bool {
	return t.Deadline != ""
}

// IsFinished returns true if the task reached a finished status.
func (t *Task) IsFinished() bool {
	return t.Status.IsFinished()
}

// Note represents a free-form note. Notes have no status and are never pruned.
type Note struct {
	Title   string `json:"title"`             // Title (required)
	Content string `json:"content,omitempty"` // Body (optional)
	ID      int    `json:"id"`                // Unique within the note store, immutable
}

// RecordID returns the note ID.
func (n *Note) RecordID() int {
	return n.ID
}

// DisplayContent returns the note body, or a placeholder when it is empty.
func (n *Note) DisplayContent() string {
	if n.Content == "" {
		return "(empty)"
	}
	return n.Content
}

// Notification is the payload handed to the notification channel
// when a task enters the urgent window.
type Notification struct {
	Name     string // Task display name
	Deadline string // Deadline as stored on the task
	TaskID   int
}

// Message renders the reminder text sent over the channel.
func (n Notification) Message() string {
	return "Reminder: task \"" + n.Name + "\" is due at " + n.Deadline + "."
}
