package domain

import (
	"time"
)

// Snapshot slot names.
const (
	SlotTasks       = "tasks"
	SlotNotes       = "notes"
	SlotTaskCounter = "taskCounter"
	SlotNoteCounter = "noteCounter"
)

// SnapshotSlots returns the slot names in write order.
func SnapshotSlots() []string {
	return []string{SlotTasks, SlotNotes, SlotTaskCounter, SlotNoteCounter}
}

// SlotStore is a named-slot key/value backend for the persisted snapshot.
type SlotStore interface {
	// Read returns the payload of a slot. Returns ErrSlotNotFound if never written.
	Read(slot string) ([]byte, error)

	// Write replaces the payload of a slot.
	Write(slot string, payload []byte) error
}

// BatchSlotStore is implemented by backends that can write several slots atomically.
type BatchSlotStore interface {
	SlotStore

	// WriteAll writes all slots in a single transaction.
	WriteAll(payloads map[string][]byte) error
}

// Snapshot is the persisted form of both record stores.
// Nil slices and nil counters mean the slot was absent.
type Snapshot struct {
	TaskCounter *int
	NoteCounter *int
	Tasks       []Task
	Notes       []Note
}

// Notifier is the outbound notification channel.
// Send is fire-and-forget: it must not wait for delivery.
type Notifier interface {
	Send(n Notification) error
}

// Logger writes categorized log entries.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over defaults.
	Load() (*Config, error)

	// Path returns the configuration file path.
	Path() string
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// Info returns the path and content of the configuration file.
	Info() ConfigInfo

	// Init writes the default template. Returns ErrConfigExists unless force is set.
	Init(force bool) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
