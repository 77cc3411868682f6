// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/runoshun/taskpad/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// Advance moves the clock forward.
func (m *MockClock) Advance(d time.Duration) {
	m.NowTime = m.NowTime.Add(d)
}

// RecordingNotifier is a test double for domain.Notifier.
type RecordingNotifier struct {
	Err  error
	Sent []domain.Notification
}

// Send records the notification and returns the configured error.
func (m *RecordingNotifier) Send(n domain.Notification) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, n)
	return nil
}

// Names returns the task names of the sent notifications, in send order.
func (m *RecordingNotifier) Names() []string {
	names := make([]string, 0, len(m.Sent))
	for _, n := range m.Sent {
		names = append(names, n.Name)
	}
	return names
}

// MemorySlotStore is an in-memory domain.SlotStore.
type MemorySlotStore struct {
	Slots  map[string][]byte
	Writes []string // slot names in write order
}

// NewMemorySlotStore creates an empty MemorySlotStore.
func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{Slots: make(map[string][]byte)}
}

// Read returns a copy of the slot payload.
func (m *MemorySlotStore) Read(slot string) ([]byte, error) {
	payload, ok := m.Slots[slot]
	if !ok {
		return nil, domain.ErrSlotNotFound
	}
	return append([]byte(nil), payload...), nil
}

// Write stores a copy of the payload.
func (m *MemorySlotStore) Write(slot string, payload []byte) error {
	m.Slots[slot] = append([]byte(nil), payload...)
	m.Writes = append(m.Writes, slot)
	return nil
}

// FailingSlotStore wraps a SlotStore and fails writes to the named slots.
type FailingSlotStore struct {
	*MemorySlotStore
	FailWrite map[string]bool
	FailRead  map[string]bool
}

// NewFailingSlotStore creates a FailingSlotStore over an empty memory store.
func NewFailingSlotStore() *FailingSlotStore {
	return &FailingSlotStore{
		MemorySlotStore: NewMemorySlotStore(),
		FailWrite:       make(map[string]bool),
		FailRead:        make(map[string]bool),
	}
}

// ErrInjected is returned by FailingSlotStore.
var ErrInjected = errors.New("injected failure")

// Read fails for slots in FailRead.
func (m *FailingSlotStore) Read(slot string) ([]byte, error) {
	if m.FailRead[slot] {
		return nil, ErrInjected
	}
	return m.MemorySlotStore.Read(slot)
}

// Write fails for slots in FailWrite.
func (m *FailingSlotStore) Write(slot string, payload []byte) error {
	if m.FailWrite[slot] {
		return ErrInjected
	}
	return m.MemorySlotStore.Write(slot, payload)
}

// LogEntry is a single entry captured by RecordingLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry like the file logger does.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// RecordingLogger is a test double for domain.Logger.
type RecordingLogger struct {
	Entries []LogEntry
}

// Debug records a debug entry.
func (l *RecordingLogger) Debug(category, msg string) { l.add("DEBUG", category, msg) }

// Info records an info entry.
func (l *RecordingLogger) Info(category, msg string) { l.add("INFO", category, msg) }

// Warn records a warning entry.
func (l *RecordingLogger) Warn(category, msg string) { l.add("WARN", category, msg) }

// Error records an error entry.
func (l *RecordingLogger) Error(category, msg string) { l.add("ERROR", category, msg) }

func (l *RecordingLogger) add(level, category, msg string) {
	l.Entries = append(l.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Levels returns the distinct levels seen, sorted.
func (l *RecordingLogger) Levels() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range l.Entries {
		if !seen[e.Level] {
			seen[e.Level] = true
			out = append(out, e.Level)
		}
	}
	sort.Strings(out)
	return out
}

// NopLogger discards all entries.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

var (
	_ domain.Clock     = (*MockClock)(nil)
	_ domain.Notifier  = (*RecordingNotifier)(nil)
	_ domain.SlotStore = (*MemorySlotStore)(nil)
	_ domain.SlotStore = (*FailingSlotStore)(nil)
	_ domain.Logger    = (*RecordingLogger)(nil)
	_ domain.Logger    = NopLogger{}
)

// MockExecutor is a test double for domain.CommandExecutor.
// OnInteractive, when set, runs in place of the interactive command.
type MockExecutor struct {
	Err           error
	OnInteractive func(cmd *domain.ExecCommand) error
	Commands      []*domain.ExecCommand
}

// Execute records the command and returns the configured error.
func (m *MockExecutor) Execute(cmd *domain.ExecCommand) ([]byte, error) {
	m.Commands = append(m.Commands, cmd)
	return nil, m.Err
}

// ExecuteInteractive records the command and runs OnInteractive.
func (m *MockExecutor) ExecuteInteractive(cmd *domain.ExecCommand) error {
	m.Commands = append(m.Commands, cmd)
	if m.Err != nil {
		return m.Err
	}
	if m.OnInteractive != nil {
		return m.OnInteractive(cmd)
	}
	return nil
}

// Start records the command and returns the configured error.
func (m *MockExecutor) Start(cmd *domain.ExecCommand) error {
	m.Commands = append(m.Commands, cmd)
	return m.Err
}

var _ domain.CommandExecutor = (*MockExecutor)(nil)
