// Package jsonstore provides a JSON file-based implementation of domain.BatchSlotStore.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/taskpad/internal/domain"
)

// errCorruptFile marks a store file that exists but is not a valid document.
var errCorruptFile = errors.New("parse store file")

// document represents the JSON file structure.
// Each slot holds the raw payload written by the persistence adapter.
type document struct {
	Tasks       json.RawMessage `json:"tasks,omitempty"`
	Notes       json.RawMessage `json:"notes,omitempty"`
	TaskCounter json.RawMessage `json:"taskCounter,omitempty"`
	NoteCounter json.RawMessage `json:"noteCounter,omitempty"`
}

func (d *document) field(slot string) (*json.RawMessage, error) {
	switch slot {
	case domain.SlotTasks:
		return &d.Tasks, nil
	case domain.SlotNotes:
		return &d.Notes, nil
	case domain.SlotTaskCounter:
		return &d.TaskCounter, nil
	case domain.SlotNoteCounter:
		return &d.NoteCounter, nil
	}
	return nil, fmt.Errorf("unknown slot %q", slot)
}

// Store implements domain.BatchSlotStore using a single JSON document.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the payload of a slot.
func (s *Store) Read(slot string) ([]byte, error) {
	var payload []byte
	err := s.withLock(func(doc *document) error {
		f, err := doc.field(slot)
		if err != nil {
			return err
		}
		if len(*f) == 0 {
			return domain.ErrSlotNotFound
		}
		payload = append([]byte(nil), *f...)
		return nil
	})
	return payload, err
}

// Write replaces the payload of a single slot.
func (s *Store) Write(slot string, payload []byte) error {
	return s.withLockWrite(func(doc *document) error {
		return setSlot(doc, slot, payload)
	})
}

// WriteAll replaces several slots with one file rename.
func (s *Store) WriteAll(payloads map[string][]byte) error {
	return s.withLockWrite(func(doc *document) error {
		for slot, payload := range payloads {
			if err := setSlot(doc, slot, payload); err != nil {
				return err
			}
		}
		return nil
	})
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(&document{})
}

func setSlot(doc *document, slot string, payload []byte) error {
	f, err := doc.field(slot)
	if err != nil {
		return err
	}
	if !json.Valid(payload) {
		return fmt.Errorf("slot %s: payload is not valid JSON", slot)
	}
	*f = append(json.RawMessage(nil), payload...)
	return nil
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*document) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	doc, err := s.read()
	if err != nil {
		return err
	}

	return fn(doc)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*document) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	doc, err := s.read()
	if errors.Is(err, errCorruptFile) {
		// Reads already treat every slot as absent; start over so saves keep working.
		if err := s.backupCorrupt(); err != nil {
			return err
		}
		doc, err = &document{}, nil
	}
	if err != nil {
		return err
	}

	if err := fn(doc); err != nil {
		return err
	}

	return s.write(doc)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the document. A missing file reads as an empty document.
func (s *Store) read() (*document, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &document{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var doc document
	if len(content) == 0 {
		return &doc, nil
	}
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorruptFile, err)
	}
	return &doc, nil
}

// CorruptPath returns where an unreadable document is kept before it is replaced.
func (s *Store) CorruptPath() string {
	return s.path + ".corrupt"
}

func (s *Store) backupCorrupt() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read store file: %w", err)
	}
	if err := os.WriteFile(s.CorruptPath(), content, 0o600); err != nil {
		return fmt.Errorf("back up corrupt store file: %w", err)
	}
	return nil
}

func (s *Store) write(doc *document) error {
	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements BatchSlotStore.
var _ domain.BatchSlotStore = (*Store)(nil)
