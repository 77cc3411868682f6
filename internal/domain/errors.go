package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrEmptyName        = errors.New("task name cannot be empty")
	ErrEmptyTitle       = errors.New("note title cannot be empty")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidDeadline  = errors.New("invalid deadline")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrConfigExists     = errors.New("config file already exists")
	ErrUnknownBackend   = errors.New("unknown store backend")
	ErrUnknownChannel   = errors.New("unknown notification channel")
	ErrEmptyFile        = errors.New("file is empty")
	ErrNoTasksInFile    = errors.New("no tasks found in file")

	// ErrSlotNotFound is returned by a SlotStore when a slot was never written.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrPersistenceWrite marks a failed snapshot write. In-memory state stays authoritative.
	ErrPersistenceWrite = errors.New("persist snapshot")
	// ErrDecode marks a stored slot whose payload could not be decoded.
	ErrDecode = errors.New("decode snapshot slot")
)
