// Package persistence maps the record stores to and from the four snapshot
// slots of a SlotStore backend.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/runoshun/taskpad/internal/domain"
)

// Adapter encodes snapshots as JSON slot payloads.
type Adapter struct {
	store domain.SlotStore
}

// New creates an Adapter over the given backend.
func New(store domain.SlotStore) *Adapter {
	return &Adapter{store: store}
}

// Save writes all four slots.
// Backends implementing domain.BatchSlotStore write them atomically. Other
// backends get one write per slot in SnapshotSlots order; every slot is
// attempted and the failures are joined.
func (a *Adapter) Save(snap domain.Snapshot) error {
	payloads, err := encode(snap)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
	}

	if batch, ok := a.store.(domain.BatchSlotStore); ok {
		if err := batch.WriteAll(payloads); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
		}
		return nil
	}

	var errs []error
	for _, slot := range domain.SnapshotSlots() {
		if err := a.store.Write(slot, payloads[slot]); err != nil {
			errs = append(errs, fmt.Errorf("slot %s: %w", slot, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, errors.Join(errs...))
	}
	return nil
}

// Load reads all four slots.
// A slot that was never written is absent. A slot that cannot be read or
// decoded is also treated as absent and reported in the returned error,
// which wraps domain.ErrDecode. The snapshot is usable even when err != nil.
func (a *Adapter) Load() (domain.Snapshot, error) {
	var snap domain.Snapshot
	var errs []error

	targets := map[string]any{
		domain.SlotTasks:       &snap.Tasks,
		domain.SlotNotes:       &snap.Notes,
		domain.SlotTaskCounter: &snap.TaskCounter,
		domain.SlotNoteCounter: &snap.NoteCounter,
	}

	for _, slot := range domain.SnapshotSlots() {
		payload, err := a.store.Read(slot)
		if errors.Is(err, domain.ErrSlotNotFound) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%w %s: %w", domain.ErrDecode, slot, err))
			continue
		}
		if err := json.Unmarshal(payload, targets[slot]); err != nil {
			errs = append(errs, fmt.Errorf("%w %s: %w", domain.ErrDecode, slot, err))
			resetSlot(&snap, slot)
		}
	}

	return snap, errors.Join(errs...)
}

func encode(snap domain.Snapshot) (map[string][]byte, error) {
	tasks := snap.Tasks
	if tasks == nil {
		tasks = []domain.Task{}
	}
	notes := snap.Notes
	if notes == nil {
		notes = []domain.Note{}
	}

	values := map[string]any{
		domain.SlotTasks:       tasks,
		domain.SlotNotes:       notes,
		domain.SlotTaskCounter: snap.TaskCounter,
		domain.SlotNoteCounter: snap.NoteCounter,
	}

	payloads := make(map[string][]byte, len(values))
	for slot, v := range values {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", slot, err)
		}
		payloads[slot] = data
	}
	return payloads, nil
}

// resetSlot discards a partially decoded slot.
func resetSlot(snap *domain.Snapshot, slot string) {
	switch slot {
	case domain.SlotTasks:
		snap.Tasks = nil
	case domain.SlotNotes:
		snap.Notes = nil
	case domain.SlotTaskCounter:
		snap.TaskCounter = nil
	case domain.SlotNoteCounter:
		snap.NoteCounter = nil
	}
}
