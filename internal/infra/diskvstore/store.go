// Package diskvstore provides a diskv-backed implementation of domain.SlotStore.
// Each slot is one file under the base directory. Writes are independent, so
// a failure part way through a save leaves earlier slots updated.
package diskvstore

import (
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"github.com/runoshun/taskpad/internal/domain"
)

// Store implements domain.SlotStore with one diskv key per slot.
type Store struct {
	d *diskv.Diskv
}

// New creates a Store rooted at basePath.
func New(basePath string) *Store {
	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			Transform:    flatTransform,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}
}

// Read returns the payload of a slot.
func (s *Store) Read(slot string) ([]byte, error) {
	if !s.d.Has(slot) {
		return nil, domain.ErrSlotNotFound
	}
	val, err := s.d.Read(slot)
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", slot, err)
	}
	return val, nil
}

// Write replaces the payload of a slot.
func (s *Store) Write(slot string, payload []byte) error {
	if err := s.d.Write(slot, payload); err != nil {
		return fmt.Errorf("write slot %s: %w", slot, err)
	}
	return nil
}

// flatTransform keeps every slot directly under the base path.
func flatTransform(string) []string {
	return []string{}
}

var _ domain.SlotStore = (*Store)(nil)
