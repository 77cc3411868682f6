package records

// Store owns a List and the counter that allocates record IDs.
// IDs are never reused, even after the record is removed.
type Store[T Record] struct {
	list    List[T]
	counter int
}

// NewStore creates an empty store whose first allocated ID is 1.
func NewStore[T Record]() *Store[T] {
	return &Store[T]{counter: 1}
}

// Create allocates the next ID, builds the record with it and appends it.
// The counter advances exactly once per call.
func (s *Store[T]) Create(build func(id int) T) *Handle[T] {
	id := s.counter
	s.counter++
	return s.list.Append(build(id))
}

// FindByID returns the handle of the record with the given ID, or nil.
func (s *Store[T]) FindByID(id int) *Handle[T] {
	return s.list.FindByID(id)
}

// Remove unlinks h. Nil and stale handles are ignored.
func (s *Store[T]) Remove(h *Handle[T]) {
	s.list.Remove(h)
}

// PruneWhere removes every record matching pred in a single pass
// and returns the removed records in list order.
func (s *Store[T]) PruneWhere(pred func(T) bool) []T {
	var removed []T
	for h := s.list.Front(); h != nil; {
		next := h.Next()
		if pred(h.value) {
			removed = append(removed, h.value)
			s.list.Remove(h)
		}
		h = next
	}
	return removed
}

// Restore replaces the contents with raw, in the given order.
// The counter is taken from counter when present; otherwise it is
// recovered as max(ID)+1, or 1 when raw is empty. A persisted counter
// that would hand out an existing ID is raised to max(ID)+1.
func (s *Store[T]) Restore(raw []T, counter *int) {
	s.list.Clear()
	maxID := 0
	for _, v := range raw {
		s.list.Append(v)
		if id := v.RecordID(); id > maxID {
			maxID = id
		}
	}
	s.counter = maxID + 1
	if counter != nil && *counter > maxID {
		s.counter = *counter
	}
}

// NextID returns the ID the next Create will allocate.
func (s *Store[T]) NextID() int {
	return s.counter
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return s.list.Len()
}

// Handles returns the handles in insertion order.
func (s *Store[T]) Handles() []*Handle[T] {
	return s.list.Handles()
}

// Values returns the records in insertion order.
func (s *Store[T]) Values() []T {
	return s.list.Values()
}
