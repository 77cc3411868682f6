// Package records provides the in-memory record collections: an ordered
// list with O(1) removal by handle, a FIFO queue, and an id-allocating store.
package records

// Record is implemented by values kept in a List.
type Record interface {
	RecordID() int
}

// Handle wraps a record and its position in a List.
// It is the unit of removal. Once removed, a handle is stale and
// every operation on it through the list is a no-op.
type Handle[T Record] struct {
	value T
	prev  *Handle[T]
	next  *Handle[T]
	owner *List[T]
}

// Value returns the wrapped record.
func (h *Handle[T]) Value() T {
	return h.value
}

// ID returns the wrapped record's ID.
func (h *Handle[T]) ID() int {
	return h.value.RecordID()
}

// Live returns true while the handle is still linked into its list.
func (h *Handle[T]) Live() bool {
	return h != nil && h.owner != nil
}

// Next returns the following handle in insertion order, or nil.
// A removed handle has no successor; capture Next before removing.
func (h *Handle[T]) Next() *Handle[T] {
	if h == nil {
		return nil
	}
	return h.next
}

// List is a doubly-linked sequence of record handles in insertion order.
// The zero value is an empty list ready to use.
type List[T Record] struct {
	head   *Handle[T]
	tail   *Handle[T]
	length int
}

// Append adds v at the tail and returns its handle.
func (l *List[T]) Append(v T) *Handle[T] {
	h := &Handle[T]{value: v, owner: l}
	if l.tail == nil {
		l.head = h
	} else {
		l.tail.next = h
		h.prev = l.tail
	}
	l.tail = h
	l.length++
	return h
}

// Remove unlinks h in O(1). Nil, stale and foreign handles are ignored.
func (l *List[T]) Remove(h *Handle[T]) {
	if h == nil || h.owner != l {
		return
	}
	if h.prev != nil {
		h.prev.next = h.next
	} else {
		l.head = h.next
	}
	if h.next != nil {
		h.next.prev = h.prev
	} else {
		l.tail = h.prev
	}
	h.prev, h.next, h.owner = nil, nil, nil
	l.length--
}

// FindByID scans in insertion order and returns the first handle whose
// record has the given ID, or nil.
func (l *List[T]) FindByID(id int) *Handle[T] {
	for h := l.head; h != nil; h = h.next {
		if h.value.RecordID() == id {
			return h
		}
	}
	return nil
}

// Front returns the first handle, or nil for an empty list.
func (l *List[T]) Front() *Handle[T] {
	return l.head
}

// Back returns the last handle, or nil for an empty list.
func (l *List[T]) Back() *Handle[T] {
	return l.tail
}

// Len returns the number of live handles.
func (l *List[T]) Len() int {
	return l.length
}

// Handles returns the handles in insertion order.
// The returned slice is a snapshot: removing while ranging over it is safe.
func (l *List[T]) Handles() []*Handle[T] {
	out := make([]*Handle[T], 0, l.length)
	for h := l.head; h != nil; h = h.next {
		out = append(out, h)
	}
	return out
}

// Values returns the records in insertion order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.length)
	for h := l.head; h != nil; h = h.next {
		out = append(out, h.value)
	}
	return out
}

// Clear unlinks every handle.
func (l *List[T]) Clear() {
	for h := l.head; h != nil; {
		next := h.next
		h.prev, h.next, h.owner = nil, nil, nil
		h = next
	}
	l.head, l.tail, l.length = nil, nil, 0
}
