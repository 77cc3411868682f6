package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	name string
	id   int
}

func (i *item) RecordID() int { return i.id }

func ids(l *List[*item]) []int {
	var out []int
	for _, v := range l.Values() {
		out = append(out, v.id)
	}
	return out
}

func TestList_AppendKeepsInsertionOrder(t *testing.T) {
	var l List[*item]
	for i := 1; i <= 3; i++ {
		l.Append(&item{id: i})
	}

	assert.Equal(t, []int{1, 2, 3}, ids(&l))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 1, l.Front().ID())
	assert.Equal(t, 3, l.Back().ID())
}

func TestList_Remove(t *testing.T) {
	tests := []struct {
		name   string
		remove int // index of the handle to remove
		want   []int
	}{
		{"head", 0, []int{2, 3}},
		{"middle", 1, []int{1, 3}},
		{"tail", 2, []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l List[*item]
			handles := []*Handle[*item]{
				l.Append(&item{id: 1}),
				l.Append(&item{id: 2}),
				l.Append(&item{id: 3}),
			}

			l.Remove(handles[tt.remove])

			assert.Equal(t, tt.want, ids(&l))
			assert.Equal(t, 2, l.Len())
			assert.False(t, handles[tt.remove].Live())
			assert.Equal(t, tt.want[0], l.Front().ID())
			assert.Equal(t, tt.want[1], l.Back().ID())
		})
	}
}

func TestList_RemoveOnlyElement(t *testing.T) {
	var l List[*item]
	h := l.Append(&item{id: 1})

	l.Remove(h)

	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
}

func TestList_RemoveNoOps(t *testing.T) {
	var l List[*item]
	l.Remove(nil) // empty list, nil handle
	assert.Equal(t, 0, l.Len())

	h := l.Append(&item{id: 1})
	l.Append(&item{id: 2})
	l.Remove(h)
	l.Remove(h) // stale handle
	assert.Equal(t, []int{2}, ids(&l))
	assert.Equal(t, 1, l.Len())

	var other List[*item]
	foreign := other.Append(&item{id: 9})
	l.Remove(foreign)
	assert.Equal(t, 1, l.Len())
	assert.Equal(t, 1, other.Len())
}

func TestList_FindByID(t *testing.T) {
	var l List[*item]
	l.Append(&item{id: 1, name: "a"})
	h := l.Append(&item{id: 2, name: "b"})

	got := l.FindByID(2)
	require.NotNil(t, got)
	assert.Same(t, h, got)
	assert.Equal(t, "b", got.Value().name)

	assert.Nil(t, l.FindByID(42))

	l.Remove(h)
	assert.Nil(t, l.FindByID(2))
}

func TestList_HandlesSnapshotAllowsRemoval(t *testing.T) {
	var l List[*item]
	for i := 1; i <= 4; i++ {
		l.Append(&item{id: i})
	}

	for _, h := range l.Handles() {
		if h.ID()%2 == 0 {
			l.Remove(h)
		}
	}

	assert.Equal(t, []int{1, 3}, ids(&l))
}

func TestList_Clear(t *testing.T) {
	var l List[*item]
	h := l.Append(&item{id: 1})
	l.Append(&item{id: 2})

	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.False(t, h.Live())
	assert.Nil(t, l.FindByID(1))
}

func TestQueue(t *testing.T) {
	var q Queue[string]
	assert.True(t, q.IsEmpty())

	_, ok := q.Dequeue()
	assert.False(t, ok)

	q.Enqueue("a")
	q.Enqueue("b")
	assert.Equal(t, []string{"a", "b"}, q.Items())
	assert.Equal(t, 2, q.Len())

	v, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.Empty(t, q.Items())
}

func TestQueue_ItemsIsCopy(t *testing.T) {
	var q Queue[int]
	q.Enqueue(1)

	items := q.Items()
	items[0] = 99

	assert.Equal(t, []int{1}, q.Items())
}
