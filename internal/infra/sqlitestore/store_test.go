package sqlitestore

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/runoshun/taskpad/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "taskpad.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpen_EmptyPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestStore_ReadMissing(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Read(domain.SlotTasks)

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestStore_WriteOverwrites(t *testing.T) {
	s, _ := openTestStore(t)

	require.NoError(t, s.Write(domain.SlotTaskCounter, []byte(`1`)))
	require.NoError(t, s.Write(domain.SlotTaskCounter, []byte(`2`)))

	got, err := s.Read(domain.SlotTaskCounter)
	require.NoError(t, err)
	assert.Equal(t, "2", string(got))
}

func TestStore_WriteAllPersistsAcrossReopen(t *testing.T) {
	s, path := openTestStore(t)
	payloads := map[string][]byte{
		domain.SlotTasks:       []byte(`[{"id":1,"name":"Essay","status":"pending"}]`),
		domain.SlotNotes:       []byte(`[]`),
		domain.SlotTaskCounter: []byte(`2`),
		domain.SlotNoteCounter: []byte(`1`),
	}

	require.NoError(t, s.WriteAll(payloads))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	for slot, want := range payloads {
		got, err := reopened.Read(slot)
		require.NoError(t, err, slot)
		assert.Equal(t, string(want), string(got), slot)
	}
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file:memdb?mode=memory", sqliteDSN("file:memdb?mode=memory"))

	dsn := sqliteDSN("/tmp/taskpad.db")
	assert.True(t, strings.HasPrefix(dsn, "file:///tmp/taskpad.db?"), dsn)
	assert.Contains(t, dsn, "mode=rwc")
}
