package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todoline/internal/list"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadSeedsEmptyStore(t *testing.T) {
	s := openTestStore(t)

	tasks, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// The seeded value must decode as an empty array on the next read.
	var raw string
	require.NoError(t, s.db.QueryRow(`SELECT value FROM kv WHERE name = ?;`, tasksKey).Scan(&raw))
	assert.Equal(t, "[]", raw)

	tasks, err = s.Load()
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	in := []list.Task{
		{ID: 0, Text: "milk", Done: false},
		{ID: 1, Text: "café au lait", Done: true},
		{ID: 2, Text: "", Done: false},
	}
	require.NoError(t, s.Save(in))

	out, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// Saving what was loaded must not change the stored value.
	require.NoError(t, s.Save(out))
	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, in, again)
}

func TestSaveNilStoresEmptyArray(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save(nil))

	var raw string
	require.NoError(t, s.db.QueryRow(`SELECT value FROM kv WHERE name = ?;`, tasksKey).Scan(&raw))
	assert.Equal(t, "[]", raw)
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save([]list.Task{{ID: 0, Text: "milk"}}))
	require.NoError(t, s.Save([]list.Task{{ID: 0, Text: "eggs"}}))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "eggs", out[0].Text)
}

func TestLoadCorruptValue(t *testing.T) {
	s := openTestStore(t)
	_, err := s.db.Exec(`INSERT INTO kv (name, value) VALUES (?, ?);`, tasksKey, "{not json")
	require.NoError(t, err)

	_, err = s.Load()
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestOpenEmptyPath(t *testing.T) {
	_, err := Open("")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEditFlagIsNotPersisted(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Save([]list.Task{{ID: 0, Text: "milk", Editing: true}}))

	out, err := s.Load()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.False(t, out[0].Editing)
}
