package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "keep.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestSettingsRoundTrip(t *testing.T) {
	database := openTestDB(t)

	val, err := database.GetSetting("last_view")
	require.NoError(t, err)
	assert.Empty(t, val, "missing settings read as empty")

	require.NoError(t, database.SetSetting("last_view", "archive"))
	require.NoError(t, database.SetSetting("last_view", "trash"))

	val, err = database.GetSetting("last_view")
	require.NoError(t, err)
	assert.Equal(t, "trash", val)
}

func TestSnapshotRoundTrip(t *testing.T) {
	database := openTestDB(t)

	data, err := database.LoadSnapshot("collections")
	require.NoError(t, err)
	assert.Nil(t, data, "missing snapshots load as nil, not an error")

	doc := []byte(`{"version":1,"notes":[],"labels":[]}`)
	require.NoError(t, database.SaveSnapshot("collections", doc))

	got, err := database.LoadSnapshot("collections")
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestSnapshotOverwrite(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, database.SaveSnapshot("collections", []byte(`{"version":1}`)))
	require.NoError(t, database.SaveSnapshot("collections", []byte(`{"version":1,"notes":[]}`)))

	got, err := database.LoadSnapshot("collections")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"version":1,"notes":[]}`), got)
}

func TestDeleteSnapshot(t *testing.T) {
	database := openTestDB(t)

	require.NoError(t, database.SaveSnapshot("collections", []byte(`{}`)))
	require.NoError(t, database.DeleteSnapshot("collections"))

	got, err := database.LoadSnapshot("collections")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent key is fine
	require.NoError(t, database.DeleteSnapshot("collections"))
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keep.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.SetSetting("k", "v"))
	require.NoError(t, first.Close())

	// Re-opening runs the schema again without clobbering data
	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	val, err := second.GetSetting("k")
	require.NoError(t, err)
	assert.Equal(t, "v", val)
}
