package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/keep/internal/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore()
	l, err := s.CreateLabel("work", "#e0af68")
	require.NoError(t, err)

	r := time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC)
	mustCreate(t, s, Draft{
		Title:    "note",
		Content:  "body",
		LabelIDs: []string{l.ID},
		Reminder: &r,
		Image:    []byte{0x89, 0x50, 0x4e, 0x47},
	})
	mustCreate(t, s, Draft{
		Title: "list",
		Type:  models.TypeList,
		Items: []models.NoteItem{{ID: "i1", Text: "milk", Checked: true}},
		Color: "sand",
	})

	data, err := s.Snapshot()
	require.NoError(t, err)

	restored := New()
	restored.RestoreSnapshot(data)

	assert.Equal(t, s.Notes(), restored.Notes())
	assert.Equal(t, s.Labels(), restored.Labels())

	// Timestamps and reminders come back as real time values
	notes := restored.Notes()
	require.Len(t, notes, 2)
	assert.False(t, notes[1].CreatedAt.IsZero())
	require.NotNil(t, notes[1].Reminder)
	assert.True(t, notes[1].Reminder.Equal(r))
}

func TestSnapshotTimestampsAreRFC3339(t *testing.T) {
	s := newTestStore()
	mustCreate(t, s, Draft{Title: "n"})

	data, err := s.Snapshot()
	require.NoError(t, err)

	var doc struct {
		Version int `json:"version"`
		Notes   []struct {
			CreatedAt string `json:"createdAt"`
		} `json:"notes"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, SnapshotVersion, doc.Version)
	require.Len(t, doc.Notes, 1)
	_, err = time.Parse(time.RFC3339, doc.Notes[0].CreatedAt)
	assert.NoError(t, err)
}

func TestRestoreSnapshotCorruptYieldsEmptyState(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":         nil,
		"garbage":       []byte("not json"),
		"wrong shape":   []byte(`[1,2,3]`),
		"wrong version": []byte(`{"version":99,"notes":[],"labels":[]}`),
		"bad timestamp": []byte(`{"version":1,"notes":[{"id":"x","createdAt":"yesterday"}],"labels":[]}`),
	} {
		s := newTestStore()
		mustCreate(t, s, Draft{Title: "stale"})

		s.RestoreSnapshot(data)
		assert.Empty(t, s.Notes(), name)
		assert.Empty(t, s.Labels(), name)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestStore()
	mustCreate(t, src, Draft{Title: "one"})
	mustCreate(t, src, Draft{Title: "two"})

	out, err := src.ExportNotes()
	require.NoError(t, err)

	dst := newTestStore()
	count, err := dst.ImportNotes(out)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, ids(src.Notes()), ids(dst.Notes()))
}

func TestImportRejectsMalformedPayloads(t *testing.T) {
	for name, data := range map[string][]byte{
		"not json":     []byte("{"),
		"not an array": []byte(`{"id":"x"}`),
		"missing id":   []byte(`[{"title":"x","type":"text"}]`),
		"bad type":     []byte(`[{"id":"x","type":"spreadsheet"}]`),
		"bad date":     []byte(`[{"id":"x","type":"text","createdAt":"yesterday"}]`),
	} {
		s := newTestStore()
		mustCreate(t, s, Draft{Title: "existing"})

		_, err := s.ImportNotes(data)
		assert.ErrorIs(t, err, ErrMalformedImport, name)
		assert.Len(t, s.Notes(), 1, "%s: nothing may be merged", name)
	}
}

func TestImportRegeneratesCollidingIDs(t *testing.T) {
	s := newTestStore()
	n := mustCreate(t, s, Draft{Title: "original"})

	payload, err := json.Marshal([]models.Note{{ID: n.ID, Title: "imported", Type: models.TypeText}})
	require.NoError(t, err)

	count, err := s.ImportNotes(payload)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	notes := s.Notes()
	require.Len(t, notes, 2)
	assert.NotEqual(t, notes[0].ID, notes[1].ID)
}

func TestImportDropsForeignLabelIDs(t *testing.T) {
	s := newTestStore()
	l, err := s.CreateLabel("known", "")
	require.NoError(t, err)

	payload, err := json.Marshal([]models.Note{{
		ID:       "imported",
		Type:     models.TypeText,
		LabelIDs: []string{l.ID, "from-another-install"},
	}})
	require.NoError(t, err)

	_, err = s.ImportNotes(payload)
	require.NoError(t, err)

	got, err := s.Note("imported")
	require.NoError(t, err)
	assert.Equal(t, []string{l.ID}, got.LabelIDs)
}

func TestExportIsPrettyPrintedArray(t *testing.T) {
	s := newTestStore()
	mustCreate(t, s, Draft{Title: "n"})

	out, err := s.ExportNotes()
	require.NoError(t, err)
	assert.Equal(t, byte('['), out[0])
	assert.Contains(t, string(out), "\n  ")
}
