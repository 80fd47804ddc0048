package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/keep/internal/models"
)

// seedViews creates one note per lifecycle state and returns their ids
func seedViews(t *testing.T, s *Store) (active, pinned, archived, trashed, reminded string) {
	t.Helper()

	// Creation prepends, so create in reverse of the order we want
	r := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	n := mustCreate(t, s, Draft{Title: "reminded", Reminder: &r})
	reminded = n.ID

	n = mustCreate(t, s, Draft{Title: "trashed"})
	trashed = n.ID
	_, err := s.Trash(trashed)
	require.NoError(t, err)

	n = mustCreate(t, s, Draft{Title: "archived"})
	archived = n.ID
	_, err = s.ToggleArchive(archived)
	require.NoError(t, err)

	n = mustCreate(t, s, Draft{Title: "pinned"})
	pinned = n.ID
	_, err = s.TogglePin(pinned)
	require.NoError(t, err)

	n = mustCreate(t, s, Draft{Title: "active"})
	active = n.ID
	return
}

func ids(notes []models.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.ID
	}
	return out
}

func TestProjectNotesView(t *testing.T) {
	s := newTestStore()
	active, pinned, _, _, reminded := seedViews(t, s)

	p := s.Project()
	assert.Equal(t, []string{pinned}, ids(p.Pinned))
	assert.Equal(t, []string{active, reminded}, ids(p.Others))
}

func TestProjectArchiveView(t *testing.T) {
	s := newTestStore()
	_, _, archived, trashed, _ := seedViews(t, s)

	// A trashed note keeps its archived flag hidden: trash wins
	_, err := s.Restore(trashed)
	require.NoError(t, err)
	_, err = s.ToggleArchive(trashed)
	require.NoError(t, err)
	_, err = s.Trash(trashed)
	require.NoError(t, err)

	require.NoError(t, s.SetView(models.ViewArchive))
	p := s.Project()
	assert.Empty(t, p.Pinned)
	assert.Equal(t, []string{archived}, ids(p.Others))
}

func TestProjectTrashView(t *testing.T) {
	s := newTestStore()
	_, _, _, trashed, _ := seedViews(t, s)

	require.NoError(t, s.SetView(models.ViewTrash))
	p := s.Project()
	assert.Empty(t, p.Pinned)
	assert.Equal(t, []string{trashed}, ids(p.Others))
}

func TestProjectRemindersView(t *testing.T) {
	s := newTestStore()
	_, _, _, _, reminded := seedViews(t, s)

	// A trashed note with a reminder stays out of the reminders view
	r := time.Now()
	n := mustCreate(t, s, Draft{Title: "gone", Reminder: &r})
	_, err := s.Trash(n.ID)
	require.NoError(t, err)

	require.NoError(t, s.SetView(models.ViewReminders))
	p := s.Project()
	assert.Equal(t, []string{reminded}, ids(p.Others))
}

func TestProjectLabelFilter(t *testing.T) {
	s := newTestStore()
	l, err := s.CreateLabel("work", "")
	require.NoError(t, err)

	plain := mustCreate(t, s, Draft{Title: "plain"})
	tagged := mustCreate(t, s, Draft{Title: "tagged", LabelIDs: []string{l.ID}})
	pinnedTagged := mustCreate(t, s, Draft{Title: "pinned tagged", LabelIDs: []string{l.ID}})
	_, err = s.TogglePin(pinnedTagged.ID)
	require.NoError(t, err)

	archivedTagged := mustCreate(t, s, Draft{Title: "archived tagged", LabelIDs: []string{l.ID}})
	_, err = s.ToggleArchive(archivedTagged.ID)
	require.NoError(t, err)

	require.NoError(t, s.SetLabelFilter(l.ID))
	p := s.Project()
	assert.Equal(t, []string{pinnedTagged.ID}, ids(p.Pinned))
	assert.Equal(t, []string{tagged.ID}, ids(p.Others))
	assert.NotContains(t, ids(p.Others), plain.ID)

	// The filter applies to the notes view only
	require.NoError(t, s.SetView(models.ViewArchive))
	p = s.Project()
	assert.Equal(t, []string{archivedTagged.ID}, ids(p.Others))
}

func TestSetLabelFilterNotFound(t *testing.T) {
	s := newTestStore()
	assert.ErrorIs(t, s.SetLabelFilter("missing"), ErrNotFound)
}

func TestSetViewValidation(t *testing.T) {
	s := newTestStore()
	assert.ErrorIs(t, s.SetView(models.View("bogus")), ErrValidation)
	assert.Equal(t, models.ViewNotes, s.View())
}

func TestProjectIsPure(t *testing.T) {
	s := newTestStore()
	n := mustCreate(t, s, Draft{Title: "n"})

	p := s.Project()
	require.Len(t, p.Others, 1)
	p.Others[0].Title = "mutated"
	p.Others[0].Trashed = true

	got, err := s.Note(n.ID)
	require.NoError(t, err)
	assert.Equal(t, "n", got.Title)
	assert.False(t, got.Trashed)
}

func TestProjectDropsStaleLabelIDs(t *testing.T) {
	s := newTestStore()
	l, err := s.CreateLabel("a", "")
	require.NoError(t, err)
	mustCreate(t, s, Draft{Title: "n", LabelIDs: []string{l.ID}})

	// Simulate a snapshot from a version that failed to cascade
	s.labels = nil

	p := s.Project()
	require.Len(t, p.Others, 1)
	assert.Empty(t, p.Others[0].LabelIDs)
}
