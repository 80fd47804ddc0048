package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLabel(t *testing.T) {
	s := newTestStore()

	l, err := s.CreateLabel("errands", "")
	require.NoError(t, err)
	assert.NotEmpty(t, l.ID)
	assert.Equal(t, "errands", l.Name)
}

func TestCreateLabelValidation(t *testing.T) {
	s := newTestStore()

	_, err := s.CreateLabel("", "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = s.CreateLabel(strings.Repeat("x", MaxLabelNameLen+1), "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, s.Labels())
}

func TestCreateLabelPermitsDuplicateNames(t *testing.T) {
	s := newTestStore()

	a, err := s.CreateLabel("work", "")
	require.NoError(t, err)
	b, err := s.CreateLabel("work", "")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.Labels(), 2)
}

func TestRenameLabel(t *testing.T) {
	s := newTestStore()
	l, err := s.CreateLabel("work", "")
	require.NoError(t, err)

	got, err := s.RenameLabel(l.ID, "office", "")
	require.NoError(t, err)
	assert.Equal(t, "office", got.Name)

	// Rename against a missing id must report failure, not no-op
	_, err = s.RenameLabel("missing", "x", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteLabelCascades(t *testing.T) {
	s := newTestStore()
	a, err := s.CreateLabel("a", "")
	require.NoError(t, err)
	b, err := s.CreateLabel("b", "")
	require.NoError(t, err)

	n := mustCreate(t, s, Draft{Title: "n", LabelIDs: []string{a.ID, b.ID}})
	other := mustCreate(t, s, Draft{Title: "other", LabelIDs: []string{b.ID}})

	require.NoError(t, s.DeleteLabel(b.ID))

	got, err := s.Note(n.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, got.LabelIDs)

	got, err = s.Note(other.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LabelIDs)

	assert.Len(t, s.Labels(), 1)

	// The deleted label never appears in a projection
	p := s.Project()
	for _, n := range append(p.Pinned, p.Others...) {
		assert.NotContains(t, n.LabelIDs, b.ID)
	}
}

func TestDeleteLabelClearsActiveFilter(t *testing.T) {
	s := newTestStore()
	l, err := s.CreateLabel("a", "")
	require.NoError(t, err)
	require.NoError(t, s.SetLabelFilter(l.ID))

	require.NoError(t, s.DeleteLabel(l.ID))
	assert.Empty(t, s.LabelFilter())
}

func TestDeleteLabelNotFound(t *testing.T) {
	s := newTestStore()
	assert.ErrorIs(t, s.DeleteLabel("missing"), ErrNotFound)
}

func TestToggleLabel(t *testing.T) {
	s := newTestStore()
	l, err := s.CreateLabel("a", "")
	require.NoError(t, err)
	n := mustCreate(t, s, Draft{Title: "n"})

	got, err := s.ToggleLabel(n.ID, l.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{l.ID}, got.LabelIDs)

	got, err = s.ToggleLabel(n.ID, l.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LabelIDs)
}

func TestToggleLabelNotFound(t *testing.T) {
	s := newTestStore()
	l, err := s.CreateLabel("a", "")
	require.NoError(t, err)
	n := mustCreate(t, s, Draft{Title: "n"})

	_, err = s.ToggleLabel(n.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ToggleLabel("missing", l.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.Note(n.ID)
	require.NoError(t, err)
	assert.Empty(t, got.LabelIDs)
}
