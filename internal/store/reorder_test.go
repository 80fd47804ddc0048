package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedOrder creates notes so the global order reads a, b, c, d and returns
// their ids keyed by title
func seedOrder(t *testing.T, s *Store) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, title := range []string{"d", "c", "b", "a"} {
		n := mustCreate(t, s, Draft{Title: title})
		out[title] = n.ID
	}
	return out
}

func order(s *Store) []string {
	notes := s.Notes()
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Title
	}
	return out
}

func TestReorderMoveForward(t *testing.T) {
	s := newTestStore()
	m := seedOrder(t, s)

	// Move a to c's position: single-element move, not a swap
	s.Reorder(m["a"], m["c"])
	assert.Equal(t, []string{"b", "c", "a", "d"}, order(s))
}

func TestReorderMoveBackward(t *testing.T) {
	s := newTestStore()
	m := seedOrder(t, s)

	s.Reorder(m["d"], m["b"])
	assert.Equal(t, []string{"a", "d", "b", "c"}, order(s))
}

func TestReorderIsPermutation(t *testing.T) {
	s := newTestStore()
	m := seedOrder(t, s)

	for _, src := range []string{"a", "b", "c", "d"} {
		for _, dst := range []string{"a", "b", "c", "d"} {
			s.Reorder(m[src], m[dst])
			got := order(s)
			assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, got,
				"move %s -> %s must keep the same multiset", src, dst)
		}
	}
}

func TestReorderDeterministic(t *testing.T) {
	run := func() []string {
		s := newTestStore()
		m := seedOrder(t, s)
		s.Reorder(m["a"], m["d"])
		return order(s)
	}
	assert.Equal(t, run(), run())
}

func TestReorderNoOps(t *testing.T) {
	s := newTestStore()
	m := seedOrder(t, s)
	before := order(s)

	s.Reorder(m["a"], m["a"])
	assert.Equal(t, before, order(s))

	s.Reorder(m["a"], "missing")
	assert.Equal(t, before, order(s))

	s.Reorder("missing", m["a"])
	assert.Equal(t, before, order(s))
}

func TestReorderIgnoresCrossPartitionMove(t *testing.T) {
	s := newTestStore()
	m := seedOrder(t, s)
	_, err := s.TogglePin(m["a"])
	require.NoError(t, err)

	before := order(s)
	s.Reorder(m["a"], m["c"])
	assert.Equal(t, before, order(s), "a pinned note never moves relative to unpinned targets")
}

func TestReorderMovesWithinPartitionAcrossGlobalGaps(t *testing.T) {
	s := newTestStore()
	m := seedOrder(t, s)

	// Pin a and c; global order stays a, b, c, d
	for _, title := range []string{"a", "c"} {
		_, err := s.TogglePin(m[title])
		require.NoError(t, err)
	}

	// Moving a to c's slot hops over the unpinned b
	s.Reorder(m["a"], m["c"])
	assert.Equal(t, []string{"b", "c", "a", "d"}, order(s))

	p := s.Project()
	assert.Equal(t, []string{"c", "a"}, func() []string {
		out := make([]string, len(p.Pinned))
		for i, n := range p.Pinned {
			out[i] = n.Title
		}
		return out
	}())
}
