package store

import (
	"fmt"

	"github.com/tgienger/keep/internal/models"
)

// Projection is the rendered shape of the current view: two independently
// reorderable groups, pinned first
type Projection struct {
	Pinned []models.Note
	Others []models.Note
}

// SetView switches the active view
func (s *Store) SetView(v models.View) error {
	if !v.Valid() {
		return fmt.Errorf("%w: view %q", ErrValidation, v)
	}
	s.view = v
	return nil
}

// View returns the active view
func (s *Store) View() models.View {
	return s.view
}

// SetLabelFilter restricts the notes view to notes carrying the given label
func (s *Store) SetLabelFilter(labelID string) error {
	if s.findLabel(labelID) < 0 {
		return fmt.Errorf("%w: label %s", ErrNotFound, labelID)
	}
	s.labelFilter = labelID
	return nil
}

// ClearLabelFilter removes any active label filter
func (s *Store) ClearLabelFilter() {
	s.labelFilter = ""
}

// LabelFilter returns the active label filter id, or "" when none is set
func (s *Store) LabelFilter() string {
	return s.labelFilter
}

func (s *Store) inView(n *models.Note) bool {
	switch s.view {
	case models.ViewTrash:
		return n.Trashed
	case models.ViewArchive:
		return n.Archived && !n.Trashed
	case models.ViewReminders:
		return n.Reminder != nil && !n.Trashed
	default:
		if n.Archived || n.Trashed {
			return false
		}
		// The label filter only applies to the default view, matching the
		// reference behavior
		if s.labelFilter != "" {
			return n.HasLabel(s.labelFilter)
		}
		return true
	}
}

// Project computes the current view's note list, partitioned into pinned
// and others with stored order preserved inside each group. It is a pure
// read: recomputed on every call, returning copies only.
func (s *Store) Project() Projection {
	var p Projection
	for i := range s.notes {
		n := &s.notes[i]
		if !s.inView(n) {
			continue
		}
		c := n.Clone()
		// Drop any label id that no longer resolves. DeleteLabel cleanses
		// eagerly, so this only matters for snapshots written by older or
		// buggy versions; the stored note is left as-is.
		if len(c.LabelIDs) > 0 {
			kept := c.LabelIDs[:0]
			for _, lid := range c.LabelIDs {
				if s.findLabel(lid) >= 0 {
					kept = append(kept, lid)
				}
			}
			c.LabelIDs = kept
		}
		if c.Pinned {
			p.Pinned = append(p.Pinned, c)
		} else {
			p.Others = append(p.Others, c)
		}
	}
	return p
}
