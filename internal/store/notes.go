package store

import (
	"fmt"

	"github.com/tgienger/keep/internal/models"
)

// TogglePin flips the pinned flag. Archived and trashed are untouched.
func (s *Store) TogglePin(id string) (models.Note, error) {
	i := s.findNote(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	n := &s.notes[i]
	n.Pinned = !n.Pinned
	n.UpdatedAt = s.now()
	return n.Clone(), nil
}

// ToggleArchive flips the archived flag. Archiving a note always unpins it.
func (s *Store) ToggleArchive(id string) (models.Note, error) {
	i := s.findNote(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	n := &s.notes[i]
	n.Archived = !n.Archived
	if n.Archived {
		n.Pinned = false
	}
	n.UpdatedAt = s.now()
	return n.Clone(), nil
}

// Trash moves a note to the trash, clearing pinned and archived. Idempotent.
func (s *Store) Trash(id string) (models.Note, error) {
	i := s.findNote(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	n := &s.notes[i]
	n.Trashed = true
	n.Archived = false
	n.Pinned = false
	n.UpdatedAt = s.now()
	return n.Clone(), nil
}

// Restore clears the trashed flag. Pinned and archived stay cleared; a
// restored note always lands back in the default view.
func (s *Store) Restore(id string) (models.Note, error) {
	i := s.findNote(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	n := &s.notes[i]
	n.Trashed = false
	n.UpdatedAt = s.now()
	return n.Clone(), nil
}

// Purge permanently removes a note from the collection
func (s *Store) Purge(id string) error {
	i := s.findNote(id)
	if i < 0 {
		return fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)
	return nil
}

// EmptyTrash permanently removes every trashed note and returns how many
// were removed. Confirmation is the caller's responsibility.
func (s *Store) EmptyTrash() int {
	kept := s.notes[:0]
	removed := 0
	for _, n := range s.notes {
		if n.Trashed {
			removed++
			continue
		}
		kept = append(kept, n)
	}
	s.notes = kept
	return removed
}
