package store

import (
	"fmt"
	"unicode/utf8"

	"github.com/tgienger/keep/internal/models"
)

func validateLabelName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: label name cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(name) > MaxLabelNameLen {
		return fmt.Errorf("%w: label name exceeds %d characters", ErrValidation, MaxLabelNameLen)
	}
	return nil
}

// CreateLabel adds a new label. Duplicate names are permitted.
func (s *Store) CreateLabel(name, color string) (models.Label, error) {
	if err := validateLabelName(name); err != nil {
		return models.Label{}, err
	}
	l := models.Label{ID: s.newID(), Name: name, Color: color}
	s.labels = append(s.labels, l)
	return l, nil
}

// RenameLabel updates a label's name and color in place
func (s *Store) RenameLabel(id, name, color string) (models.Label, error) {
	i := s.findLabel(id)
	if i < 0 {
		return models.Label{}, fmt.Errorf("%w: label %s", ErrNotFound, id)
	}
	if err := validateLabelName(name); err != nil {
		return models.Label{}, err
	}
	s.labels[i].Name = name
	s.labels[i].Color = color
	return s.labels[i], nil
}

// DeleteLabel removes a label and strips its id from every note. Both
// rewrites happen in this one synchronous call, so no caller can observe
// a half-applied cascade.
func (s *Store) DeleteLabel(id string) error {
	i := s.findLabel(id)
	if i < 0 {
		return fmt.Errorf("%w: label %s", ErrNotFound, id)
	}
	s.labels = append(s.labels[:i], s.labels[i+1:]...)

	for j := range s.notes {
		n := &s.notes[j]
		if !n.HasLabel(id) {
			continue
		}
		kept := n.LabelIDs[:0]
		for _, lid := range n.LabelIDs {
			if lid != id {
				kept = append(kept, lid)
			}
		}
		n.LabelIDs = kept
	}

	if s.labelFilter == id {
		s.labelFilter = ""
	}
	return nil
}

// Label returns the label with the given id
func (s *Store) Label(id string) (models.Label, error) {
	i := s.findLabel(id)
	if i < 0 {
		return models.Label{}, fmt.Errorf("%w: label %s", ErrNotFound, id)
	}
	return s.labels[i], nil
}

// ToggleLabel adds the label to the note if absent, removes it otherwise
func (s *Store) ToggleLabel(noteID, labelID string) (models.Note, error) {
	if s.findLabel(labelID) < 0 {
		return models.Note{}, fmt.Errorf("%w: label %s", ErrNotFound, labelID)
	}
	i := s.findNote(noteID)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, noteID)
	}

	n := &s.notes[i]
	if n.HasLabel(labelID) {
		kept := n.LabelIDs[:0]
		for _, lid := range n.LabelIDs {
			if lid != labelID {
				kept = append(kept, lid)
			}
		}
		n.LabelIDs = kept
	} else {
		n.LabelIDs = append(n.LabelIDs, labelID)
	}
	n.UpdatedAt = s.now()
	return n.Clone(), nil
}
