package store

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/tgienger/keep/internal/models"
)

// Field bounds, counted in code points
const (
	MaxTitleLen     = 200
	MaxContentLen   = 10000
	MaxLabelNameLen = 50
)

// Store owns the note and label collections plus the active view state.
// All mutation goes through its methods so the status invariants are
// re-established on every write; callers only ever see copies.
type Store struct {
	notes  []models.Note // slice order is the global note order
	labels []models.Label

	view        models.View
	labelFilter string // "" = no filter

	now   func() time.Time
	newID func() string
}

// New creates an empty store
func New() *Store {
	return &Store{
		view:  models.ViewNotes,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Draft carries the editable fields for creating or updating a note
type Draft struct {
	Title    string
	Content  string
	Type     models.NoteType
	Items    []models.NoteItem
	Color    string
	LabelIDs []string
	Image    []byte
	Reminder *time.Time
}

func (s *Store) validateDraft(d Draft) error {
	if utf8.RuneCountInString(d.Title) > MaxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrValidation, MaxTitleLen)
	}
	if utf8.RuneCountInString(d.Content) > MaxContentLen {
		return fmt.Errorf("%w: content exceeds %d characters", ErrValidation, MaxContentLen)
	}
	if d.Type != "" && d.Type != models.TypeText && d.Type != models.TypeList {
		return fmt.Errorf("%w: unknown note type %q", ErrValidation, d.Type)
	}
	for _, id := range d.LabelIDs {
		if s.findLabel(id) < 0 {
			return fmt.Errorf("%w: label %s", ErrNotFound, id)
		}
	}
	return nil
}

// CreateNote validates the draft and prepends a new note to the collection.
// Defaults: type text, all status flags false.
func (s *Store) CreateNote(d Draft) (models.Note, error) {
	if err := s.validateDraft(d); err != nil {
		return models.Note{}, err
	}

	noteType := d.Type
	if noteType == "" {
		noteType = models.TypeText
	}

	now := s.now()
	n := models.Note{
		ID:        s.newID(),
		Title:     d.Title,
		Content:   d.Content,
		Type:      noteType,
		Items:     cloneItems(d.Items),
		Color:     d.Color,
		LabelIDs:  cloneStrings(d.LabelIDs),
		Image:     cloneBytes(d.Image),
		Reminder:  cloneTime(d.Reminder),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// New notes go on top, like the reference UI
	s.notes = append([]models.Note{n}, s.notes...)
	return n.Clone(), nil
}

// UpdateNote replaces the editable fields of a note wholesale. Status flags
// and creation time are untouched; UpdatedAt is refreshed.
func (s *Store) UpdateNote(id string, d Draft) (models.Note, error) {
	i := s.findNote(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	if err := s.validateDraft(d); err != nil {
		return models.Note{}, err
	}

	noteType := d.Type
	if noteType == "" {
		noteType = models.TypeText
	}

	n := &s.notes[i]
	n.Title = d.Title
	n.Content = d.Content
	n.Type = noteType
	n.Items = cloneItems(d.Items)
	n.Color = d.Color
	n.LabelIDs = cloneStrings(d.LabelIDs)
	n.Image = cloneBytes(d.Image)
	n.Reminder = cloneTime(d.Reminder)
	n.UpdatedAt = s.now()
	return n.Clone(), nil
}

// Note returns a copy of the note with the given id
func (s *Store) Note(id string) (models.Note, error) {
	i := s.findNote(id)
	if i < 0 {
		return models.Note{}, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	return s.notes[i].Clone(), nil
}

// Notes returns a copy of every note in global order
func (s *Store) Notes() []models.Note {
	out := make([]models.Note, len(s.notes))
	for i := range s.notes {
		out[i] = s.notes[i].Clone()
	}
	return out
}

// Labels returns a copy of every label in creation order
func (s *Store) Labels() []models.Label {
	out := make([]models.Label, len(s.labels))
	copy(out, s.labels)
	return out
}

func (s *Store) findNote(id string) int {
	for i := range s.notes {
		if s.notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) findLabel(id string) int {
	for i := range s.labels {
		if s.labels[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneItems(items []models.NoteItem) []models.NoteItem {
	if items == nil {
		return nil
	}
	out := make([]models.NoteItem, len(items))
	copy(out, items)
	return out
}

func cloneStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
