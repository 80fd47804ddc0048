package models

import "time"

// NoteType distinguishes free-text notes from checklists
type NoteType string

const (
	TypeText NoteType = "text"
	TypeList NoteType = "list"
)

// View is one of the four top-level note filters
type View string

const (
	ViewNotes     View = "notes"
	ViewReminders View = "reminders"
	ViewArchive   View = "archive"
	ViewTrash     View = "trash"
)

// Valid reports whether v is one of the known views
func (v View) Valid() bool {
	switch v {
	case ViewNotes, ViewReminders, ViewArchive, ViewTrash:
		return true
	}
	return false
}

// NoteItem is a single checklist entry within a list note
type NoteItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// Label is a user-defined tag attachable to notes by id
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Note is a single text or checklist note
type Note struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	Type     NoteType   `json:"type"`
	Items    []NoteItem `json:"items,omitempty"`
	Color    string     `json:"color,omitempty"` // "" means the default background
	LabelIDs []string   `json:"labelIds,omitempty"`
	Image    []byte     `json:"image,omitempty"`
	Reminder *time.Time `json:"reminder,omitempty"`

	Pinned   bool `json:"pinned"`
	Archived bool `json:"archived"`
	Trashed  bool `json:"trashed"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasLabel reports whether the note carries the given label id
func (n *Note) HasLabel(labelID string) bool {
	for _, id := range n.LabelIDs {
		if id == labelID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never hold a mutable handle
// into the store's collections
func (n *Note) Clone() Note {
	c := *n
	if n.Items != nil {
		c.Items = make([]NoteItem, len(n.Items))
		copy(c.Items, n.Items)
	}
	if n.LabelIDs != nil {
		c.LabelIDs = make([]string, len(n.LabelIDs))
		copy(c.LabelIDs, n.LabelIDs)
	}
	if n.Image != nil {
		c.Image = make([]byte, len(n.Image))
		copy(c.Image, n.Image)
	}
	if n.Reminder != nil {
		r := *n.Reminder
		c.Reminder = &r
	}
	return c
}
