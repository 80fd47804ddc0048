package store

import (
	"encoding/json"
	"fmt"

	"github.com/tgienger/keep/internal/models"
)

// SnapshotVersion is bumped whenever the persisted document shape changes
const SnapshotVersion = 1

type snapshot struct {
	Version int            `json:"version"`
	Notes   []models.Note  `json:"notes"`
	Labels  []models.Label `json:"labels"`
}

// Snapshot serializes the full collection state as a versioned JSON
// document. Timestamps marshal as RFC3339 strings.
func (s *Store) Snapshot() ([]byte, error) {
	return json.Marshal(snapshot{
		Version: SnapshotVersion,
		Notes:   s.notes,
		Labels:  s.labels,
	})
}

// RestoreSnapshot replaces the collection state with the contents of a
// previously written snapshot. Empty, corrupt, or wrong-version input
// yields an empty state instead of an error, so a damaged database never
// blocks startup. Timestamps come back as true time.Time values because
// the snapshot round-trips through the typed models.
func (s *Store) RestoreSnapshot(data []byte) {
	s.notes = nil
	s.labels = nil
	if len(data) == 0 {
		return
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return
	}
	if snap.Version != SnapshotVersion {
		return
	}
	s.notes = snap.Notes
	s.labels = snap.Labels
}

// ExportNotes renders every note as a pretty-printed JSON array suitable
// for backup files
func (s *Store) ExportNotes() ([]byte, error) {
	notes := s.notes
	if notes == nil {
		notes = []models.Note{}
	}
	return json.MarshalIndent(notes, "", "  ")
}

// ImportNotes merges a previously exported JSON array into the collection.
// The payload is validated in full before anything is merged: it must be a
// JSON array and every element must carry an id and a known type. Imported
// notes are appended in order; an id that collides with an existing note
// gets a fresh one so both copies survive.
func (s *Store) ImportNotes(data []byte) (int, error) {
	var notes []models.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	for i, n := range notes {
		if n.ID == "" {
			return 0, fmt.Errorf("%w: element %d has no id", ErrMalformedImport, i)
		}
		if n.Type != models.TypeText && n.Type != models.TypeList {
			return 0, fmt.Errorf("%w: element %d has unknown type %q", ErrMalformedImport, i, n.Type)
		}
	}

	for i := range notes {
		if s.findNote(notes[i].ID) >= 0 {
			notes[i].ID = s.newID()
		}
		// Imported notes may reference labels from another installation
		if len(notes[i].LabelIDs) > 0 {
			kept := notes[i].LabelIDs[:0]
			for _, lid := range notes[i].LabelIDs {
				if s.findLabel(lid) >= 0 {
					kept = append(kept, lid)
				}
			}
			notes[i].LabelIDs = kept
		}
		s.notes = append(s.notes, notes[i])
	}
	return len(notes), nil
}
