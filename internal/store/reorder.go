package store

// Reorder moves the note identified by sourceID to the position currently
// held by targetID, shifting the notes between them by one slot. This is a
// single-element move over the global order, not a swap.
//
// No-ops: source equals target, either id is absent, or the two notes sit
// in different pin partitions (the UI only ever drags within one partition,
// but a stale request must not corrupt the order).
func (s *Store) Reorder(sourceID, targetID string) {
	if sourceID == targetID {
		return
	}
	src := s.findNote(sourceID)
	dst := s.findNote(targetID)
	if src < 0 || dst < 0 {
		return
	}
	if s.notes[src].Pinned != s.notes[dst].Pinned {
		return
	}

	n := s.notes[src]
	if src < dst {
		copy(s.notes[src:dst], s.notes[src+1:dst+1])
	} else {
		copy(s.notes[dst+1:src+1], s.notes[dst:src])
	}
	s.notes[dst] = n
}
