package core

// Selection holds at most one pending target awaiting resolution.
type Selection struct {
	target  HexCoord
	pending bool
}

// Set records h as the pending target, replacing any earlier one
func (s *Selection) Set(h HexCoord) {
	s.target = h
	s.pending = true
}

// Pending returns the pending target without consuming it
func (s *Selection) Pending() (HexCoord, bool) {
	return s.target, s.pending
}

// Take returns the pending target and clears the selection
func (s *Selection) Take() (HexCoord, bool) {
	h, ok := s.target, s.pending
	s.Clear()
	return h, ok
}

// Clear drops any pending target
func (s *Selection) Clear() {
	s.target = HexCoord{}
	s.pending = false
}

// IsEmpty reports whether no target is pending
func (s *Selection) IsEmpty() bool {
	return !s.pending
}
