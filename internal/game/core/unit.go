package core

import (
	"strings"

	"github.com/google/uuid"
)

// EntityID is an opaque unit identifier
type EntityID = uuid.UUID

// Tag is a bitmask of unit roles
type Tag uint8

const (
	// TagPlayer marks the player-controlled unit
	TagPlayer Tag = 1 << iota
	// TagMovable marks units the movement step may relocate
	TagMovable
)

// Has reports whether all bits of other are set
func (t Tag) Has(other Tag) bool {
	return t&other == other
}

func (t Tag) String() string {
	var parts []string
	if t.Has(TagPlayer) {
		parts = append(parts, "player")
	}
	if t.Has(TagMovable) {
		parts = append(parts, "movable")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Unit is a piece on the board
type Unit struct {
	ID   EntityID
	Pos  HexCoord
	Tags Tag
}

// UnitStore owns all units. Units are kept in spawn order and never destroyed.
type UnitStore struct {
	units []Unit
	index map[EntityID]int
}

// NewUnitStore returns an empty store
func NewUnitStore() *UnitStore {
	return &UnitStore{index: make(map[EntityID]int)}
}

// Spawn creates a unit at pos and returns its ID
func (s *UnitStore) Spawn(pos HexCoord, tags Tag) EntityID {
	id := uuid.New()
	s.index[id] = len(s.units)
	s.units = append(s.units, Unit{ID: id, Pos: pos, Tags: tags})
	return id
}

// Get returns a copy of the unit with the given ID
func (s *UnitStore) Get(id EntityID) (Unit, bool) {
	i, ok := s.index[id]
	if !ok {
		return Unit{}, false
	}
	return s.units[i], true
}

// Len returns the number of units
func (s *UnitStore) Len() int {
	return len(s.units)
}

// All returns a copy of every unit in spawn order
func (s *UnitStore) All() []Unit {
	out := make([]Unit, len(s.units))
	copy(out, s.units)
	return out
}

// Query returns the units carrying all of the given tags
func (s *UnitStore) Query(tags Tag) []Unit {
	var out []Unit
	for _, u := range s.units {
		if u.Tags.Has(tags) {
			out = append(out, u)
		}
	}
	return out
}

// SetPosition moves a unit. Returns false for an unknown ID.
func (s *UnitStore) SetPosition(id EntityID, pos HexCoord) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.units[i].Pos = pos
	return true
}

// relocate moves every unit carrying tags to pos and returns their IDs
func (s *UnitStore) relocate(tags Tag, pos HexCoord) []EntityID {
	var moved []EntityID
	for i := range s.units {
		if s.units[i].Tags.Has(tags) {
			s.units[i].Pos = pos
			moved = append(moved, s.units[i].ID)
		}
	}
	return moved
}
