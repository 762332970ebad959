package core

import "sort"

// Board is the set of tiles available for selection and movement.
type Board struct {
	available map[HexCoord]struct{}
}

// NewBoard returns a board containing the given tiles
func NewBoard(tiles ...HexCoord) *Board {
	b := &Board{available: make(map[HexCoord]struct{}, len(tiles))}
	for _, t := range tiles {
		b.available[t] = struct{}{}
	}
	return b
}

// Contains reports whether h is an available tile
func (b *Board) Contains(h HexCoord) bool {
	if b == nil {
		return false
	}
	_, ok := b.available[h]
	return ok
}

// Add marks h as available. Returns false if it already was.
func (b *Board) Add(h HexCoord) bool {
	if b.available == nil {
		b.available = make(map[HexCoord]struct{})
	}
	if _, ok := b.available[h]; ok {
		return false
	}
	b.available[h] = struct{}{}
	return true
}

// Remove drops h from the board. Returns false if it was not present.
func (b *Board) Remove(h HexCoord) bool {
	if _, ok := b.available[h]; !ok {
		return false
	}
	delete(b.available, h)
	return true
}

// Len returns the number of available tiles
func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	return len(b.available)
}

// Tiles returns all available tiles ordered by row, then column
func (b *Board) Tiles() []HexCoord {
	if b == nil {
		return nil
	}
	tiles := make([]HexCoord, 0, len(b.available))
	for t := range b.available {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].R != tiles[j].R {
			return tiles[i].R < tiles[j].R
		}
		return tiles[i].Q < tiles[j].Q
	})
	return tiles
}

// Bounds returns the min and max q and r over all tiles.
// ok is false for an empty board.
func (b *Board) Bounds() (minQ, maxQ, minR, maxR int, ok bool) {
	if b == nil {
		return 0, 0, 0, 0, false
	}
	first := true
	for t := range b.available {
		if first {
			minQ, maxQ, minR, maxR = t.Q, t.Q, t.R, t.R
			first = false
			continue
		}
		minQ = min(minQ, t.Q)
		maxQ = max(maxQ, t.Q)
		minR = min(minR, t.R)
		maxR = max(maxR, t.R)
	}
	return minQ, maxQ, minR, maxR, !first
}
