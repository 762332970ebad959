package core

import (
	"fmt"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/common"
)

// HexCoord represents a tile on the hex grid in axial coordinates.
// The third cube coordinate s = -q - r is derived and never stored.
type HexCoord struct {
	Q, R int
}

// NewHexCoord creates a new axial coordinate
func NewHexCoord(q, r int) HexCoord {
	return HexCoord{Q: q, R: r}
}

// S returns the implicit third cube coordinate
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add returns the sum of this coordinate and another
func (h HexCoord) Add(other HexCoord) HexCoord {
	return HexCoord{Q: h.Q + other.Q, R: h.R + other.R}
}

// Sub returns the difference between this coordinate and another
func (h HexCoord) Sub(other HexCoord) HexCoord {
	return HexCoord{Q: h.Q - other.Q, R: h.R - other.R}
}

// Scale multiplies the coordinate by k
func (h HexCoord) Scale(k int) HexCoord {
	return HexCoord{Q: h.Q * k, R: h.R * k}
}

// Equal checks if two coordinates are equal
func (h HexCoord) Equal(other HexCoord) bool {
	return h.Q == other.Q && h.R == other.R
}

// String returns a string representation of the coordinate
func (h HexCoord) String() string {
	return fmt.Sprintf("(%d,%d)", h.Q, h.R)
}

// HexDirections are the six axial neighbor offsets, starting east and
// going counter-clockwise.
var HexDirections = [6]HexCoord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Neighbors returns the six adjacent coordinates
func (h HexCoord) Neighbors() [6]HexCoord {
	var out [6]HexCoord
	for i, d := range HexDirections {
		out[i] = h.Add(d)
	}
	return out
}

// Distance returns the hex distance to another coordinate
func (h HexCoord) Distance(other HexCoord) int {
	d := h.Sub(other)
	dq, dr, ds := common.Abs(d.Q), common.Abs(d.R), common.Abs(d.S())
	if dq >= dr && dq >= ds {
		return dq
	}
	if dr >= ds {
		return dr
	}
	return ds
}
