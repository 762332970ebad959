package core

import (
	"fmt"
	"math"
)

var sqrt3 = math.Sqrt(3)

// Point is a position in screen space
type Point struct {
	X, Y float64
}

// String returns a string representation of the point
func (p Point) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", p.X, p.Y)
}

// Layout maps pointy-top hexes to screen space.
// Size is the corner-to-center radius, Origin is the screen position of (0,0).
type Layout struct {
	Size   float64
	Origin Point
}

// NewLayout returns a layout with the grid centered in a viewport of the given size
func NewLayout(size float64, viewportWidth, viewportHeight int) Layout {
	return Layout{
		Size:   size,
		Origin: Point{X: float64(viewportWidth) / 2, Y: float64(viewportHeight) / 2},
	}
}

// HexToPixel returns the screen-space center of a hex
func (l Layout) HexToPixel(h HexCoord) Point {
	q, r := float64(h.Q), float64(h.R)
	return Point{
		X: l.Size*(sqrt3*q+sqrt3/2*r) + l.Origin.X,
		Y: l.Size*(1.5*r) + l.Origin.Y,
	}
}

// PixelToHex returns the hex containing the given screen point.
// Points that fall outside any board still resolve to the nearest hex.
func (l Layout) PixelToHex(p Point) HexCoord {
	px := p.X - l.Origin.X
	py := p.Y - l.Origin.Y

	qf := (sqrt3/3*px - 1.0/3*py) / l.Size
	rf := (2.0 / 3 * py) / l.Size

	return AxialRound(qf, rf)
}

// Corners returns the six polygon vertices of a hex, starting at 30 degrees
// and going clockwise in screen space.
func (l Layout) Corners(h HexCoord) [6]Point {
	center := l.HexToPixel(h)
	var corners [6]Point
	for i := range corners {
		angle := math.Pi / 3 * (float64(i) + 0.5)
		corners[i] = Point{
			X: center.X + l.Size*math.Cos(angle),
			Y: center.Y + l.Size*math.Sin(angle),
		}
	}
	return corners
}

// AxialRound rounds fractional axial coordinates to the nearest hex.
//
// q, r and s are rounded independently and the component with the largest
// rounding error is recomputed from the other two so that q+r+s == 0 holds.
// Ties resolve in the order q, then r, then s: q is only recomputed when its
// error is strictly greater than both others, r when strictly greater than s.
func AxialRound(qf, rf float64) HexCoord {
	sf := -qf - rf

	q := math.Round(qf)
	r := math.Round(rf)
	s := math.Round(sf)

	dq := math.Abs(q - qf)
	dr := math.Abs(r - rf)
	ds := math.Abs(s - sf)

	if dq > dr && dq > ds {
		q = -r - s
	} else if dr > ds {
		r = -q - s
	}

	return HexCoord{Q: int(q), R: int(r)}
}
