package common

import (
	"image/color"
)

// Fallback colors used when nothing is configured
var (
	TileColor       = color.RGBA{100, 200, 255, 255}
	HoverColor      = color.RGBA{255, 255, 255, 255}
	UnitColor       = color.RGBA{144, 238, 144, 255}
	BackgroundColor = color.RGBA{27, 27, 27, 255}
	LabelColor      = color.RGBA{160, 160, 160, 255}
)

// RGB converts a configured [r, g, b] triple to an opaque color, clamping
// each component to 0..255.
func RGB(c [3]int) color.RGBA {
	return color.RGBA{
		R: uint8(Clamp(c[0], 0, 255)),
		G: uint8(Clamp(c[1], 0, 255)),
		B: uint8(Clamp(c[2], 0, 255)),
		A: 255,
	}
}

// WithAlpha returns c with its alpha replaced. Components are premultiplied
// the way ebiten expects.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(int(v) * int(a) / 255)
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
