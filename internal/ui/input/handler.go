package input

import (
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
)

// Key names the keyboard actions the game listens for
type Key int

const (
	// KeyPause toggles between running and paused
	KeyPause Key = iota
	// KeyLabels toggles coordinate labels
	KeyLabels
	// KeyQuit ends the game
	KeyQuit
)

// PointerSource reports raw pointer and keyboard state for the current frame
type PointerSource interface {
	CursorPosition() (int, int)
	LeftJustPressed() bool
	KeyJustPressed(k Key) bool
}

// Frame is the input gathered during one update
type Frame struct {
	Hover    core.Point
	Click    core.Point
	HasClick bool

	TogglePause  bool
	ToggleLabels bool
	Quit         bool
}

// Handler turns a PointerSource into per-frame input
type Handler struct {
	source PointerSource
	hover  core.Point
	clicks uint64
}

// NewHandler creates a handler reading from source
func NewHandler(source PointerSource) *Handler {
	return &Handler{source: source}
}

// Poll reads the source once. At most one click is reported per frame.
func (h *Handler) Poll() Frame {
	x, y := h.source.CursorPosition()
	h.hover = core.Point{X: float64(x), Y: float64(y)}

	f := Frame{
		Hover:        h.hover,
		TogglePause:  h.source.KeyJustPressed(KeyPause),
		ToggleLabels: h.source.KeyJustPressed(KeyLabels),
		Quit:         h.source.KeyJustPressed(KeyQuit),
	}
	if h.source.LeftJustPressed() {
		f.Click = h.hover
		f.HasClick = true
		h.clicks++
	}
	return f
}

// Hover returns the cursor position seen by the last Poll
func (h *Handler) Hover() core.Point {
	return h.hover
}

// Clicks returns the number of clicks seen so far
func (h *Handler) Clicks() uint64 {
	return h.clicks
}
