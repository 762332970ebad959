package game

import (
	"fmt"
	"strings"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
)

// This file contains the text rendering of the board used by the headless
// simulator and by tests.

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Board symbols
const (
	TileSymbol    = "·"
	UnitSymbol    = "@"
	PendingSymbol = "*"
)

// Board returns a plain text picture of the board. Rows are r from top to
// bottom and each row is shifted half a cell per r, so neighbors line up the
// way they do on screen.
func (e *Engine) Board() string {
	return e.renderBoard(false)
}

// ColoredBoard is Board with ANSI colors
func (e *Engine) ColoredBoard() string {
	return e.renderBoard(true)
}

func (e *Engine) renderBoard(colored bool) string {
	tiles := e.gs.Board.Tiles()
	if len(tiles) == 0 {
		return "(empty board)\n"
	}

	occupied := make(map[core.HexCoord]bool)
	for _, u := range e.gs.Units.All() {
		occupied[u.Pos] = true
	}
	pending, hasPending := e.PendingSelection()

	// Column of a tile is 2q+r, which is proportional to its pixel x.
	minX, maxX := columnOf(tiles[0]), columnOf(tiles[0])
	for _, t := range tiles[1:] {
		minX = min(minX, columnOf(t))
		maxX = max(maxX, columnOf(t))
	}
	_, _, minR, maxR, _ := e.gs.Board.Bounds()

	grid := make([][]string, maxR-minR+1)
	for i := range grid {
		grid[i] = make([]string, maxX-minX+1)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	paint := func(symbol, color string) string {
		if !colored {
			return symbol
		}
		return color + symbol + ColorReset
	}

	for _, t := range tiles {
		var cell string
		switch {
		case occupied[t]:
			cell = paint(UnitSymbol, ColorGreen)
		case hasPending && t == pending:
			cell = paint(PendingSymbol, ColorYellow)
		default:
			cell = paint(TileSymbol, ColorCyan)
		}
		grid[t.R-minR][columnOf(t)-minX] = cell
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("tick %d  player %s\n", e.gs.Tick, e.PlayerPosition()))
	for _, row := range grid {
		sb.WriteString(strings.TrimRight(strings.Join(row, ""), " "))
		sb.WriteString("\n")
	}
	if hasPending && !e.gs.Board.Contains(pending) {
		sb.WriteString(paint(fmt.Sprintf("pending %s is off the board\n", pending), ColorGray))
	}

	return sb.String()
}

func columnOf(h core.HexCoord) int {
	return 2*h.Q + h.R
}
