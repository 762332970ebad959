package game

import "github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"

// GameState is everything the movement step reads and writes
type GameState struct {
	Tick      uint64
	Board     *core.Board
	Selection core.Selection
	Units     *core.UnitStore
	PlayerID  core.EntityID
}

// TileCenter pairs a board tile with its pixel center
type TileCenter struct {
	Hex    core.HexCoord
	Center core.Point
}

// UnitView is a unit with its on-screen position
type UnitView struct {
	ID     core.EntityID
	Hex    core.HexCoord
	Center core.Point
	Tags   core.Tag
}
