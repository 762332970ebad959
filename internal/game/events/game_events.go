package events

import (
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted  = "game.started"
	TypeHexSelected  = "hex.selected"
	TypeUnitMoved    = "unit.moved"
	TypeMoveRejected = "move.rejected"
	TypeUnitSpawned  = "unit.spawned"
	TypeLayoutChange = "layout.changed"
	TypePhaseChanged = "phase.changed"
)

// GameStartedEvent is published once the board and units exist
type GameStartedEvent struct {
	BaseEvent
	TileCount int `json:"tile_count"`
	UnitCount int `json:"unit_count"`
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string, tileCount, unitCount int) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: newBase(TypeGameStarted, gameID, 0),
		TileCount: tileCount,
		UnitCount: unitCount,
	}
}

// UnitSpawnedEvent is published when a unit is created
type UnitSpawnedEvent struct {
	BaseEvent
	UnitID string        `json:"unit_id"`
	Pos    core.HexCoord `json:"pos"`
	Tags   string        `json:"tags"`
}

// NewUnitSpawnedEvent creates a new UnitSpawnedEvent
func NewUnitSpawnedEvent(gameID string, unit core.Unit) *UnitSpawnedEvent {
	return &UnitSpawnedEvent{
		BaseEvent: newBase(TypeUnitSpawned, gameID, 0),
		UnitID:    unit.ID.String(),
		Pos:       unit.Pos,
		Tags:      unit.Tags.String(),
	}
}

// HexSelectedEvent is published when a click resolves to a hex
type HexSelectedEvent struct {
	BaseEvent
	Pixel   core.Point    `json:"pixel"`
	Target  core.HexCoord `json:"target"`
	OnBoard bool          `json:"on_board"`
}

// NewHexSelectedEvent creates a new HexSelectedEvent
func NewHexSelectedEvent(gameID string, tick uint64, pixel core.Point, target core.HexCoord, onBoard bool) *HexSelectedEvent {
	return &HexSelectedEvent{
		BaseEvent: newBase(TypeHexSelected, gameID, tick),
		Pixel:     pixel,
		Target:    target,
		OnBoard:   onBoard,
	}
}

// UnitMovedEvent is published for each unit relocated by a movement step
type UnitMovedEvent struct {
	BaseEvent
	UnitID string        `json:"unit_id"`
	From   core.HexCoord `json:"from"`
	To     core.HexCoord `json:"to"`
}

// NewUnitMovedEvent creates a new UnitMovedEvent
func NewUnitMovedEvent(gameID string, tick uint64, unitID core.EntityID, from, to core.HexCoord) *UnitMovedEvent {
	return &UnitMovedEvent{
		BaseEvent: newBase(TypeUnitMoved, gameID, tick),
		UnitID:    unitID.String(),
		From:      from,
		To:        to,
	}
}

// MoveRejectedEvent is published when the pending target is not on the board
type MoveRejectedEvent struct {
	BaseEvent
	Target core.HexCoord `json:"target"`
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, tick uint64, target core.HexCoord) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: newBase(TypeMoveRejected, gameID, tick),
		Target:    target,
	}
}

// LayoutChangedEvent is published when the hex size or viewport changes
type LayoutChangedEvent struct {
	BaseEvent
	Size   float64    `json:"size"`
	Origin core.Point `json:"origin"`
}

// NewLayoutChangedEvent creates a new LayoutChangedEvent
func NewLayoutChangedEvent(gameID string, tick uint64, layout core.Layout) *LayoutChangedEvent {
	return &LayoutChangedEvent{
		BaseEvent: newBase(TypeLayoutChange, gameID, tick),
		Size:      layout.Size,
		Origin:    layout.Origin,
	}
}

// PhaseChangedEvent is published on every engine lifecycle transition
type PhaseChangedEvent struct {
	BaseEvent
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// NewPhaseChangedEvent creates a new PhaseChangedEvent
func NewPhaseChangedEvent(gameID string, from, to, reason string) *PhaseChangedEvent {
	return &PhaseChangedEvent{
		BaseEvent: newBase(TypePhaseChanged, gameID, 0),
		From:      from,
		To:        to,
		Reason:    reason,
	}
}
