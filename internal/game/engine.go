package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/mapgen"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/states"
)

// GameConfig holds everything needed to start a game
type GameConfig struct {
	Board  mapgen.BoardConfig
	Start  core.HexCoord
	Layout core.Layout
	Logger zerolog.Logger
	GameID string

	// EventBus receives every game event. A private bus is created when nil.
	EventBus *events.EventBus
}

// Engine owns the board, the pending selection and the units, and advances
// them one tick at a time. It is not safe for concurrent use; callers drive
// it from a single loop.
type Engine struct {
	gs           *GameState
	layout       core.Layout
	logger       zerolog.Logger
	eventBus     *events.EventBus
	gameID       string
	stateMachine *states.StateMachine
	stats        Stats
}

// NewEngine creates a running engine from cfg
func NewEngine(ctx context.Context, cfg GameConfig) (*Engine, error) {
	return NewEngineInitializer(cfg).Initialize(ctx)
}

// SelectPixel converts a click position to a hex and records it as the
// pending selection. Off-board hexes are recorded too; the next Step
// rejects them.
func (e *Engine) SelectPixel(p core.Point) core.HexCoord {
	h := e.layout.PixelToHex(p)
	e.record(h, p)
	return h
}

// Select records h as the pending selection
func (e *Engine) Select(h core.HexCoord) {
	e.record(h, e.layout.HexToPixel(h))
}

func (e *Engine) record(h core.HexCoord, p core.Point) {
	if e.stateMachine.CurrentPhase().IsTerminal() {
		return
	}
	e.gs.Selection.Set(h)
	e.stats.Selections++

	onBoard := e.gs.Board.Contains(h)
	e.logger.Debug().
		Stringer("pixel", p).
		Stringer("hex", h).
		Bool("on_board", onBoard).
		Msg("Hex selected")
	e.eventBus.Publish(events.NewHexSelectedEvent(e.gameID, e.gs.Tick, p, h, onBoard))
}

// Step advances the game by one tick. While paused the tick counter still
// advances but the pending selection is kept for the first running tick.
func (e *Engine) Step(ctx context.Context) (core.MoveResult, error) {
	select {
	case <-ctx.Done():
		return core.MoveResult{}, ctx.Err()
	default:
	}

	phase := e.stateMachine.CurrentPhase()
	if phase.IsTerminal() {
		return core.MoveResult{}, core.ErrGameEnded
	}

	e.gs.Tick++
	e.stats.Ticks++

	if !phase.ResolvesMovement() {
		return core.MoveResult{Outcome: core.MoveNone}, nil
	}

	from := make(map[core.EntityID]core.HexCoord)
	for _, u := range e.gs.Units.Query(core.TagMovable) {
		from[u.ID] = u.Pos
	}

	result := core.ResolveMovement(&e.gs.Selection, e.gs.Board, e.gs.Units)
	e.stats.record(e.gs.Tick, result)

	switch result.Outcome {
	case core.MoveApplied:
		for _, id := range result.Moved {
			e.eventBus.Publish(events.NewUnitMovedEvent(e.gameID, e.gs.Tick, id, from[id], result.Target))
		}
		e.logger.Debug().
			Uint64("tick", e.gs.Tick).
			Stringer("target", result.Target).
			Int("moved", len(result.Moved)).
			Msg("Units moved")
	case core.MoveRejected:
		e.eventBus.Publish(events.NewMoveRejectedEvent(e.gameID, e.gs.Tick, result.Target))
		e.logger.Debug().
			Uint64("tick", e.gs.Tick).
			Stringer("target", result.Target).
			Msg("Move target not on board")
	}

	return result, nil
}

// Pause stops movement resolution until Resume
func (e *Engine) Pause() error {
	return e.stateMachine.TransitionTo(states.PhasePaused, "Paused")
}

// Resume restarts movement resolution after Pause
func (e *Engine) Resume() error {
	return e.stateMachine.TransitionTo(states.PhaseRunning, "Resumed")
}

// TogglePause flips between running and paused
func (e *Engine) TogglePause() error {
	if e.stateMachine.CurrentPhase() == states.PhasePaused {
		return e.Resume()
	}
	return e.Pause()
}

// Stop ends the game. Further Steps return core.ErrGameEnded.
func (e *Engine) Stop(reason string) error {
	if e.stateMachine.CurrentPhase().IsTerminal() {
		return nil
	}
	e.logger.Info().
		Str("reason", reason).
		Uint64("ticks", e.stats.Ticks).
		Uint64("moves_applied", e.stats.MovesApplied).
		Uint64("moves_rejected", e.stats.MovesRejected).
		Msg("Game ended")
	return e.stateMachine.TransitionTo(states.PhaseEnded, reason)
}

// SetLayout replaces the hex-to-pixel transform, e.g. after a config reload
func (e *Engine) SetLayout(l core.Layout) error {
	if l.Size <= 0 {
		return fmt.Errorf("layout size %v: %w", l.Size, core.ErrInvalidHexSize)
	}
	if l == e.layout {
		return nil
	}
	e.layout = l
	e.eventBus.Publish(events.NewLayoutChangedEvent(e.gameID, e.gs.Tick, l))
	return nil
}

// TileCenters returns every tile with its pixel center, ordered by row
func (e *Engine) TileCenters() []TileCenter {
	tiles := e.gs.Board.Tiles()
	out := make([]TileCenter, len(tiles))
	for i, t := range tiles {
		out[i] = TileCenter{Hex: t, Center: e.layout.HexToPixel(t)}
	}
	return out
}

// UnitPositions returns every unit with its pixel position, in spawn order
func (e *Engine) UnitPositions() []UnitView {
	units := e.gs.Units.All()
	out := make([]UnitView, len(units))
	for i, u := range units {
		out[i] = UnitView{
			ID:     u.ID,
			Hex:    u.Pos,
			Center: e.layout.HexToPixel(u.Pos),
			Tags:   u.Tags,
		}
	}
	return out
}

// PendingSelection returns the selection the next Step will resolve, if any
func (e *Engine) PendingSelection() (core.HexCoord, bool) {
	return e.gs.Selection.Pending()
}

// PlayerPosition returns the hex the player unit stands on
func (e *Engine) PlayerPosition() core.HexCoord {
	u, _ := e.gs.Units.Get(e.gs.PlayerID)
	return u.Pos
}

// Public accessors
func (e *Engine) GameState() GameState       { return *e.gs }
func (e *Engine) Layout() core.Layout        { return e.layout }
func (e *Engine) Stats() Stats               { return e.stats }
func (e *Engine) GameID() string             { return e.gameID }
func (e *Engine) EventBus() *events.EventBus { return e.eventBus }
func (e *Engine) Phase() states.GamePhase    { return e.stateMachine.CurrentPhase() }
