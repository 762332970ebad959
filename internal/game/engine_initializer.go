package game

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/mapgen"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/states"
)

// EngineInitializer handles the multi-step construction of an engine
type EngineInitializer struct {
	config GameConfig
	logger zerolog.Logger
}

// NewEngineInitializer creates a new engine initializer
func NewEngineInitializer(cfg GameConfig) *EngineInitializer {
	logger := cfg.Logger.With().Str("component", "GameEngine").Logger()
	return &EngineInitializer{
		config: cfg,
		logger: logger,
	}
}

// Initialize creates and initializes a new game engine
func (ei *EngineInitializer) Initialize(ctx context.Context) (*Engine, error) {
	select {
	case <-ctx.Done():
		ei.logger.Error().Err(ctx.Err()).Msg("Engine creation cancelled before it started")
		return nil, ctx.Err()
	default:
	}

	if err := ei.setupDefaults(); err != nil {
		return nil, err
	}

	board, err := mapgen.NewGenerator(ei.config.Board).GenerateBoard()
	if err != nil {
		return nil, fmt.Errorf("board generation failed: %w", err)
	}
	if board.Len() == 0 {
		return nil, fmt.Errorf("board generation failed: %w", core.ErrEmptyBoard)
	}
	if !board.Contains(ei.config.Start) {
		return nil, fmt.Errorf("start %s: %w", ei.config.Start, core.ErrStartOffBoard)
	}

	engine := ei.createEngine(board)
	ei.spawnPlayer(engine)

	engine.eventBus.Publish(events.NewGameStartedEvent(
		engine.gameID,
		board.Len(),
		engine.gs.Units.Len(),
	))

	if err := engine.stateMachine.TransitionTo(states.PhaseRunning, "Engine initialized"); err != nil {
		return nil, fmt.Errorf("state machine initialization failed: %w", err)
	}

	ei.logger.Info().
		Str("game_id", engine.gameID).
		Str("shape", ei.config.Board.Shape).
		Int("tiles", board.Len()).
		Stringer("start", ei.config.Start).
		Float64("hex_size", ei.config.Layout.Size).
		Msg("Engine created successfully")

	return engine, nil
}

// setupDefaults fills in unset configuration and rejects unusable values
func (ei *EngineInitializer) setupDefaults() error {
	if ei.config.GameID == "" {
		ei.config.GameID = uuid.NewString()
	}

	if ei.config.Board == (mapgen.BoardConfig{}) {
		ei.config.Board = mapgen.DefaultBoardConfig()
	}

	if ei.config.Layout == (core.Layout{}) {
		ei.logger.Debug().Msg("No layout provided, using default viewport")
		ei.config.Layout = DefaultLayout()
	}
	if ei.config.Layout.Size <= 0 {
		return fmt.Errorf("layout size %v: %w", ei.config.Layout.Size, core.ErrInvalidHexSize)
	}

	if ei.config.EventBus == nil {
		ei.config.EventBus = events.NewEventBusWithLogger(ei.logger)
	}
	return nil
}

// createEngine wires the engine's components around the generated board
func (ei *EngineInitializer) createEngine(board *core.Board) *Engine {
	return &Engine{
		gs: &GameState{
			Board: board,
			Units: core.NewUnitStore(),
		},
		layout:       ei.config.Layout,
		logger:       ei.logger,
		eventBus:     ei.config.EventBus,
		gameID:       ei.config.GameID,
		stateMachine: states.NewStateMachine(ei.config.GameID, ei.config.EventBus, ei.logger),
	}
}

// spawnPlayer places the single controlled unit at the start tile
func (ei *EngineInitializer) spawnPlayer(engine *Engine) {
	id := engine.gs.Units.Spawn(ei.config.Start, core.TagPlayer|core.TagMovable)
	engine.gs.PlayerID = id

	unit, _ := engine.gs.Units.Get(id)
	engine.eventBus.Publish(events.NewUnitSpawnedEvent(engine.gameID, unit))
}
