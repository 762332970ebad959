package game

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/mapgen"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/states"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/testutil"
)

func newTestEngine(t *testing.T) (*Engine, *testutil.EventRecorder) {
	t.Helper()
	bus := testutil.NewTestBus()
	rec := testutil.NewEventRecorder(bus)
	e, err := NewEngine(context.Background(), GameConfig{
		Board:    mapgen.DefaultBoardConfig(),
		Logger:   testutil.NopLogger(),
		EventBus: bus,
		GameID:   "test-game",
	})
	require.NoError(t, err)
	return e, rec
}

func hasPending(e *Engine) bool {
	_, ok := e.PendingSelection()
	return ok
}

func TestNewEngine(t *testing.T) {
	e, rec := newTestEngine(t)

	gs := e.GameState()
	assert.Equal(t, 25, gs.Board.Len())
	assert.Equal(t, uint64(0), gs.Tick)
	assert.True(t, gs.Selection.IsEmpty())
	require.Equal(t, 1, gs.Units.Len())

	player, ok := gs.Units.Get(gs.PlayerID)
	require.True(t, ok)
	assert.Equal(t, core.HexCoord{}, player.Pos)
	assert.True(t, player.Tags.Has(core.TagPlayer|core.TagMovable))

	assert.Equal(t, states.PhaseRunning, e.Phase())
	assert.Equal(t, "test-game", e.GameID())
	assert.Equal(t, DefaultLayout(), e.Layout())
	assert.Equal(t, []string{
		events.TypeUnitSpawned,
		events.TypeGameStarted,
		events.TypePhaseChanged,
	}, rec.Types())
}

func TestNewEngineDefaults(t *testing.T) {
	e, err := NewEngine(context.Background(), GameConfig{Logger: testutil.NopLogger()})
	require.NoError(t, err)

	assert.NotEmpty(t, e.GameID())
	assert.NotNil(t, e.EventBus())
	assert.Equal(t, 25, e.GameState().Board.Len(), "unset board config means the default parallelogram")
	for q := -2; q <= 2; q++ {
		for r := -2; r <= 2; r++ {
			assert.True(t, e.GameState().Board.Contains(core.HexCoord{Q: q, R: r}), "(%d,%d)", q, r)
		}
	}

	e.Select(core.HexCoord{Q: 2, R: -1})
	result, err := e.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.MoveApplied, result.Outcome)
	assert.Equal(t, core.HexCoord{Q: 2, R: -1}, e.PlayerPosition())
}

func TestNewEngineExplicitBoardConfigIsKept(t *testing.T) {
	e, err := NewEngine(context.Background(), GameConfig{
		Board:  mapgen.BoardConfig{Shape: mapgen.ShapeHexagon, Radius: 1},
		Logger: testutil.NopLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, e.GameState().Board.Len())
}

func TestNewEngineErrors(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name    string
		ctx     context.Context
		config  GameConfig
		wantErr error
	}{
		{
			name:    "StartOffBoard",
			ctx:     context.Background(),
			config:  GameConfig{Start: core.HexCoord{Q: 3, R: 0}},
			wantErr: core.ErrStartOffBoard,
		},
		{
			name:    "UnknownShape",
			ctx:     context.Background(),
			config:  GameConfig{Board: mapgen.BoardConfig{Shape: "ring"}},
			wantErr: core.ErrUnknownShape,
		},
		{
			name:    "NegativeHexSize",
			ctx:     context.Background(),
			config:  GameConfig{Layout: core.Layout{Size: -1}},
			wantErr: core.ErrInvalidHexSize,
		},
		{
			name:    "NegativeRadius",
			ctx:     context.Background(),
			config:  GameConfig{Board: mapgen.BoardConfig{Shape: mapgen.ShapeHexagon, Radius: -1}},
			wantErr: core.ErrInvalidRadius,
		},
		{
			name:    "Cancelled",
			ctx:     cancelled,
			config:  GameConfig{},
			wantErr: context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.Logger = testutil.NopLogger()
			e, err := NewEngine(tt.ctx, tt.config)
			assert.Nil(t, e)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEngineLegalMove(t *testing.T) {
	e, rec := newTestEngine(t)
	target := core.HexCoord{Q: 2, R: -1}

	h := e.SelectPixel(core.Point{X: 477.9, Y: 255})
	require.Equal(t, target, h)

	pending, ok := e.PendingSelection()
	require.True(t, ok)
	assert.Equal(t, target, pending)

	result, err := e.Step(context.Background())
	require.NoError(t, err)

	assert.Equal(t, core.MoveApplied, result.Outcome)
	assert.Equal(t, target, result.Target)
	assert.Equal(t, []core.EntityID{e.GameState().PlayerID}, result.Moved)
	assert.Equal(t, target, e.PlayerPosition())
	assert.False(t, hasPending(e))

	moved := rec.OfType(events.TypeUnitMoved)
	require.Len(t, moved, 1)
	ev := moved[0].(*events.UnitMovedEvent)
	assert.Equal(t, core.HexCoord{}, ev.From)
	assert.Equal(t, target, ev.To)
	assert.Equal(t, uint64(1), ev.Tick)

	selected := rec.OfType(events.TypeHexSelected)
	require.Len(t, selected, 1)
	assert.True(t, selected[0].(*events.HexSelectedEvent).OnBoard)
}

func TestEngineOutOfBoardClick(t *testing.T) {
	e, rec := newTestEngine(t)
	boardBefore := e.GameState().Board.Tiles()

	h := e.SelectPixel(core.Point{X: 789.7, Y: 525})
	require.Equal(t, core.HexCoord{Q: 5, R: 5}, h)

	result, err := e.Step(context.Background())
	require.NoError(t, err)

	assert.Equal(t, core.MoveRejected, result.Outcome)
	assert.Equal(t, core.HexCoord{}, e.PlayerPosition(), "unit stays put")
	assert.False(t, hasPending(e), "rejected target is consumed")
	assert.Equal(t, boardBefore, e.GameState().Board.Tiles())

	require.Len(t, rec.OfType(events.TypeMoveRejected), 1)
	assert.Empty(t, rec.OfType(events.TypeUnitMoved))
	assert.False(t, rec.OfType(events.TypeHexSelected)[0].(*events.HexSelectedEvent).OnBoard)
}

func TestEngineSelectionConsumedOnce(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Select(core.HexCoord{Q: 1, R: 0})

	first, err := e.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.MoveApplied, first.Outcome)

	second, err := e.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.MoveNone, second.Outcome)
	assert.Equal(t, core.HexCoord{Q: 1, R: 0}, e.PlayerPosition())
}

func TestEngineLatestSelectionWins(t *testing.T) {
	e, _ := newTestEngine(t)
	e.Select(core.HexCoord{Q: 1, R: 0})
	e.Select(core.HexCoord{Q: -1, R: 2})

	result, err := e.Step(context.Background())
	require.NoError(t, err)
	assert.Equal(t, core.HexCoord{Q: -1, R: 2}, result.Target)
	assert.Equal(t, core.HexCoord{Q: -1, R: 2}, e.PlayerPosition())
}

func TestEngineStats(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	e.Select(core.HexCoord{Q: 1, R: 1})
	_, err := e.Step(ctx)
	require.NoError(t, err)

	e.Select(core.HexCoord{Q: 9, R: 9})
	_, err = e.Step(ctx)
	require.NoError(t, err)

	_, err = e.Step(ctx)
	require.NoError(t, err)

	stats := e.Stats()
	assert.Equal(t, uint64(3), stats.Ticks)
	assert.Equal(t, uint64(2), stats.Selections)
	assert.Equal(t, uint64(1), stats.MovesApplied)
	assert.Equal(t, uint64(1), stats.MovesRejected)
	assert.Equal(t, uint64(1), stats.LastMoveTick)
	assert.Equal(t, uint64(3), e.GameState().Tick)
}

func TestEnginePauseKeepsSelection(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.TogglePause())
	assert.Equal(t, states.PhasePaused, e.Phase())

	e.Select(core.HexCoord{Q: 0, R: 2})
	result, err := e.Step(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.MoveNone, result.Outcome)
	assert.Equal(t, core.HexCoord{}, e.PlayerPosition())
	assert.True(t, hasPending(e))

	require.NoError(t, e.TogglePause())
	result, err = e.Step(ctx)
	require.NoError(t, err)
	assert.Equal(t, core.MoveApplied, result.Outcome)
	assert.Equal(t, core.HexCoord{Q: 0, R: 2}, e.PlayerPosition())
}

func TestEngineStop(t *testing.T) {
	e, rec := newTestEngine(t)
	rec.Reset()

	require.NoError(t, e.Stop("window closed"))
	assert.Equal(t, states.PhaseEnded, e.Phase())
	require.NoError(t, e.Stop("again"), "stopping twice is harmless")

	_, err := e.Step(context.Background())
	assert.ErrorIs(t, err, core.ErrGameEnded)

	e.Select(core.HexCoord{Q: 1, R: 0})
	assert.False(t, hasPending(e), "selections are ignored once ended")

	assert.Empty(t, rec.OfType(events.TypeHexSelected))
	phases := rec.OfType(events.TypePhaseChanged)
	require.Len(t, phases, 1)
	assert.Equal(t, "Ended", phases[0].(*events.PhaseChangedEvent).To)
	assert.Equal(t, "window closed", phases[0].(*events.PhaseChangedEvent).Reason)
}

func TestEngineStepHonoursContext(t *testing.T) {
	e, _ := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Step(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, uint64(0), e.GameState().Tick)
}

func TestEngineSetLayout(t *testing.T) {
	e, rec := newTestEngine(t)

	bigger := core.NewLayout(45, 800, 600)
	require.NoError(t, e.SetLayout(bigger))
	assert.Equal(t, bigger, e.Layout())
	require.Len(t, rec.OfType(events.TypeLayoutChange), 1)

	require.NoError(t, e.SetLayout(bigger))
	assert.Len(t, rec.OfType(events.TypeLayoutChange), 1, "unchanged layout is not republished")

	assert.ErrorIs(t, e.SetLayout(core.Layout{Size: 0}), core.ErrInvalidHexSize)
	assert.Equal(t, bigger, e.Layout())

	// The same click now lands on a different hex.
	h := e.SelectPixel(core.Point{X: 477.9, Y: 255})
	assert.Equal(t, core.HexCoord{Q: 1, R: -1}, h)
}

func TestEngineTileCenters(t *testing.T) {
	e, _ := newTestEngine(t)

	centers := e.TileCenters()
	require.Len(t, centers, 25)
	for _, tc := range centers {
		assert.Equal(t, e.Layout().HexToPixel(tc.Hex), tc.Center)
		assert.Equal(t, tc.Hex, e.Layout().PixelToHex(tc.Center))
	}
	assert.Equal(t, core.HexCoord{Q: -2, R: -2}, centers[0].Hex, "ordered by row then column")

	units := e.UnitPositions()
	require.Len(t, units, 1)
	assert.Equal(t, core.Point{X: 400, Y: 300}, units[0].Center)
	assert.Equal(t, e.GameState().PlayerID, units[0].ID)
}

func TestEngineBoardRendering(t *testing.T) {
	e, _ := newTestEngine(t)

	lines := strings.Split(strings.TrimRight(e.Board(), "\n"), "\n")
	require.Len(t, lines, 6, "header plus five rows")
	assert.Equal(t, "tick 0  player (0,0)", lines[0])
	assert.Equal(t, "· · · · ·", lines[1])
	assert.Equal(t, "  · · @ · ·", lines[3])
	assert.Equal(t, 24, strings.Count(e.Board(), TileSymbol))

	e.Select(core.HexCoord{Q: 2, R: -1})
	assert.Contains(t, e.Board(), PendingSymbol)

	_, err := e.Step(context.Background())
	require.NoError(t, err)

	lines = strings.Split(strings.TrimRight(e.Board(), "\n"), "\n")
	row := []rune(lines[2])
	require.Len(t, row, 10)
	assert.Equal(t, '@', row[9])
	assert.NotContains(t, e.Board(), PendingSymbol)

	e.Select(core.HexCoord{Q: 5, R: 5})
	assert.Contains(t, e.Board(), "pending (5,5) is off the board")

	colored := e.ColoredBoard()
	assert.Contains(t, colored, ColorGreen+UnitSymbol+ColorReset)
}
