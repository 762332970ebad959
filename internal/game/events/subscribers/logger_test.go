package subscribers_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events/subscribers"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var lines []map[string]interface{}
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func TestLoggerSubscriber(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("test-logger", zerolog.Nop(), zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	unitID := uuid.New()

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStarted",
			event: events.NewGameStartedEvent("game-1", 25, 1),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(25), logLine["tile_count"])
				assert.Equal(t, float64(1), logLine["unit_count"])
			},
		},
		{
			name:  "HexSelected",
			event: events.NewHexSelectedEvent("game-1", 3, core.Point{X: 477.9, Y: 255}, core.HexCoord{Q: 2, R: -1}, true),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["tick"])
				assert.Equal(t, float64(2), logLine["q"])
				assert.Equal(t, float64(-1), logLine["r"])
				assert.Equal(t, true, logLine["on_board"])
			},
		},
		{
			name:  "UnitMoved",
			event: events.NewUnitMovedEvent("game-1", 4, unitID, core.HexCoord{}, core.HexCoord{Q: 2, R: -1}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, unitID.String(), logLine["unit_id"])
				assert.Equal(t, "(0,0)", logLine["from"])
				assert.Equal(t, "(2,-1)", logLine["to"])
			},
		},
		{
			name:  "MoveRejected",
			event: events.NewMoveRejectedEvent("game-1", 5, core.HexCoord{Q: 5, R: 5}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(5), logLine["q"])
				assert.Equal(t, float64(5), logLine["r"])
			},
		},
		{
			name:  "PhaseChanged",
			event: events.NewPhaseChangedEvent("game-1", "Running", "Paused", "pause toggled"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Running", logLine["from_phase"])
				assert.Equal(t, "Paused", logLine["to_phase"])
				assert.Equal(t, "pause toggled", logLine["reason"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)

			logSub.HandleEvent(tc.event)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "Game event", lines[0]["message"])
			assert.Equal(t, "info", lines[0]["level"])
			assert.Equal(t, tc.event.Type(), lines[0]["event_type"])
			assert.Equal(t, "game-1", lines[0]["game_id"])
			tc.check(t, lines[0])
		})
	}
}

func TestLoggerSubscriberFilter(t *testing.T) {
	logSub := subscribers.NewLoggerSubscriber("filtered", zerolog.Nop(), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeUnitMoved})

	assert.True(t, logSub.InterestedIn(events.TypeUnitMoved))
	assert.False(t, logSub.InterestedIn(events.TypeHexSelected))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeHexSelected))
}

func TestLoggerSubscriberDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.DebugLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewMoveRejectedEvent("game-1", 9, core.HexCoord{Q: -7, R: 1}))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "debug", lines[0]["level"])
	data, ok := lines[0]["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be embedded JSON")
	assert.Equal(t, events.TypeMoveRejected, data["type"])
}

func TestLoggerSubscriberThroughBus(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewEventBusWithLogger(zerolog.Nop())
	bus.Subscribe(subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.InfoLevel))

	bus.Publish(events.NewMoveRejectedEvent("game-2", 1, core.HexCoord{Q: 5, R: 5}))
	bus.Publish(events.NewMoveRejectedEvent("game-2", 2, core.HexCoord{Q: 6, R: 5}))

	assert.Len(t, decodeLines(t, &buf), 2)
}
