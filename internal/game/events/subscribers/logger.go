package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables logging of the full event payload
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.logLevel)
	if logEvent == nil {
		return
	}

	logEvent.
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("tile_count", e.TileCount).
			Int("unit_count", e.UnitCount)

	case *events.UnitSpawnedEvent:
		logEvent.
			Str("unit_id", e.UnitID).
			Stringer("pos", e.Pos).
			Str("tags", e.Tags)

	case *events.HexSelectedEvent:
		logEvent.
			Uint64("tick", e.Tick).
			Float64("pixel_x", e.Pixel.X).
			Float64("pixel_y", e.Pixel.Y).
			Int("q", e.Target.Q).
			Int("r", e.Target.R).
			Bool("on_board", e.OnBoard)

	case *events.UnitMovedEvent:
		logEvent.
			Uint64("tick", e.Tick).
			Str("unit_id", e.UnitID).
			Stringer("from", e.From).
			Stringer("to", e.To)

	case *events.MoveRejectedEvent:
		logEvent.
			Uint64("tick", e.Tick).
			Int("q", e.Target.Q).
			Int("r", e.Target.R)

	case *events.LayoutChangedEvent:
		logEvent.
			Float64("size", e.Size).
			Stringer("origin", e.Origin)

	case *events.PhaseChangedEvent:
		logEvent.
			Str("from_phase", e.From).
			Str("to_phase", e.To).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}
