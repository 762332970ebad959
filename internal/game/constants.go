package game

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/config"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/mapgen"
)

// Defaults used when a GameConfig leaves the layout unset
const (
	DefaultHexSize        = 30.0
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

// DefaultLayout centers a size-30 grid in an 800x600 viewport
func DefaultLayout() core.Layout {
	return core.NewLayout(DefaultHexSize, DefaultViewportWidth, DefaultViewportHeight)
}

// GameConfigFromSettings builds an engine config from the loaded application
// settings. bus may be nil.
func GameConfigFromSettings(c *config.Config, logger zerolog.Logger, bus *events.EventBus) GameConfig {
	return GameConfig{
		Board: mapgen.BoardConfig{
			Shape:  c.Game.Board.Shape,
			Radius: c.Game.Board.Radius,
			File:   c.Game.Board.File,
		},
		Start:    core.HexCoord{Q: c.Game.Unit.StartQ, R: c.Game.Unit.StartR},
		Layout:   core.NewLayout(c.UI.Hex.Size, c.UI.Window.Width, c.UI.Window.Height),
		Logger:   logger,
		EventBus: bus,
	}
}
