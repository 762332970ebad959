package controller

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/config"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/ui/input"
)

// ErrQuit is returned by Tick once the game should close
var ErrQuit = errors.New("quit requested")

// Controller runs one frame of game logic: apply pending config reloads,
// read input, record the click, step the engine. It has no drawing or
// windowing dependencies.
type Controller struct {
	engine  *game.Engine
	input   *input.Handler
	logger  zerolog.Logger
	reloads chan *config.Config

	width, height int
	hover         core.HexCoord
	hoverOnBoard  bool
	showLabels    bool

	// OnReload runs on the update loop after a reloaded config has been
	// applied to the engine.
	OnReload func(*config.Config)
}

// New creates a controller for a viewport of the given size
func New(engine *game.Engine, source input.PointerSource, width, height int, logger zerolog.Logger) *Controller {
	return &Controller{
		engine:  engine,
		input:   input.NewHandler(source),
		logger:  logger.With().Str("component", "UIController").Logger(),
		reloads: make(chan *config.Config, 1),
		width:   width,
		height:  height,
	}
}

// ConfigChanged queues a reloaded config for the next Tick. It matches the
// config.WatchConfig callback and is safe to call from the watcher
// goroutine. Only the newest pending config is kept.
func (c *Controller) ConfigChanged(cfg *config.Config, err error) {
	if err != nil {
		c.logger.Warn().Err(err).Msg("Ignoring invalid config reload")
		return
	}
	for {
		select {
		case c.reloads <- cfg:
			return
		default:
		}
		select {
		case <-c.reloads:
		default:
		}
	}
}

// Tick runs one frame. It returns ErrQuit when the player asked to quit and
// core.ErrGameEnded once the engine has stopped.
func (c *Controller) Tick(ctx context.Context) error {
	c.applyReloads()

	frame := c.input.Poll()
	if frame.Quit {
		if err := c.engine.Stop("quit key"); err != nil {
			return err
		}
		return ErrQuit
	}
	if frame.TogglePause {
		if err := c.engine.TogglePause(); err != nil {
			c.logger.Warn().Err(err).Msg("Pause toggle rejected")
		}
	}
	if frame.ToggleLabels {
		c.showLabels = !c.showLabels
	}

	layout := c.engine.Layout()
	c.hover = layout.PixelToHex(frame.Hover)
	c.hoverOnBoard = c.engine.GameState().Board.Contains(c.hover)

	if frame.HasClick {
		c.engine.SelectPixel(frame.Click)
	}

	_, err := c.engine.Step(ctx)
	return err
}

func (c *Controller) applyReloads() {
	select {
	case cfg := <-c.reloads:
		c.apply(cfg)
	default:
	}
}

func (c *Controller) apply(cfg *config.Config) {
	c.width, c.height = cfg.UI.Window.Width, cfg.UI.Window.Height
	layout := core.NewLayout(cfg.UI.Hex.Size, c.width, c.height)
	if err := c.engine.SetLayout(layout); err != nil {
		c.logger.Warn().Err(err).Msg("Ignoring reloaded layout")
	}
	c.showLabels = cfg.Development.ShowCoordinates

	c.logger.Info().
		Float64("hex_size", layout.Size).
		Int("width", c.width).
		Int("height", c.height).
		Msg("Config reloaded")

	if c.OnReload != nil {
		c.OnReload(cfg)
	}
}

// Hover returns the hex under the cursor and whether it is on the board
func (c *Controller) Hover() (core.HexCoord, bool) {
	return c.hover, c.hoverOnBoard
}

// ShowLabels reports whether coordinate labels are on
func (c *Controller) ShowLabels() bool {
	return c.showLabels
}

// SetShowLabels sets the coordinate label toggle
func (c *Controller) SetShowLabels(show bool) {
	c.showLabels = show
}

// ViewportSize returns the current logical screen size
func (c *Controller) ViewportSize() (int, int) {
	return c.width, c.height
}

// Engine returns the engine being driven
func (c *Controller) Engine() *game.Engine {
	return c.engine
}
