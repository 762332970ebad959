package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/config"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/core"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/ui/controller"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/ui/input"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/ui/renderer"
)

// UIGame adapts the engine to ebiten.Game
type UIGame struct {
	ctx           context.Context
	controller    *controller.Controller
	boardRenderer *renderer.HexBoardRenderer
	logger        zerolog.Logger
}

// NewUIGame creates a new Ebitengine game instance.
func NewUIGame(ctx context.Context, engine *game.Engine, source input.PointerSource, cfg *config.Config, logger zerolog.Logger) *UIGame {
	g := &UIGame{
		ctx:           ctx,
		controller:    controller.New(engine, source, cfg.UI.Window.Width, cfg.UI.Window.Height, logger),
		boardRenderer: renderer.NewHexBoardRenderer(renderer.StyleFromConfig(cfg), basicfont.Face7x13),
		logger:        logger.With().Str("component", "UIGame").Logger(),
	}
	g.controller.SetShowLabels(cfg.Development.ShowCoordinates)
	g.controller.OnReload = func(c *config.Config) {
		g.boardRenderer.SetStyle(renderer.StyleFromConfig(c))
		ebiten.SetWindowSize(c.UI.Window.Width, c.UI.Window.Height)
		ebiten.SetWindowTitle(c.UI.Window.Title)
	}
	return g
}

// ConfigChanged is the config.WatchConfig callback
func (g *UIGame) ConfigChanged(c *config.Config, err error) {
	g.controller.ConfigChanged(c, err)
}

// Update proceeds the game state.
func (g *UIGame) Update() error {
	err := g.controller.Tick(g.ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, controller.ErrQuit),
		errors.Is(err, core.ErrGameEnded),
		errors.Is(err, context.Canceled):
		return ebiten.Termination
	default:
		g.logger.Error().Err(err).Msg("Update failed")
		return err
	}
}

// Draw renders the game screen.
func (g *UIGame) Draw(screen *ebiten.Image) {
	engine := g.controller.Engine()
	hover, onBoard := g.controller.Hover()

	g.boardRenderer.Draw(screen, renderer.Scene{
		Layout:       engine.Layout(),
		Tiles:        engine.TileCenters(),
		Units:        engine.UnitPositions(),
		Hover:        hover,
		HoverOnBoard: onBoard,
		ShowLabels:   g.controller.ShowLabels(),
	})

	status := fmt.Sprintf("Tick: %d  Unit: %s  %s", engine.GameState().Tick, engine.PlayerPosition(), engine.Phase())
	ebitenutil.DebugPrintAt(screen, status, 5, 5)
	if onBoard {
		ebitenutil.DebugPrintAt(screen, "Hover: "+hover.String(), 5, 25)
	}
}

// Layout defines the Ebitengine screen size.
func (g *UIGame) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.controller.ViewportSize()
}

// Close stops the engine once the window loop has returned
func (g *UIGame) Close() error {
	return g.controller.Engine().Stop("window closed")
}
