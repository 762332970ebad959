package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/config"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/logging"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/ui"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay to merge (loads config.<env>.yaml)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	// Setup logging
	logCfg := cfg.Logging
	if *logLevel != "" {
		logCfg.Level = *logLevel
	}
	logger, closer := logging.Setup(logCfg, os.Stdout)
	defer closer.Close()

	bus := events.NewEventBusWithLogger(logger)
	eventLogger := subscribers.NewLoggerSubscriber("event-logger", logger, logging.ParseLevel(cfg.Logging.Events.Level))
	eventLogger.SetDevMode(cfg.Development.VerboseEvents)
	bus.Subscribe(eventLogger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	engine, err := game.NewEngine(ctx, game.GameConfigFromSettings(cfg, logger, bus))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game engine")
	}

	uiGame := ui.NewUIGame(ctx, engine, ui.EbitenPointer{}, cfg, logger)
	config.WatchConfig(uiGame.ConfigChanged)

	logger.Info().
		Str("config_file", config.ConfigFilePath()).
		Int("width", cfg.UI.Window.Width).
		Int("height", cfg.UI.Window.Height).
		Msg("Starting game window")

	ebiten.SetWindowSize(cfg.UI.Window.Width, cfg.UI.Window.Height)
	ebiten.SetWindowTitle(cfg.UI.Window.Title)

	if err := ebiten.RunGame(uiGame); err != nil {
		logger.Fatal().Err(err).Msg("Game loop failed")
	}
	if err := uiGame.Close(); err != nil {
		logger.Warn().Err(err).Msg("Engine did not stop cleanly")
	}
}
