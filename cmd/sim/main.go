package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/config"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/DevastatingSlash/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay to merge (loads config.<env>.yaml)")
	clicks := flag.String("clicks", "", `Pixel clicks, one per tick, e.g. "478,255;790,525"`)
	extraTicks := flag.Int("ticks", 0, "Idle ticks to run after the last click")
	logLevel := flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	colored := flag.Bool("color", false, "Print the board with ANSI colors")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	cfg := config.Get()

	logCfg := cfg.Logging
	logCfg.Level = *logLevel
	logger, closer := logging.Setup(logCfg, os.Stderr)
	defer closer.Close()
	simLog := logging.Component("sim")

	points, err := parseClicks(*clicks)
	if err != nil {
		simLog.Fatal().Err(err).Msg("Invalid -clicks")
	}

	bus := events.NewEventBusWithLogger(logger)
	bus.Subscribe(subscribers.NewLoggerSubscriber("event-logger", logger, logging.ParseLevel(cfg.Logging.Events.Level)))

	ctx := context.Background()
	engine, err := game.NewEngine(ctx, game.GameConfigFromSettings(cfg, logger, bus))
	if err != nil {
		simLog.Fatal().Err(err).Msg("Failed to create game engine")
	}

	render := engine.Board
	if *colored {
		render = engine.ColoredBoard
	}

	fmt.Print(render())
	for i := 0; i < len(points)+*extraTicks; i++ {
		if i < len(points) {
			h := engine.SelectPixel(points[i])
			fmt.Printf("\nclick %s -> %s\n", points[i], h)
		}
		result, err := engine.Step(ctx)
		if err != nil {
			simLog.Fatal().Err(err).Msg("Step failed")
		}
		fmt.Printf("%s\n%s", result.Outcome, render())
	}

	stats := engine.Stats()
	if err := engine.Stop("simulation finished"); err != nil {
		simLog.Warn().Err(err).Msg("Engine did not stop cleanly")
	}
	fmt.Printf("\nticks=%d applied=%d rejected=%d\n", stats.Ticks, stats.MovesApplied, stats.MovesRejected)
}
