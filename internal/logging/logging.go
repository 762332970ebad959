package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mitchelldurbincs/DevastatingSlash/internal/config"
)

// ParseLevel maps a level name to a zerolog level. Empty or unknown names
// fall back to info.
func ParseLevel(level string) zerolog.Level {
	l, err := zerolog.ParseLevel(level)
	if err != nil || l == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return l
}

// UseJSON reports whether log lines should be written as JSON rather than
// the pretty console format.
func UseJSON(lc config.LoggingConfig) bool {
	return lc.Format == "json" || os.Getenv("APP_ENV") == "production"
}

// Setup configures the global logger from lc and returns it. Output goes to
// out and, when file logging is enabled, to a rolling file as JSON. The
// returned closer releases the file and must be closed on exit.
func Setup(lc config.LoggingConfig, out io.Writer) (zerolog.Logger, io.Closer) {
	zerolog.SetGlobalLevel(ParseLevel(lc.Level))

	var primary io.Writer = out
	if !UseJSON(lc) {
		primary = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	var closer io.Closer = nopCloser{}
	writer := primary
	if lc.File.Enabled {
		lj := &lumberjack.Logger{
			Filename:   lc.File.Path,
			MaxSize:    lc.File.MaxSizeMB,
			MaxBackups: lc.File.MaxBackups,
			MaxAge:     lc.File.MaxAgeDays,
			Compress:   lc.File.Compress,
		}
		writer = zerolog.MultiLevelWriter(primary, lj)
		closer = lj
	}

	logger := zerolog.New(writer).With().Timestamp().Logger()
	log.Logger = logger
	return logger, closer
}

// Component returns a child of the global logger tagged with name.
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
