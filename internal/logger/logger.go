// Package logger configures the zerolog logger used across the service.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger at the given level. Production environments get JSON
// output; anything else gets the console writer.
func New(level, environment string) zerolog.Logger {
	var out = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	logger := zerolog.New(out)
	if environment == "production" {
		logger = zerolog.New(os.Stdout)
	}

	return logger.Level(parseLevel(level)).With().Timestamp().Logger()
}

// parseLevel converts a string log level to zerolog.Level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
