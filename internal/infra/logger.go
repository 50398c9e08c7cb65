package infra

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the service logger. Development runs log human-readable
// console output at debug level; everything else emits JSON at info.
func NewLogger(appEnv string) zerolog.Logger {
	logger := zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Str("service", "dashboard-api").
		Logger()

	if appEnv == "development" {
		logger = logger.
			Level(zerolog.DebugLevel).
			Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}
	return logger
}
