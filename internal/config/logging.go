package config

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is the global zerolog logger instance. It starts at info level with
// console output; InitLogger reconfigures it once the config is loaded.
var Logger = newLogger(zerolog.InfoLevel)

// InitLogger initializes the package-level Logger with the specified log
// level. An unparseable level falls back to InfoLevel.
func InitLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	Logger = newLogger(lvl)
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	return Logger
}

// newLogger writes human-readable output when stderr is a terminal and raw
// JSON otherwise, so workflow engines capture structured lines.
func newLogger(lvl zerolog.Level) zerolog.Logger {
	var out io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		out = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}
