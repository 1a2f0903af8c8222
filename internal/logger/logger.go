// Package logger provides process-wide logging for servico.
//
// Output goes through zerolog. The console format is meant for people at a
// terminal; the json format is one object per line for log shippers. When
// verbose mode is enabled via the --verbose flag, debug messages are
// emitted regardless of the configured level.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config selects the level and format of the process logger.
type Config struct {
	Level  string
	Format string
}

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	format            = FormatConsole
	level             = zerolog.InfoLevel
	base              = build(os.Stderr, FormatConsole, zerolog.InfoLevel)
)

func build(w io.Writer, f string, l zerolog.Level) zerolog.Logger {
	if f != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: w != os.Stderr}
	}
	return zerolog.New(w).Level(l).With().Timestamp().Logger()
}

// rebuild must be called with mu held.
func rebuild() {
	l := level
	if verbose {
		l = zerolog.DebugLevel
	}
	base = build(output, format, l)
}

// Init applies cfg to the process logger. An empty level means info and an
// empty format means console.
func Init(cfg Config) error {
	l := zerolog.InfoLevel
	if cfg.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return fmt.Errorf("parse log level %q: %w", cfg.Level, err)
		}
		l = parsed
	}

	f := strings.ToLower(cfg.Format)
	switch f {
	case "":
		f = FormatConsole
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	mu.Lock()
	defer mu.Unlock()
	level = l
	format = f
	rebuild()
	return nil
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	rebuild()
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	rebuild()
}

// L returns the process logger for structured events.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

// Debug logs a message at debug level.
func Debug(format string, args ...any) {
	L().Debug().Msgf(format, args...)
}

// Info logs a message at info level.
func Info(format string, args ...any) {
	L().Info().Msgf(format, args...)
}

// Warn logs a message at warn level.
func Warn(format string, args ...any) {
	L().Warn().Msgf(format, args...)
}

// Error logs err with a message at error level.
func Error(err error, format string, args ...any) {
	L().Error().Err(err).Msgf(format, args...)
}
