package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is stamped on every log line.
const ServiceName = "quotepulse"

var (
	mu          sync.Mutex
	base        zerolog.Logger
	initialized bool
)

// Init configures the global JSON logger writing to stdout.
//
// Parameters:
//   - level: trace|debug|info|warn|error|disabled (default: info)
//   - pretty: human-readable console output instead of JSON
func Init(level string, pretty bool) {
	InitWithWriter(level, pretty, os.Stdout)
}

// InitWithWriter is Init with an explicit destination, used by tests to capture output.
func InitWithWriter(level string, pretty bool, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	initLocked(level, pretty, out)
}

func initLocked(level string, pretty bool, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	base = zerolog.New(w).
		With().
		Timestamp().
		Str("service", ServiceName).
		Logger().
		Level(parseLevel(level))
	initialized = true
}

// L returns the global logger. Call Init() once on startup; until then the
// first call configures it from LOG_LEVEL and LOG_PRETTY.
func L() *zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !initialized {
		initLocked(getenv("LOG_LEVEL", "info"), strings.EqualFold(getenv("LOG_PRETTY", "false"), "true"), os.Stdout)
	}
	return &base
}

// Ctx returns the request-scoped logger stored in ctx, or the global logger
// when the context carries none.
func Ctx(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	return L()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
