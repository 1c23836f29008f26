// Package logging provides the shared structured logger for gosplit.
//
// It wraps [log/slog] with a single text handler so every component writes
// through the same output and level. The level comes from the
// GOSPLIT_LOG_LEVEL environment variable (debug, info, warn, error) and
// defaults to INFO.
//
// Usage:
//
//	log := logging.New("splitpane")
//	log.Debug("splitter committed", "offset", 620)
//
// Output goes to stderr until SetOutput redirects it. The TUI redirects to a
// log file while it owns the terminal, because anything written to stderr
// would tear through the alternate screen.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
	level      slog.LevelVar
	out        = &switchWriter{w: os.Stderr}
)

// switchWriter lets loggers created at package init follow a later
// SetOutput call.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// New returns a logger tagged with component="<component>". An empty
// component returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		level.Set(parseLevel(os.Getenv("GOSPLIT_LOG_LEVEL")))
		baseLogger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: &level}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// SetOutput redirects every logger, including ones already created. A nil
// writer discards output.
func SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	out.set(w)
}

// SetLevel overrides the level picked from the environment.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// ParseLevel exposes the level parser for configuration values.
func ParseLevel(value string) slog.Level {
	return parseLevel(value)
}

// parseLevel maps debug, warn/warning and error (case-insensitive) to their
// slog levels; anything else is INFO.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
