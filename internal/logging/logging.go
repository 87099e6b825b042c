// Package logging builds the structured logger used by the wgraph CLI.
//
// It is a thin layer over log/slog:
//
//	logger, err := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true})
//	logger.Info("graph loaded", "vertices", g.NumVertices())
//
// Output goes to stderr by default so that command results on stdout stay
// machine-readable. The library packages never log; only cmd/wgraph does.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel indicates a level name ParseLevel does not recognise.
var ErrUnknownLevel = errors.New("logging: unknown level")

// ErrUnknownFormat indicates a format name ParseFormat does not recognise.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for tracing algorithm inputs and timings.
	LevelDebug Level = iota

	// LevelInfo is for normal operational messages.
	LevelInfo

	// LevelWarn is for results that are valid but likely surprising,
	// e.g. a spanning forest returned for a disconnected graph.
	LevelWarn

	// LevelError is for command failures.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// toSlogLevel converts Level to slog.Level; unknown values map to Info.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel maps a case-insensitive level name ("debug", "info", "warn",
// "warning", "error") to a Level.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
}

// ParseFormat reports whether name selects JSON output ("json") or text ("text", "").
func ParseFormat(name string) (json bool, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "text", "":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Config configures the logger. The zero value writes Info+ text records to stderr.
type Config struct {
	// Level sets the minimum log level. Default: LevelInfo.
	Level Level

	// JSON selects slog.JSONHandler instead of slog.TextHandler.
	JSON bool

	// Service, when set, is attached to every record as the "service" attribute.
	Service string

	// Output overrides the destination. Default: os.Stderr.
	Output io.Writer
}

// New builds a *slog.Logger from cfg.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}

	return logger
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
