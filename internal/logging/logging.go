// Package logging wires zerolog into the CLI.
//
// The engine packages never log; errors return to their callers.
// Logging is a CLI-layer concern: command start/stop, persistence
// warnings, debug traces.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is the zerolog level name ("debug", "info", ...).
	// Unparseable values fall back to info.
	Level string `yaml:"level"`

	// File, when set, receives log output in addition to stderr.
	File string `yaml:"file"`
}

// New builds a logger from cfg, writing human-readable console output
// to stderr and, when cfg.File is set and can be opened, JSON lines
// to the file as well. A file open failure degrades to console-only.
func New(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}}

	if cfg.File != "" {
		if f, openErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); openErr == nil {
			writers = append(writers, f)
		}
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ComponentLogger returns logger with a component field attached.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// WithContext stores logger in ctx for retrieval with FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger
// when none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
