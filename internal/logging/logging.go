// Package logging builds the zerolog logger used across fenboard.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fenboard/internal/config"
	"github.com/lgbarn/fenboard/internal/errors"
)

// New returns a logger writing to stderr as configured by cfg.
func New(cfg config.LogConfig) (zerolog.Logger, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter returns a logger writing to w as configured by cfg.
// Console output is only colourised when w is a terminal-backed file.
func NewWithWriter(cfg config.LogConfig, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", cfg.Level, errors.ErrInvalidConfig)
	}
	if cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	switch cfg.Format {
	case config.LogFormatJSON:
	case config.LogFormatConsole, "":
		_, isFile := w.(*os.File)
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
			NoColor:    !isFile,
		}
	default:
		return zerolog.Nop(), fmt.Errorf("log format %q: %w", cfg.Format, errors.ErrInvalidConfig)
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}
