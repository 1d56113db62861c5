package config

import (
	"fmt"

	"github.com/lgbarn/fenboard/internal/errors"
)

// Log output formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled
	Level string `yaml:"level"`

	// Format is "console" for human readable output or "json"
	Format string `yaml:"format"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:  "info",
		Format: LogFormatConsole,
	}
}

// Validate checks that the log configuration is valid.
func (l *LogConfig) Validate() error {
	switch l.Format {
	case LogFormatConsole, LogFormatJSON:
		return nil
	}
	return fmt.Errorf("unknown log format %q: %w", l.Format, errors.ErrInvalidConfig)
}
