package config

import "github.com/lgbarn/fenboard/internal/errors"

// EngineConfig holds settings for new games and position files.
type EngineConfig struct {
	// StartFEN is the position new games start from; empty means the
	// standard initial position
	StartFEN string `yaml:"start_fen"`

	// PositionsDir is where bare position file names are resolved
	PositionsDir string `yaml:"positions_dir"`
}

// NewEngineConfig creates an EngineConfig with default values.
func NewEngineConfig() *EngineConfig {
	return &EngineConfig{
		PositionsDir: "positions",
	}
}

// Validate checks that the engine configuration is valid. StartFEN is
// decoded, and so checked, when the first game is created.
func (e *EngineConfig) Validate() error {
	if e.PositionsDir == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "positions directory is empty")
	}
	return nil
}
