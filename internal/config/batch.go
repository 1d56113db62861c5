package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/fenboard/internal/errors"
)

// BatchConfig holds settings for batch FEN normalisation.
type BatchConfig struct {
	// Workers is the number of worker goroutines
	Workers int `yaml:"workers"`

	// BufferSize is the work channel buffer size
	BufferSize int `yaml:"buffer_size"`

	// SuppressDuplicates drops repeated positions from the output
	SuppressDuplicates bool `yaml:"suppress_duplicates"`
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers (%d) < 1: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) < 1: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
