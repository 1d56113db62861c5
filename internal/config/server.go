package config

import (
	"fmt"

	"github.com/lgbarn/fenboard/internal/errors"
)

// ServerConfig holds settings for the HTTP/WebSocket server.
type ServerConfig struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string `yaml:"addr"`

	// AllowOrigins is the CORS allow list, comma separated
	AllowOrigins string `yaml:"allow_origins"`

	// ReadBuffer and WriteBuffer size the WebSocket I/O buffers
	ReadBuffer  int `yaml:"read_buffer"`
	WriteBuffer int `yaml:"write_buffer"`

	// KnownPositions caps the positions remembered by the normalise
	// endpoint; 0 means unlimited
	KnownPositions int `yaml:"known_positions"`
}

// NewServerConfig creates a ServerConfig with default values.
func NewServerConfig() *ServerConfig {
	return &ServerConfig{
		Addr:           ":8080",
		AllowOrigins:   "*",
		ReadBuffer:     1024,
		WriteBuffer:    1024,
		KnownPositions: 100000,
	}
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	if s.Addr == "" {
		return fmt.Errorf("server address is empty: %w", errors.ErrInvalidConfig)
	}
	if s.ReadBuffer < 0 || s.WriteBuffer < 0 {
		return fmt.Errorf("negative websocket buffer size (%d, %d): %w",
			s.ReadBuffer, s.WriteBuffer, errors.ErrInvalidConfig)
	}
	if s.KnownPositions < 0 {
		return fmt.Errorf("known positions (%d) < 0: %w", s.KnownPositions, errors.ErrInvalidConfig)
	}
	return nil
}
