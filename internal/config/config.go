// Package config provides configuration for fenboard.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/fenboard/internal/errors"
)

// Config holds all program configuration. Each concern lives in its own
// section; sections map to top-level keys of the YAML file.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Engine EngineConfig `yaml:"engine"`
	Log    LogConfig    `yaml:"log"`
	Batch  BatchConfig  `yaml:"batch"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Server: *NewServerConfig(),
		Engine: *NewEngineConfig(),
		Log:    *NewLogConfig(),
		Batch:  *NewBatchConfig(),
	}
}

// Load reads a YAML configuration file on top of the defaults. Keys missing
// from the file keep their default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config '%s': %w", path, err)
	}
	return Parse(b)
}

// Parse decodes YAML configuration on top of the defaults and validates it.
func Parse(b []byte) (*Config, error) {
	cfg := NewConfig()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WriteYAML writes the configuration as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	validators := []func() error{
		c.Server.Validate,
		c.Engine.Validate,
		c.Log.Validate,
		c.Batch.Validate,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}
