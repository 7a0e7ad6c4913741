// Package config provides configuration for the rules engine and the replay tool.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/arkoted-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Rules controls how a game applies moves.
	Rules *RulesConfig

	// Log controls structured logging.
	Log *LogConfig

	// Workers is the number of scripts replayed concurrently.
	Workers int

	// OutputFile receives reports and board diagrams.
	OutputFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Log:        NewLogConfig(),
		Workers:    1,
		OutputFile: os.Stdout,
	}
}

// SetOutput sets the report writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the top-level settings and the log group.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return c.Log.Validate()
}
