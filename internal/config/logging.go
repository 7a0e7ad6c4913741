package config

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"

	"github.com/lgbarn/arkoted-go/internal/errors"
)

// LogConfig holds settings for structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string

	// File receives log entries. A nil File discards them.
	File io.Writer
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
		File:  os.Stderr,
	}
}

// Validate checks that Level names a known level.
func (l *LogConfig) Validate() error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	return nil
}

// Logger builds a logger writing text entries to File at Level.
// An unparsable level falls back to info.
func (l *LogConfig) Logger() *log.Logger {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		level = log.InfoLevel
	}
	var handler log.Handler = discard.New()
	if l.File != nil {
		handler = text.New(l.File)
	}
	return &log.Logger{Handler: handler, Level: level}
}

// Logger builds the program logger from the Log group.
func (c *Config) Logger() *log.Logger {
	return c.Log.Logger()
}
