package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lgbarn/arkoted-go/internal/errors"
)

// Environment variables read by LoadEnv.
const (
	EnvEnforceTurns = "ARKOTED_ENFORCE_TURNS"
	EnvVerifyIndex  = "ARKOTED_VERIFY_INDEX"
	EnvLogLevel     = "ARKOTED_LOG_LEVEL"
	EnvWorkers      = "ARKOTED_WORKERS"
)

// LoadEnv applies settings from the process environment and from the .env
// file at path. Process variables take precedence over the file. A missing
// file is not an error; an empty path skips the file.
func (c *Config) LoadEnv(path string) error {
	fileVars := map[string]string{}
	if path != "" {
		vars, err := godotenv.Read(path)
		switch {
		case err == nil:
			fileVars = vars
		case os.IsNotExist(err):
		default:
			return errors.Wrapf(err, "reading %s", path)
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	}

	if v, ok := lookup(EnvEnforceTurns); ok {
		b, err := parseBool(EnvEnforceTurns, v)
		if err != nil {
			return err
		}
		c.Rules.EnforceTurnOrder = b
	}
	if v, ok := lookup(EnvVerifyIndex); ok {
		b, err := parseBool(EnvVerifyIndex, v)
		if err != nil {
			return err
		}
		c.Rules.VerifyIndex = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, errors.ErrInvalidConfig)
		}
		c.Workers = n
	}
	return c.Validate()
}

// parseBool parses a boolean environment value.
func parseBool(key, v string) (bool, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s=%q: %w", key, v, errors.ErrInvalidConfig)
	}
	return b, nil
}
