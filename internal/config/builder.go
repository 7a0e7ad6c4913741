package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithTurnOrder controls whether moves out of turn are rejected.
func (b *ConfigBuilder) WithTurnOrder(enforce bool) *ConfigBuilder {
	b.cfg.Rules.EnforceTurnOrder = enforce
	return b
}

// WithIndexVerification enables the position index check after every move.
func (b *ConfigBuilder) WithIndexVerification(enabled bool) *ConfigBuilder {
	b.cfg.Rules.VerifyIndex = enabled
	return b
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogOutput sets the log writer. nil discards log entries.
func (b *ConfigBuilder) WithLogOutput(w io.Writer) *ConfigBuilder {
	b.cfg.Log.File = w
	return b
}

// WithWorkers sets the number of concurrent replay workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the report writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}
