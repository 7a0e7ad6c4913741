package config

// RulesConfig controls how a game applies moves.
type RulesConfig struct {
	// EnforceTurnOrder rejects moves by the side not on move.
	EnforceTurnOrder bool

	// VerifyIndex checks the position index against the grid after every
	// accepted move. Intended for tests and debugging.
	VerifyIndex bool
}

// NewRulesConfig creates a new RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		EnforceTurnOrder: true,
	}
}
