// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/arkoted-go/internal/config"
)

var (
	// Rules
	enforceTurns = flag.Bool("turns", true, "Reject moves by the side not on move")
	verifyIndex  = flag.Bool("verify", false, "Check the position index after every move")

	// Replay
	strictMode = flag.Bool("strict", false, "Stop a script at its first rejected move and fail")
	showBoard  = flag.Bool("board", false, "Print the final board of each script")
	workers    = flag.Int("j", 0, "Number of scripts replayed in parallel (0 = ARKOTED_WORKERS or 1)")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output reports in JSON format")
	logLevel   = flag.String("v", "", "Log level: debug, info, warn, error, fatal")
	logFile    = flag.String("l", "", "Write log entries to this file (default: stderr)")
	envFile    = flag.String("env", ".env", "Environment file with ARKOTED_* settings")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies explicitly set command-line flags to the configuration,
// so they take precedence over the environment.
func applyFlags(cfg *config.Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["turns"] {
		cfg.Rules.EnforceTurnOrder = *enforceTurns
	}
	if set["verify"] {
		cfg.Rules.VerifyIndex = *verifyIndex
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
}

// replayOptionsFromFlags collects the per-run replay switches.
func replayOptionsFromFlags() replayOptions {
	return replayOptions{
		Strict:    *strictMode,
		ShowBoard: *showBoard,
		JSON:      *jsonOutput,
	}
}
