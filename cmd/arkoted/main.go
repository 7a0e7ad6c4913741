// arkoted replays chess move scripts through the rules engine and reports
// which moves were accepted.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/arkoted-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("arkoted version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := cfg.LoadEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg, flag.Args(), replayOptionsFromFlags()))
}

// run replays the scripts named by args and returns the exit status.
func run(cfg *config.Config, args []string, opts replayOptions) int {
	logger := cfg.Logger()
	items := loadScripts(args, os.Stdin)
	logger.WithField("scripts", len(items)).WithField("workers", cfg.Workers).Debug("replaying")

	failed, err := replayAll(cfg, logger, items, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return 1
	}
	if failed > 0 {
		return 1
	}
	return 0
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.Log.File = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, `arkoted - chess move script replay

Usage: arkoted [options] [script ...]

Each script line holds one move as two squares, either algebraic ("e2 e4")
or column,row with row 0 at Black's back rank ("4,6 4,4"). Blank lines and
lines starting with # are skipped. Without arguments the script is read
from standard input.

Options:
`)
	flag.PrintDefaults()
}
