// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
)

var (
	// Search options
	depth   = flag.Int("depth", 3, "Number of turns to search")
	divide  = flag.Bool("divide", false, "Print node counts per root move")
	unique  = flag.Bool("unique", false, "Also count distinct leaf positions")
	workers = flag.Int("workers", 0, "Number of worker goroutines (0 = one per CPU)")

	// Rules
	forced       = flag.Bool("forced", false, "Board-wide forced capture")
	firstPlayer  = flag.String("first", "black", "Colour that moves first: red or black")
	promotionEnd = flag.Bool("promotion-ends-turn", true, "Crowning a man ends its capture chain")

	// Output
	jsonOutput = flag.Bool("json", false, "Output the report as JSON")
	dump       = flag.Bool("dump", false, "Dump the root position and moves to the log")

	// Logging
	verbosity = flag.Int("v", 0, "Verbosity: 0 silent, 1 turns, 2 every move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// parseColour maps a flag value to a colour.
func parseColour(s string) (checkers.Colour, error) {
	switch strings.ToLower(s) {
	case "red", "r":
		return checkers.Red, nil
	case "black", "b":
		return checkers.Black, nil
	}
	return 0, fmt.Errorf("unknown colour %q", s)
}

// applyFlags applies command-line flags to the configuration.
func applyFlags(b *config.ConfigBuilder) error {
	first, err := parseColour(*firstPlayer)
	if err != nil {
		return err
	}
	b.WithForcedCapture(*forced).
		WithFirstPlayer(first).
		WithPromotionEndsTurn(*promotionEnd).
		WithVerbosity(*verbosity)
	return nil
}

// optionsFromFlags collects the search and output flags.
func optionsFromFlags() perftOptions {
	return perftOptions{
		depth:   *depth,
		divide:  *divide,
		unique:  *unique,
		workers: *workers,
		json:    *jsonOutput,
		dump:    *dump,
	}
}
