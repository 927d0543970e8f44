// Package config provides configuration for the checkers engine and tools.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Verbosity levels for LogFile commentary.
const (
	Silent   = 0 // nothing
	Turns    = 1 // one line per completed turn
	Detailed = 2 // every applied move and selection
)

// Config holds engine configuration and the diagnostic output stream.
type Config struct {
	// Rules holds the rule variations the engine supports.
	Rules *RulesConfig

	// Verbosity controls how much is written to LogFile.
	Verbosity int

	// LogFile receives diagnostic commentary.
	LogFile io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:     NewRulesConfig(),
		Verbosity: Silent,
		LogFile:   os.Stderr,
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Rules == nil {
		return fmt.Errorf("rules not set: %w", errors.ErrInvalidConfig)
	}
	if c.Rules.FirstPlayer != checkers.Red && c.Rules.FirstPlayer != checkers.Black {
		return fmt.Errorf("first player %d: %w", c.Rules.FirstPlayer, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > Detailed {
		return fmt.Errorf("verbosity %d out of range [%d,%d]: %w",
			c.Verbosity, Silent, Detailed, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes commentary to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format, args...)
}
