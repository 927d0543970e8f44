package config

import (
	"io"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

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

// WithForcedCapture enables the board-wide forced capture rule.
func (b *ConfigBuilder) WithForcedCapture(enabled bool) *ConfigBuilder {
	b.cfg.Rules.ForcedCapture = enabled
	return b
}

// WithFirstPlayer sets the colour that moves first.
func (b *ConfigBuilder) WithFirstPlayer(c checkers.Colour) *ConfigBuilder {
	b.cfg.Rules.FirstPlayer = c
	return b
}

// WithPromotionEndsTurn controls whether crowning stops a capture chain.
func (b *ConfigBuilder) WithPromotionEndsTurn(enabled bool) *ConfigBuilder {
	b.cfg.Rules.PromotionEndsTurn = enabled
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
