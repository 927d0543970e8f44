package config

import "github.com/lgbarn/checkers-go/internal/checkers"

// RulesConfig holds the rule variations of a game.
type RulesConfig struct {
	// ForcedCapture requires the player to capture with some piece whenever
	// any of their pieces can capture. When false, only the piece being
	// moved is restricted to captures.
	ForcedCapture bool

	// FirstPlayer is the colour that moves first.
	FirstPlayer checkers.Colour

	// PromotionEndsTurn ends the turn when a man is crowned during a capture,
	// even if the new king could jump again.
	PromotionEndsTurn bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{
		ForcedCapture:     false,
		FirstPlayer:       checkers.Black,
		PromotionEndsTurn: true,
	}
}
