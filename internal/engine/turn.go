package engine

import (
	"slices"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// TurnState is the state of the turn machine.
type TurnState int

const (
	AwaitingSelection TurnState = iota
	PieceSelected
	MidChainCapture
)

// String returns the string representation of a turn state.
func (s TurnState) String() string {
	switch s {
	case PieceSelected:
		return "PieceSelected"
	case MidChainCapture:
		return "MidChainCapture"
	default:
		return "AwaitingSelection"
	}
}

// TurnController tracks whose turn it is and holds the turn open while a
// capture chain is being continued.
type TurnController struct {
	current  checkers.Colour
	selected *checkers.Piece
	midChain bool

	// visited holds the chain origin and every square landed on so far
	// this turn; it is empty unless midChain is set.
	visited []checkers.Position
}

// NewTurnController creates a controller with first on move.
func NewTurnController(first checkers.Colour) *TurnController {
	return &TurnController{current: first}
}

// CurrentPlayer returns the colour on move.
func (t *TurnController) CurrentPlayer() checkers.Colour {
	return t.current
}

// IsMidCaptureChain reports whether the selected piece must keep capturing.
func (t *TurnController) IsMidCaptureChain() bool {
	return t.midChain
}

// Selected returns the selected piece, if any.
func (t *TurnController) Selected() (*checkers.Piece, bool) {
	return t.selected, t.selected != nil
}

// State returns the current state of the turn machine.
func (t *TurnController) State() TurnState {
	switch {
	case t.midChain:
		return MidChainCapture
	case t.selected != nil:
		return PieceSelected
	default:
		return AwaitingSelection
	}
}

// Visited returns the squares the chain has touched this turn.
func (t *TurnController) Visited() []checkers.Position {
	return slices.Clone(t.visited)
}

// Select makes p the selected piece. Mid-chain only the capturing piece
// may be selected.
func (t *TurnController) Select(p *checkers.Piece) error {
	if p == nil {
		return errors.ErrInvalidTarget
	}
	if t.midChain && p != t.selected {
		return errors.ErrMustContinueCapture
	}
	if p.Colour != t.current {
		return errors.ErrNotYourTurn
	}
	t.selected = p
	return nil
}

// Deselect clears the selection. It has no effect mid-chain.
func (t *TurnController) Deselect() bool {
	if t.midChain {
		return false
	}
	t.selected = nil
	return true
}

// CompleteSimple records a simple move; the turn passes.
func (t *TurnController) CompleteSimple() {
	t.endTurn()
}

// CompleteCapture records an applied capture chain. When continues is set
// the same player keeps the turn and the same piece must capture again;
// otherwise the turn passes.
func (t *TurnController) CompleteCapture(c *checkers.Capture, continues bool) {
	if !continues {
		t.endTurn()
		return
	}
	if !t.midChain {
		t.visited = append(t.visited[:0], c.From)
	}
	t.visited = append(t.visited, c.Path()...)
	t.selected = c.Piece
	t.midChain = true
}

func (t *TurnController) endTurn() {
	t.selected = nil
	t.midChain = false
	t.visited = nil
	t.current = t.current.Opposite()
}

// clone copies the controller, re-pointing the selection at the matching
// piece of board.
func (t *TurnController) clone(board *checkers.Board) *TurnController {
	c := &TurnController{
		current:  t.current,
		midChain: t.midChain,
		visited:  slices.Clone(t.visited),
	}
	if t.selected != nil {
		c.selected, _ = board.PieceByID(t.selected.ID)
	}
	return c
}
