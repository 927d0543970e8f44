package checkers

import (
	"fmt"

	"github.com/google/uuid"
)

// Piece is a player's playing unit. Its Pos is the source of truth for
// which square it occupies; only the Board may change it.
type Piece struct {
	ID     uuid.UUID
	Colour Colour
	Pos    Position
	King   bool
}

// NewPiece creates a man of the given colour at pos with a fresh ID.
func NewPiece(c Colour, pos Position) *Piece {
	return &Piece{
		ID:     uuid.New(),
		Colour: c,
		Pos:    pos,
	}
}

// Letter returns the diagram letter: r/b for men, R/B for kings.
func (p *Piece) Letter() byte {
	var l byte = 'r'
	if p.Colour == Black {
		l = 'b'
	}
	if p.King {
		l -= 'a' - 'A'
	}
	return l
}

// Directions returns the diagonals the piece may move along.
func (p *Piece) Directions() []Direction {
	return StepDirections(p.Colour, p.King)
}

// String returns e.g. "Black man at (5,2)" or "Red king at (7,0)".
func (p *Piece) String() string {
	if p == nil {
		return "<no piece>"
	}
	kind := "man"
	if p.King {
		kind = "king"
	}
	return fmt.Sprintf("%s %s at %s", p.Colour, kind, p.Pos)
}

// clone returns a detached copy that keeps the same ID.
func (p *Piece) clone() *Piece {
	c := *p
	return &c
}
