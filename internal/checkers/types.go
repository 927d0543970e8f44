// Package checkers provides core checkers types: colours, positions,
// squares, pieces, the board and moves.
package checkers

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Red Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == Black {
		return "Black"
	}
	return "Red"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == Black {
		return Red
	}
	return Black
}

// Forward returns the row offset of a forward step: +1 for Red, -1 for Black.
func (c Colour) Forward() int {
	if c == Black {
		return -1
	}
	return 1
}

// PromotionRow returns the row on which a man of this colour is crowned.
func (c Colour) PromotionRow() int {
	if c == Black {
		return 0
	}
	return BoardSize - 1
}

// Board dimensions and layout.
const (
	BoardSize = 8

	// Rows populated at the start of a game, inclusive.
	RedLastStartRow    = 2
	BlackFirstStartRow = 5

	PiecesPerSide = 12
)

// Position is a (row, column) coordinate on the board.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// InBounds reports whether the position lies inside the 8x8 grid.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Index returns the 0..63 square index, or -1 when out of bounds.
func (p Position) Index() int {
	if !p.InBounds() {
		return -1
	}
	return p.Row*BoardSize + p.Col
}

// Direction is a diagonal unit step.
type Direction struct {
	DRow int
	DCol int
}

// Colour-independent diagonals. Left and right are seen from the board's
// column order, not from the player's seat.
const (
	Left  = -1
	Right = 1
)

// StepDirections returns the diagonals a piece may step or jump along:
// forward-left and forward-right always, plus both backward diagonals for kings.
func StepDirections(c Colour, king bool) []Direction {
	fwd := c.Forward()
	dirs := []Direction{
		{DRow: fwd, DCol: Left},
		{DRow: fwd, DCol: Right},
	}
	if king {
		dirs = append(dirs,
			Direction{DRow: -fwd, DCol: Left},
			Direction{DRow: -fwd, DCol: Right},
		)
	}
	return dirs
}

// IsBackward reports whether d moves against the forward direction of c.
func (d Direction) IsBackward(c Colour) bool {
	return d.DRow == -c.Forward()
}

// SquareColour is the fixed colour of a board square.
type SquareColour int

const (
	Light SquareColour = iota
	Dark
)

// String returns the string representation of a square colour.
func (s SquareColour) String() string {
	if s == Dark {
		return "Dark"
	}
	return "Light"
}

// ColourOf returns the colour of the square at p. It depends only on
// (row + col) mod 2; pieces stand on dark squares.
func ColourOf(p Position) SquareColour {
	if (p.Row+p.Col)%2 == 1 {
		return Dark
	}
	return Light
}

// Square is an immutable board cell.
type Square struct {
	Pos    Position
	Colour SquareColour
}

// IsDark reports whether pieces may stand on the square.
func (s Square) IsDark() bool {
	return s.Colour == Dark
}
