package checkers

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/checkers-go/internal/errors"
)

// Board is the single source of truth for a game: the fixed 8x8 grid of
// squares plus the active pieces and their positions.
type Board struct {
	squares [BoardSize][BoardSize]Square

	// occupant indexes pieces by square; it mirrors each piece's Pos.
	occupant [BoardSize][BoardSize]*Piece

	// pieces holds the active pieces in insertion order.
	pieces []*Piece
}

// NewEmptyBoard creates a board with its squares and no pieces.
func NewEmptyBoard() *Board {
	b := &Board{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := Pos(row, col)
			b.squares[row][col] = Square{Pos: p, Colour: ColourOf(p)}
		}
	}
	return b
}

// NewBoard creates a board with the standard starting layout: Red men on
// the dark squares of rows 0-2, Black men on the dark squares of rows 5-7.
func NewBoard() *Board {
	b := NewEmptyBoard()
	for row := 0; row < BoardSize; row++ {
		if row > RedLastStartRow && row < BlackFirstStartRow {
			continue
		}
		colour := Red
		if row >= BlackFirstStartRow {
			colour = Black
		}
		for col := 0; col < BoardSize; col++ {
			if b.squares[row][col].IsDark() {
				b.add(NewPiece(colour, Pos(row, col)))
			}
		}
	}
	return b
}

// Place puts a new piece on an empty dark square. It is intended for
// setting up custom positions.
func (b *Board) Place(c Colour, pos Position, king bool) (*Piece, error) {
	if err := b.checkTarget(pos); err != nil {
		return nil, err
	}
	p := NewPiece(c, pos)
	p.King = king
	b.add(p)
	return p, nil
}

func (b *Board) add(p *Piece) {
	b.pieces = append(b.pieces, p)
	b.occupant[p.Pos.Row][p.Pos.Col] = p
}

// InBounds reports whether pos lies on the board.
func (b *Board) InBounds(pos Position) bool {
	return pos.InBounds()
}

// Square returns the square at pos.
func (b *Board) Square(pos Position) (Square, bool) {
	if !pos.InBounds() {
		return Square{}, false
	}
	return b.squares[pos.Row][pos.Col], true
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos Position) bool {
	return pos.InBounds() && b.occupant[pos.Row][pos.Col] == nil
}

// IsOccupiedByColour reports whether a piece of colour c stands on pos.
func (b *Board) IsOccupiedByColour(pos Position, c Colour) bool {
	p, ok := b.PieceAt(pos)
	return ok && p.Colour == c
}

// PieceAt returns the piece on pos. The second result is false for empty
// or off-board positions.
func (b *Board) PieceAt(pos Position) (*Piece, bool) {
	if !pos.InBounds() {
		return nil, false
	}
	p := b.occupant[pos.Row][pos.Col]
	return p, p != nil
}

// Contains reports whether p is an active piece of this board.
func (b *Board) Contains(p *Piece) bool {
	if p == nil {
		return false
	}
	cur, ok := b.PieceAt(p.Pos)
	return ok && cur == p
}

// PieceByID returns the active piece with the given ID.
func (b *Board) PieceByID(id uuid.UUID) (*Piece, bool) {
	for _, p := range b.pieces {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// RemovePiece takes p off the board. It returns false if p was not active.
func (b *Board) RemovePiece(p *Piece) bool {
	if !b.Contains(p) {
		return false
	}
	for i, cur := range b.pieces {
		if cur == p {
			b.pieces = append(b.pieces[:i], b.pieces[i+1:]...)
			break
		}
	}
	b.occupant[p.Pos.Row][p.Pos.Col] = nil
	return true
}

// RelocatePiece moves p to an empty dark square.
func (b *Board) RelocatePiece(p *Piece, to Position) error {
	if !b.Contains(p) {
		return fmt.Errorf("relocate %v: piece not on board: %w", p, errors.ErrIllegalMove)
	}
	if err := b.checkTarget(to); err != nil {
		return fmt.Errorf("relocate %v: %w", p, err)
	}
	b.occupant[p.Pos.Row][p.Pos.Col] = nil
	p.Pos = to
	b.occupant[to.Row][to.Col] = p
	return nil
}

// checkTarget verifies that a piece may be put on pos.
func (b *Board) checkTarget(pos Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("square %s: %w", pos, errors.ErrOutOfBounds)
	}
	if !b.squares[pos.Row][pos.Col].IsDark() {
		return fmt.Errorf("square %s is light: %w", pos, errors.ErrIllegalMove)
	}
	if b.occupant[pos.Row][pos.Col] != nil {
		return fmt.Errorf("square %s is occupied: %w", pos, errors.ErrIllegalMove)
	}
	return nil
}

// Pieces returns a copy of the active piece list.
func (b *Board) Pieces() []*Piece {
	out := make([]*Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

// PiecesOf returns the active pieces of colour c in board order
// (row-major), which keeps move enumeration deterministic.
func (b *Board) PiecesOf(c Colour) []*Piece {
	var out []*Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.occupant[row][col]; p != nil && p.Colour == c {
				out = append(out, p)
			}
		}
	}
	return out
}

// Count returns the number of active pieces of colour c.
func (b *Board) Count(c Colour) int {
	n := 0
	for _, p := range b.pieces {
		if p.Colour == c {
			n++
		}
	}
	return n
}

// Clone creates a deep copy of the board. Pieces keep their IDs so moves
// can be matched across copies.
func (b *Board) Clone() *Board {
	nb := &Board{squares: b.squares}
	nb.pieces = make([]*Piece, 0, len(b.pieces))
	for _, p := range b.pieces {
		nb.add(p.clone())
	}
	return nb
}

// String renders the board with row 0 at the top. Light squares are
// blank, empty dark squares are '.'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  01234567\n")
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('0' + row))
		sb.WriteByte(' ')
		for col := 0; col < BoardSize; col++ {
			switch {
			case b.occupant[row][col] != nil:
				sb.WriteByte(b.occupant[row][col].Letter())
			case b.squares[row][col].IsDark():
				sb.WriteByte('.')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
