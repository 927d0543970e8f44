package engine

import (
	"fmt"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// Outcome reports the board changes made by a move.
type Outcome struct {
	Captured []*checkers.Piece
	Promoted bool
}

// Apply commits move to the board: it removes every piece captured along
// the chain, relocates the moving piece to its destination and crowns it
// on its promotion row. The move is checked before anything changes, so
// a rejected move leaves the board untouched.
func Apply(board *checkers.Board, move checkers.Move) (Outcome, error) {
	if move == nil {
		return Outcome{}, fmt.Errorf("nil move: %w", errors.ErrInvalidTarget)
	}
	piece := move.Mover()
	if !board.Contains(piece) || piece.Pos != move.Origin() {
		return Outcome{}, &errors.IllegalMoveError{
			Err:    errors.ErrIllegalMove,
			Move:   move.String(),
			Reason: "moving piece is not on the origin square",
		}
	}

	switch m := move.(type) {
	case *checkers.Simple:
		return applySimple(board, m)
	case *checkers.Capture:
		return applyCapture(board, m)
	default:
		return Outcome{}, &errors.IllegalMoveError{
			Err:    errors.ErrIllegalMove,
			Move:   move.String(),
			Reason: "unknown move kind",
		}
	}
}

// applySimple applies a one-step move.
func applySimple(board *checkers.Board, m *checkers.Simple) (Outcome, error) {
	if !isDiagonalStep(m.From, m.To, 1) {
		return Outcome{}, illegal(m.Piece, m, "not a single diagonal step")
	}
	if err := board.RelocatePiece(m.Piece, m.To); err != nil {
		return Outcome{}, err
	}
	return Outcome{Promoted: promote(m.Piece)}, nil
}

// applyCapture applies a capture chain.
func applyCapture(board *checkers.Board, m *checkers.Capture) (Outcome, error) {
	if err := checkChain(board, m); err != nil {
		return Outcome{}, err
	}

	var out Outcome
	for seg := m; seg != nil; seg = seg.Next {
		board.RemovePiece(seg.Captured)
		out.Captured = append(out.Captured, seg.Captured)
	}
	if err := board.RelocatePiece(m.Piece, m.FinalDestination()); err != nil {
		// checkChain guarantees the destination is free.
		return out, err
	}
	out.Promoted = promote(m.Piece)
	return out, nil
}

// checkChain verifies that every segment jumps an active opponent piece
// sitting between its squares, that segments connect, and that the
// destination is free.
func checkChain(board *checkers.Board, m *checkers.Capture) error {
	seen := make(map[*checkers.Piece]bool)
	at := m.From
	for seg := m; seg != nil; seg = seg.Next {
		if seg.Piece != m.Piece {
			return illegal(m.Piece, m, "chain mixes moving pieces")
		}
		if seg.From != at {
			return illegal(m.Piece, m, "chain segments do not connect")
		}
		if !isDiagonalStep(seg.From, seg.To, 2) {
			return illegal(m.Piece, m, "jump is not two diagonal steps")
		}
		victim := seg.Captured
		if !board.Contains(victim) || victim.Colour == m.Piece.Colour {
			return illegal(m.Piece, m, "jumped square holds no opponent piece")
		}
		mid := checkers.Pos((seg.From.Row+seg.To.Row)/2, (seg.From.Col+seg.To.Col)/2)
		if victim.Pos != mid {
			return illegal(m.Piece, m, "captured piece is not between the jump squares")
		}
		if seen[victim] {
			return illegal(m.Piece, m, "piece captured twice")
		}
		seen[victim] = true
		at = seg.To
	}
	if !board.IsEmpty(at) {
		return illegal(m.Piece, m, "destination is occupied")
	}
	return nil
}

// promote crowns a man standing on its promotion row. Kings stay kings.
func promote(p *checkers.Piece) bool {
	if p.King || p.Pos.Row != p.Colour.PromotionRow() {
		return false
	}
	p.King = true
	return true
}

func isDiagonalStep(from, to checkers.Position, n int) bool {
	dr, dc := to.Row-from.Row, to.Col-from.Col
	return (dr == n || dr == -n) && (dc == n || dc == -n)
}

func illegal(p *checkers.Piece, m checkers.Move, reason string) error {
	return &errors.IllegalMoveError{
		Err:    errors.ErrIllegalMove,
		Player: p.Colour.String(),
		Move:   m.String(),
		Reason: reason,
	}
}
