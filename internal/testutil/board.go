package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// BoardFromDiagram builds a board from eight rows, row 0 first. Each row
// has eight cells: r/b for men, R/B for kings, and '.', '-' or ' ' for an
// empty square. Pieces must stand on dark squares.
//
//	board := BoardFromDiagram(t,
//		"--------",
//		"--------",
//		"--------",
//		"--------",
//		"---r----",
//		"--b-----",
//		"--------",
//		"--------",
//	)
func BoardFromDiagram(t testing.TB, rows ...string) *checkers.Board {
	t.Helper()
	if len(rows) != checkers.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), checkers.BoardSize)
	}
	b := checkers.NewEmptyBoard()
	for row, line := range rows {
		if len(line) != checkers.BoardSize {
			t.Fatalf("diagram row %d is %q, want %d cells", row, line, checkers.BoardSize)
		}
		for col := 0; col < checkers.BoardSize; col++ {
			cell := line[col]
			if strings.IndexByte(".- ", cell) >= 0 {
				continue
			}
			colour, king, ok := parseCell(cell)
			if !ok {
				t.Fatalf("diagram cell (%d,%d) = %q is not a piece", row, col, cell)
			}
			if _, err := b.Place(colour, checkers.Pos(row, col), king); err != nil {
				t.Fatalf("diagram cell (%d,%d): %v", row, col, err)
			}
		}
	}
	return b
}

func parseCell(c byte) (colour checkers.Colour, king, ok bool) {
	switch c {
	case 'r':
		return checkers.Red, false, true
	case 'R':
		return checkers.Red, true, true
	case 'b':
		return checkers.Black, false, true
	case 'B':
		return checkers.Black, true, true
	}
	return 0, false, false
}

// MustPieceAt returns the piece on pos or stops the test.
func MustPieceAt(t testing.TB, b *checkers.Board, pos checkers.Position) *checkers.Piece {
	t.Helper()
	p, ok := b.PieceAt(pos)
	if !ok {
		t.Fatalf("no piece at %s:\n%s", pos, b)
	}
	return p
}

// Destinations returns the destination of every move.
func Destinations(moves []checkers.Move) []checkers.Position {
	out := make([]checkers.Position, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.Destination())
	}
	return out
}

// CaptureAt returns the capture chain among moves whose path equals path.
func CaptureAt(t testing.TB, moves []checkers.Move, path ...checkers.Position) *checkers.Capture {
	t.Helper()
	for _, m := range moves {
		c, ok := m.(*checkers.Capture)
		if !ok {
			continue
		}
		got := c.Path()
		if len(got) != len(path) {
			continue
		}
		match := true
		for i := range got {
			if got[i] != path[i] {
				match = false
				break
			}
		}
		if match {
			return c
		}
	}
	t.Fatalf("no capture with path %v among %v", path, moves)
	return nil
}
