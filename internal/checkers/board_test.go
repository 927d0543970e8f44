package checkers

import (
	"errors"
	"strings"
	"testing"

	cerrors "github.com/lgbarn/checkers-go/internal/errors"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("twelve pieces per colour", func(t *testing.T) {
		if got := b.Count(Red); got != PiecesPerSide {
			t.Errorf("Count(Red) = %d; want %d", got, PiecesPerSide)
		}
		if got := b.Count(Black); got != PiecesPerSide {
			t.Errorf("Count(Black) = %d; want %d", got, PiecesPerSide)
		}
	})

	t.Run("pieces on dark squares of their start rows", func(t *testing.T) {
		for _, p := range b.Pieces() {
			if ColourOf(p.Pos) != Dark {
				t.Errorf("%v stands on a light square", p)
			}
			if p.Pos.Row == 3 || p.Pos.Row == 4 {
				t.Errorf("%v stands in the empty middle rows", p)
			}
			if p.Colour == Red && p.Pos.Row > RedLastStartRow {
				t.Errorf("%v outside rows 0-2", p)
			}
			if p.Colour == Black && p.Pos.Row < BlackFirstStartRow {
				t.Errorf("%v outside rows 5-7", p)
			}
			if p.King {
				t.Errorf("%v starts as a king", p)
			}
		}
	})

	t.Run("occupancy mirrors piece positions", func(t *testing.T) {
		for _, p := range b.Pieces() {
			got, ok := b.PieceAt(p.Pos)
			if !ok || got != p {
				t.Errorf("PieceAt(%s) = %v, %t; want %v", p.Pos, got, ok, p)
			}
		}
	})

	t.Run("piece ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, p := range b.Pieces() {
			if seen[p.ID.String()] {
				t.Errorf("duplicate id %s", p.ID)
			}
			seen[p.ID.String()] = true
		}
	})
}

func TestSquareColours(t *testing.T) {
	b := NewEmptyBoard()
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq, ok := b.Square(Pos(row, col))
			if !ok {
				t.Fatalf("Square(%d,%d) missing", row, col)
			}
			want := Light
			if (row+col)%2 == 1 {
				want = Dark
			}
			if sq.Colour != want {
				t.Errorf("Square(%d,%d).Colour = %v; want %v", row, col, sq.Colour, want)
			}
		}
	}
	if _, ok := b.Square(Pos(8, 0)); ok {
		t.Error("Square(8,0) should not exist")
	}
}

func TestBoard_OutOfBoundsQueries(t *testing.T) {
	b := NewBoard()
	for _, pos := range []Position{Pos(-1, 0), Pos(0, -1), Pos(8, 1), Pos(1, 8), Pos(100, -100)} {
		if b.InBounds(pos) {
			t.Errorf("InBounds(%s) = true", pos)
		}
		if b.IsEmpty(pos) {
			t.Errorf("IsEmpty(%s) = true", pos)
		}
		if b.IsOccupiedByColour(pos, Red) || b.IsOccupiedByColour(pos, Black) {
			t.Errorf("IsOccupiedByColour(%s) = true", pos)
		}
		if p, ok := b.PieceAt(pos); ok || p != nil {
			t.Errorf("PieceAt(%s) = %v, %t; want nil, false", pos, p, ok)
		}
	}
}

func TestBoard_PieceAtEmptySquare(t *testing.T) {
	b := NewBoard()
	p, ok := b.PieceAt(Pos(3, 2))
	if ok || p != nil {
		t.Errorf("PieceAt(3,2) = %v, %t; want nil, false", p, ok)
	}
	if !b.IsEmpty(Pos(3, 2)) {
		t.Error("IsEmpty(3,2) = false; want true")
	}
	if !b.IsOccupiedByColour(Pos(5, 0), Black) {
		t.Error("IsOccupiedByColour((5,0), Black) = false; want true")
	}
	if b.IsOccupiedByColour(Pos(5, 0), Red) {
		t.Error("IsOccupiedByColour((5,0), Red) = true; want false")
	}
}

func TestBoard_RelocatePiece(t *testing.T) {
	b := NewBoard()
	p, _ := b.PieceAt(Pos(5, 2))

	if err := b.RelocatePiece(p, Pos(4, 3)); err != nil {
		t.Fatalf("RelocatePiece: %v", err)
	}
	if p.Pos != Pos(4, 3) {
		t.Errorf("Pos = %s; want (4,3)", p.Pos)
	}
	if !b.IsEmpty(Pos(5, 2)) {
		t.Error("origin still occupied")
	}
	if got, _ := b.PieceAt(Pos(4, 3)); got != p {
		t.Errorf("PieceAt(4,3) = %v; want %v", got, p)
	}

	tests := []struct {
		name string
		to   Position
		want error
	}{
		{"occupied", Pos(5, 4), cerrors.ErrIllegalMove},
		{"light square", Pos(4, 4), cerrors.ErrIllegalMove},
		{"off board", Pos(8, 1), cerrors.ErrOutOfBounds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.RelocatePiece(p, tt.to)
			if !errors.Is(err, tt.want) {
				t.Errorf("RelocatePiece(%s) = %v; want %v", tt.to, err, tt.want)
			}
			if p.Pos != Pos(4, 3) {
				t.Errorf("piece moved to %s after failed relocation", p.Pos)
			}
		})
	}
}

func TestBoard_RemovePiece(t *testing.T) {
	b := NewBoard()
	p, _ := b.PieceAt(Pos(2, 1))

	if !b.RemovePiece(p) {
		t.Fatal("RemovePiece = false; want true")
	}
	if b.RemovePiece(p) {
		t.Error("second RemovePiece = true; want false")
	}
	if b.RemovePiece(nil) {
		t.Error("RemovePiece(nil) = true; want false")
	}
	if got := b.Count(Red); got != PiecesPerSide-1 {
		t.Errorf("Count(Red) = %d; want %d", got, PiecesPerSide-1)
	}
	if !b.IsEmpty(Pos(2, 1)) {
		t.Error("square still occupied after removal")
	}
	if _, ok := b.PieceByID(p.ID); ok {
		t.Error("PieceByID found a removed piece")
	}
}

func TestBoard_Clone(t *testing.T) {
	b := NewBoard()
	c := b.Clone()

	orig, _ := b.PieceAt(Pos(5, 2))
	copied, _ := c.PieceAt(Pos(5, 2))
	if orig == copied {
		t.Fatal("clone shares piece pointers")
	}
	if orig.ID != copied.ID {
		t.Errorf("clone changed id: %s vs %s", orig.ID, copied.ID)
	}

	if err := c.RelocatePiece(copied, Pos(4, 3)); err != nil {
		t.Fatalf("RelocatePiece on clone: %v", err)
	}
	if orig.Pos != Pos(5, 2) || !b.IsEmpty(Pos(4, 3)) {
		t.Error("mutating the clone changed the original")
	}
}

func TestBoard_String(t *testing.T) {
	b := NewBoard()
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != BoardSize+1 {
		t.Fatalf("String() has %d lines; want %d", len(lines), BoardSize+1)
	}
	if lines[1] != "0  r r r r" {
		t.Errorf("row 0 = %q", lines[1])
	}
	if lines[4] != "3 . . . . " {
		t.Errorf("row 3 = %q", lines[4])
	}
	if lines[8] != "7 b b b b " {
		t.Errorf("row 7 = %q", lines[8])
	}
}
