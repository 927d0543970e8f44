package hashing

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

func TestZobristHashConsistency(t *testing.T) {
	hash1 := GenerateZobristHash(checkers.NewBoard(), checkers.Black)
	hash2 := GenerateZobristHash(checkers.NewBoard(), checkers.Black)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := checkers.NewBoard()
	board2 := checkers.NewBoard()
	p, _ := board2.PieceAt(checkers.Pos(5, 2))
	if err := board2.RelocatePiece(p, checkers.Pos(4, 3)); err != nil {
		t.Fatal(err)
	}

	if GenerateZobristHash(board1, checkers.Black) == GenerateZobristHash(board2, checkers.Black) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashSideToMove(t *testing.T) {
	board := checkers.NewBoard()
	if GenerateZobristHash(board, checkers.Black) == GenerateZobristHash(board, checkers.Red) {
		t.Error("Side to move does not affect the hash")
	}
}

func TestZobristHashKingFlag(t *testing.T) {
	board := checkers.NewEmptyBoard()
	p, err := board.Place(checkers.Red, checkers.Pos(3, 2), false)
	if err != nil {
		t.Fatal(err)
	}
	man := GenerateZobristHash(board, checkers.Red)
	p.King = true
	if GenerateZobristHash(board, checkers.Red) == man {
		t.Error("Crowning a piece does not change the hash")
	}
}

func TestZobristHashIgnoresPieceIdentity(t *testing.T) {
	// Two boards built separately have different piece IDs but the same
	// position, so they must hash alike.
	a := checkers.NewBoard()
	b := checkers.NewBoard()
	if GenerateZobristHash(a, checkers.Red) != GenerateZobristHash(b, checkers.Red) {
		t.Error("Hash depends on piece identity")
	}
}

func TestPositionCounter(t *testing.T) {
	c := NewPositionCounter(0)

	if c.CheckAndAdd(1) {
		t.Error("First hash reported as seen")
	}
	if !c.CheckAndAdd(1) {
		t.Error("Repeated hash not reported as seen")
	}
	c.CheckAndAdd(2)

	if got := c.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d; want 2", got)
	}
	if got := c.DuplicateCount(); got != 1 {
		t.Errorf("DuplicateCount() = %d; want 1", got)
	}

	c.Reset()
	if c.UniqueCount() != 0 || c.DuplicateCount() != 0 {
		t.Error("Reset() did not clear the counter")
	}
}

func TestPositionCounter_Capacity(t *testing.T) {
	c := NewPositionCounter(2)
	c.CheckAndAdd(1)
	c.CheckAndAdd(2)
	if !c.IsFull() {
		t.Fatal("IsFull() = false at capacity")
	}
	if c.CheckAndAdd(3) {
		t.Error("Dropped hash reported as seen")
	}
	if got := c.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d; want 2", got)
	}
	if !c.CheckAndAdd(1) {
		t.Error("Known hash not found when full")
	}
}
