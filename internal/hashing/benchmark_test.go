package hashing

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

func BenchmarkGenerateZobristHash(b *testing.B) {
	board := checkers.NewBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GenerateZobristHash(board, checkers.Black)
	}
}

func BenchmarkPositionCounter_CheckAndAdd(b *testing.B) {
	c := NewPositionCounter(0)
	for i := 0; i < b.N; i++ {
		c.CheckAndAdd(uint64(i % 4096))
	}
}
