// Package hashing provides position hashing and distinct-position counting
// for checkers boards.
package hashing

import (
	"github.com/lgbarn/checkers-go/internal/checkers"
)

// Zobrist keys: one per colour, kind and square, plus one for Black to move.
var (
	pieceKeys [2][2][checkers.BoardSize * checkers.BoardSize]uint64
	blackKey  uint64
)

func init() {
	// A fixed seed keeps hashes stable across runs.
	state := uint64(0x9E3779B97F4A7C15)
	for c := range pieceKeys {
		for k := range pieceKeys[c] {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = splitmix64(&state)
			}
		}
	}
	blackKey = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash hashes the pieces on board and the side to move.
func GenerateZobristHash(board *checkers.Board, toMove checkers.Colour) uint64 {
	var hash uint64
	for _, p := range board.Pieces() {
		kind := 0
		if p.King {
			kind = 1
		}
		hash ^= pieceKeys[p.Colour][kind][p.Pos.Index()]
	}
	if toMove == checkers.Black {
		hash ^= blackKey
	}
	return hash
}

// PositionCounter tracks seen position hashes.
type PositionCounter struct {
	// seen stores how many times each hash was offered
	seen map[uint64]int
	// duplicateCount tracks hashes offered more than once
	duplicateCount int
	// maxCapacity limits the number of distinct hashes (0 = unlimited)
	maxCapacity int
}

// NewPositionCounter creates a counter. maxCapacity of 0 means unlimited.
func NewPositionCounter(maxCapacity int) *PositionCounter {
	return &PositionCounter{
		seen:        make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records hash and reports whether it had been seen before.
// New hashes are dropped once the counter is full.
func (c *PositionCounter) CheckAndAdd(hash uint64) bool {
	if n, ok := c.seen[hash]; ok {
		c.seen[hash] = n + 1
		c.duplicateCount++
		return true
	}
	if c.IsFull() {
		return false
	}
	c.seen[hash] = 1
	return false
}

// IsFull reports whether the capacity limit has been reached.
func (c *PositionCounter) IsFull() bool {
	return c.maxCapacity > 0 && len(c.seen) >= c.maxCapacity
}

// DuplicateCount returns the number of repeated hashes offered.
func (c *PositionCounter) DuplicateCount() int {
	return c.duplicateCount
}

// UniqueCount returns the number of distinct hashes recorded.
func (c *PositionCounter) UniqueCount() int {
	return len(c.seen)
}

// Reset clears the counter.
func (c *PositionCounter) Reset() {
	c.seen = make(map[uint64]int)
	c.duplicateCount = 0
}
