// Package engine provides checkers move generation, move application and
// turn control.
package engine

import (
	"iter"
	"slices"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// PossibleMoves returns the legal moves of piece as a lazy sequence. The
// sequence is restartable: every range re-derives the moves from the
// board. When the piece can capture, only capture chains are produced.
func PossibleMoves(board *checkers.Board, piece *checkers.Piece) iter.Seq[checkers.Move] {
	return possibleMoves(board, piece, 0, false)
}

// ContinuationMoves returns the captures still open to piece after it has
// landed on the squares in visited during the current turn.
func ContinuationMoves(board *checkers.Board, piece *checkers.Piece, visited []checkers.Position) iter.Seq[checkers.Move] {
	return possibleMoves(board, piece, newSquareSet(visited), true)
}

func possibleMoves(board *checkers.Board, piece *checkers.Piece, visited squareSet, capturesOnly bool) iter.Seq[checkers.Move] {
	return func(yield func(checkers.Move) bool) {
		if !board.Contains(piece) {
			return
		}

		tree := searchCaptures(board, piece, visited)
		if !tree.Empty() {
			for _, chain := range tree.Chains() {
				if !yield(chain) {
					return
				}
			}
			return
		}
		if capturesOnly {
			return
		}

		for _, dir := range piece.Directions() {
			to := piece.Pos.Add(dir)
			if !board.IsEmpty(to) {
				continue
			}
			if !yield(&checkers.Simple{Piece: piece, From: piece.Pos, To: to}) {
				return
			}
		}
	}
}

// SimpleMoves returns the one-step moves of piece regardless of captures.
func SimpleMoves(board *checkers.Board, piece *checkers.Piece) []checkers.Move {
	if !board.Contains(piece) {
		return nil
	}
	var out []checkers.Move
	for _, dir := range piece.Directions() {
		if to := piece.Pos.Add(dir); board.IsEmpty(to) {
			out = append(out, &checkers.Simple{Piece: piece, From: piece.Pos, To: to})
		}
	}
	return out
}

// CanCapture reports whether piece has at least one jump.
func CanCapture(board *checkers.Board, piece *checkers.Piece) bool {
	return !searchCaptures(board, piece, 0).Empty()
}

// HasCapture reports whether any piece of colour c can capture.
func HasCapture(board *checkers.Board, c checkers.Colour) bool {
	for _, p := range board.PiecesOf(c) {
		if CanCapture(board, p) {
			return true
		}
	}
	return false
}

// CollectMoves gathers the moves of every piece of colour c. When
// forcedCapture is set and any capture exists, only captures are returned.
func CollectMoves(board *checkers.Board, c checkers.Colour, forcedCapture bool) []checkers.Move {
	capturesOnly := forcedCapture && HasCapture(board, c)
	var out []checkers.Move
	for _, p := range board.PiecesOf(c) {
		out = slices.AppendSeq(out, possibleMoves(board, p, 0, capturesOnly))
	}
	return out
}
