// Package errors provides sentinel errors and error types for the checkers engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a move that is not legal in the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidTarget indicates a request aimed at a square or piece that
	// cannot act, such as an empty square or a piece other than the selected one.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrNotYourTurn indicates a piece of the player not on move.
	ErrNotYourTurn = errors.New("not your turn")

	// ErrMustContinueCapture indicates the turn is mid-chain and only the
	// capturing piece may move.
	ErrMustContinueCapture = errors.New("capture chain must be continued")

	// ErrOutOfBounds indicates a position outside the 8x8 grid.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IllegalMoveError wraps a rejected move with the context needed to report
// it: who tried it, the move itself and why it was refused. The caller can
// recover by re-querying the legal moves.
type IllegalMoveError struct {
	Err    error  // The underlying error, usually ErrIllegalMove
	Player string // Colour of the player on move
	Move   string // The move as text (if applicable)
	Reason string // Why the move was refused (if known)
}

// Error returns a formatted error message including all available context.
func (e *IllegalMoveError) Error() string {
	var parts []string

	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "illegal move"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the IllegalMoveError wrapper.
func (e *IllegalMoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
