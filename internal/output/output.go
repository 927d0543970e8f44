// Package output formats moves and perft reports as text and JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// OutputWriter writes space-separated tokens, wrapping lines that would
// exceed maxLineLength.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a token, preceded by a space or a line break.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatMove renders a move with the mover's letter, e.g. "b (5,2)-(4,3)"
// or "R (2,1)x(4,3)x(6,5)".
func FormatMove(m checkers.Move) string {
	if m == nil {
		return "--"
	}
	return string(m.Mover().Letter()) + " " + m.String()
}

// WriteMoveList writes moves as a wrapped, comma-free list ending in a
// newline. Nothing is written for an empty list.
func WriteMoveList(w io.Writer, moves []checkers.Move, maxLineLength int) {
	if len(moves) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)
	for _, m := range moves {
		ow.Write(m.String())
	}
	ow.NewLine()
}
