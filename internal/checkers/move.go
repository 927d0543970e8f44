package checkers

import (
	"fmt"
	"strings"
)

// MoveKind distinguishes the two move variants.
type MoveKind int

const (
	SimpleMove MoveKind = iota
	CaptureMove
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	if k == CaptureMove {
		return "Capture"
	}
	return "Simple"
}

// Move is either a *Simple or a *Capture.
type Move interface {
	Kind() MoveKind
	// Mover returns the moving piece.
	Mover() *Piece
	// Origin is the square the piece starts from.
	Origin() Position
	// Destination is where the piece finally lands.
	Destination() Position
	String() string

	isMove()
}

// Simple is a one-step diagonal move onto an empty square.
type Simple struct {
	Piece *Piece
	From  Position
	To    Position
}

func (*Simple) isMove() {}

// Kind returns SimpleMove.
func (*Simple) Kind() MoveKind { return SimpleMove }

// Mover returns the moving piece.
func (m *Simple) Mover() *Piece { return m.Piece }

// Origin returns From.
func (m *Simple) Origin() Position { return m.From }

// Destination returns To.
func (m *Simple) Destination() Position { return m.To }

// String returns e.g. "(5,2)-(4,3)".
func (m *Simple) String() string {
	return fmt.Sprintf("%s-%s", m.From, m.To)
}

// Capture is one jump over an opponent piece. Next links to the following
// jump of the same chain; chains are acyclic and every To is distinct.
type Capture struct {
	Piece    *Piece
	From     Position
	To       Position
	Captured *Piece
	Next     *Capture
}

func (*Capture) isMove() {}

// Kind returns CaptureMove.
func (*Capture) Kind() MoveKind { return CaptureMove }

// Mover returns the moving piece.
func (c *Capture) Mover() *Piece { return c.Piece }

// Origin returns the From of the first jump.
func (c *Capture) Origin() Position { return c.From }

// Destination returns the chain's final landing square.
func (c *Capture) Destination() Position { return c.FinalDestination() }

// FinalDestination walks Next pointers and returns the last To.
func (c *Capture) FinalDestination() Position {
	last := c
	for last.Next != nil {
		last = last.Next
	}
	return last.To
}

// CapturedPieces returns every jumped piece in chain order.
func (c *Capture) CapturedPieces() []*Piece {
	var out []*Piece
	for seg := c; seg != nil; seg = seg.Next {
		out = append(out, seg.Captured)
	}
	return out
}

// Path returns the landing squares in chain order.
func (c *Capture) Path() []Position {
	var out []Position
	for seg := c; seg != nil; seg = seg.Next {
		out = append(out, seg.To)
	}
	return out
}

// Len returns the number of jumps in the chain.
func (c *Capture) Len() int {
	n := 0
	for seg := c; seg != nil; seg = seg.Next {
		n++
	}
	return n
}

// Prefix returns a copy of the first n jumps. n is clamped to [1, Len()].
func (c *Capture) Prefix(n int) *Capture {
	if n < 1 {
		n = 1
	}
	head := &Capture{}
	cur := head
	for seg, i := c, 0; seg != nil && i < n; seg, i = seg.Next, i+1 {
		cur.Next = &Capture{
			Piece:    seg.Piece,
			From:     seg.From,
			To:       seg.To,
			Captured: seg.Captured,
		}
		cur = cur.Next
	}
	return head.Next
}

// String returns e.g. "(5,2)x(3,4)x(1,2)".
func (c *Capture) String() string {
	var sb strings.Builder
	sb.WriteString(c.From.String())
	for seg := c; seg != nil; seg = seg.Next {
		sb.WriteByte('x')
		sb.WriteString(seg.To.String())
	}
	return sb.String()
}
