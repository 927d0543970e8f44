package output

import (
	"encoding/json"
	"io"
	"time"

	"github.com/lgbarn/checkers-go/internal/checkers"
)

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Piece    string   `json:"piece"`
	Colour   string   `json:"colour"` // "Red" or "Black"
	King     bool     `json:"king,omitempty"`
	Kind     string   `json:"kind"` // "simple" or "capture"
	From     string   `json:"from"`
	To       string   `json:"to"`
	Path     []string `json:"path,omitempty"`
	Captured []string `json:"captured,omitempty"`
}

// MoveToJSON converts a move. Captured lists the squares of the jumped
// pieces in chain order.
func MoveToJSON(m checkers.Move) JSONMove {
	p := m.Mover()
	jm := JSONMove{
		Piece:  p.ID.String(),
		Colour: p.Colour.String(),
		King:   p.King,
		From:   m.Origin().String(),
		To:     m.Destination().String(),
	}
	switch mv := m.(type) {
	case *checkers.Simple:
		jm.Kind = "simple"
	case *checkers.Capture:
		jm.Kind = "capture"
		for _, sq := range mv.Path() {
			jm.Path = append(jm.Path, sq.String())
		}
		for _, c := range mv.CapturedPieces() {
			jm.Captured = append(jm.Captured, c.Pos.String())
		}
	}
	return jm
}

// MovesToJSON converts a move list.
func MovesToJSON(moves []checkers.Move) []JSONMove {
	out := make([]JSONMove, 0, len(moves))
	for _, m := range moves {
		out = append(out, MoveToJSON(m))
	}
	return out
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  JSONMove `json:"move"`
	Nodes uint64   `json:"nodes"`
}

// PerftReport summarises a perft run.
type PerftReport struct {
	Depth         int           `json:"depth"`
	ForcedCapture bool          `json:"forcedCapture"`
	Nodes         uint64        `json:"nodes"`
	Unique        int           `json:"unique,omitempty"`
	Divide        []DivideEntry `json:"divide,omitempty"`
	Elapsed       time.Duration `json:"elapsedNs"`
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
