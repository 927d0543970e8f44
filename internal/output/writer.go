package output

import (
	"fmt"
	"io"
)

// ReportWriter writes a perft report in some format.
type ReportWriter interface {
	WriteReport(r *PerftReport) error
}

// TextWriter writes reports for people.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes one line per divided move followed by the totals.
func (tw *TextWriter) WriteReport(r *PerftReport) error {
	for _, d := range r.Divide {
		if _, err := fmt.Fprintf(tw.w, "%s %s: %d\n", d.Move.From, joinPath(d.Move), d.Nodes); err != nil {
			return err
		}
	}
	if len(r.Divide) > 0 {
		fmt.Fprintln(tw.w)
	}
	if _, err := fmt.Fprintf(tw.w, "depth %d: %d nodes", r.Depth, r.Nodes); err != nil {
		return err
	}
	if r.Unique > 0 {
		fmt.Fprintf(tw.w, ", %d unique", r.Unique)
	}
	_, err := fmt.Fprintf(tw.w, " (%s)\n", r.Elapsed)
	return err
}

func joinPath(m JSONMove) string {
	if m.Kind != "capture" {
		return "-" + m.To
	}
	s := ""
	for _, sq := range m.Path {
		s += "x" + sq
	}
	return s
}

// JSONWriter writes reports as indented JSON documents.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport encodes r.
func (jw *JSONWriter) WriteReport(r *PerftReport) error {
	return WriteJSON(jw.w, r)
}
