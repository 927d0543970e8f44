package output

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/testutil"
)

func TestOutputWriter_Wraps(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	ow.Write("abcd")
	ow.Write("efgh")
	ow.Write("ijkl")
	ow.NewLine()

	testutil.AssertEqual(t, buf.String(), "abcd efgh\nijkl\n")
}

func TestFormatMove(t *testing.T) {
	board := testutil.BoardFromDiagram(t,
		"........",
		"........",
		"........",
		"........",
		"........",
		"..b.....",
		"........",
		"........",
	)
	piece := testutil.MustPieceAt(t, board, checkers.Pos(5, 2))
	m := &checkers.Simple{Piece: piece, From: piece.Pos, To: checkers.Pos(4, 3)}

	testutil.AssertEqual(t, FormatMove(m), "b (5,2)-(4,3)")
	testutil.AssertEqual(t, FormatMove(nil), "--")
}

func TestWriteMoveList(t *testing.T) {
	board := checkers.NewBoard()
	var moves []checkers.Move
	for _, p := range board.PiecesOf(checkers.Black) {
		moves = append(moves, engine.SimpleMoves(board, p)...)
	}

	var buf bytes.Buffer
	WriteMoveList(&buf, moves, 20)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for _, l := range lines {
		if len(l) > 20 {
			t.Errorf("line %q longer than 20", l)
		}
	}
	testutil.AssertEqual(t, strings.Count(buf.String(), "-"), len(moves))

	buf.Reset()
	WriteMoveList(&buf, nil, 20)
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestMoveToJSON_Capture(t *testing.T) {
	board := testutil.BoardFromDiagram(t,
		"........",
		"........",
		"........",
		"....r...",
		"........",
		"..r.....",
		".b......",
		"........",
	)
	moves := slices.Collect(engine.PossibleMoves(board, testutil.MustPieceAt(t, board, checkers.Pos(6, 1))))
	capture := testutil.CaptureAt(t, moves, checkers.Pos(4, 3), checkers.Pos(2, 5))

	jm := MoveToJSON(capture)
	testutil.AssertEqual(t, jm.Kind, "capture")
	testutil.AssertEqual(t, jm.Colour, "Black")
	testutil.AssertEqual(t, jm.From, "(6,1)")
	testutil.AssertEqual(t, jm.To, "(2,5)")
	testutil.AssertEqual(t, jm.Path, []string{"(4,3)", "(2,5)"})
	testutil.AssertEqual(t, jm.Captured, []string{"(5,2)", "(3,4)"})
}

func TestJSONWriter_WriteReport(t *testing.T) {
	board := checkers.NewBoard()
	p := testutil.MustPieceAt(t, board, checkers.Pos(5, 0))
	m := &checkers.Simple{Piece: p, From: p.Pos, To: checkers.Pos(4, 1)}

	report := &PerftReport{
		Depth:  1,
		Nodes:  1,
		Divide: []DivideEntry{{Move: MoveToJSON(m), Nodes: 1}},
	}

	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).WriteReport(report); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	var got PerftReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, got.Nodes, uint64(1))
	testutil.AssertEqual(t, got.Divide[0].Move.Kind, "simple")
	testutil.AssertEqual(t, got.Divide[0].Move.Piece, p.ID.String())
}

func TestTextWriter_WriteReport(t *testing.T) {
	report := &PerftReport{
		Depth:   2,
		Nodes:   49,
		Unique:  49,
		Elapsed: time.Millisecond,
		Divide: []DivideEntry{
			{Move: JSONMove{Kind: "simple", From: "(5,0)", To: "(4,1)"}, Nodes: 7},
			{Move: JSONMove{Kind: "capture", From: "(6,0)", Path: []string{"(4,2)", "(2,4)"}}, Nodes: 3},
		},
	}

	var buf bytes.Buffer
	if err := NewTextWriter(&buf).WriteReport(report); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"(5,0) -(4,1): 7\n",
		"(6,0) x(4,2)x(2,4): 3\n",
		"depth 2: 49 nodes, 49 unique (1ms)\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestReportWriter_Interface(t *testing.T) {
	var buf bytes.Buffer
	var _ ReportWriter = NewTextWriter(&buf)
	var _ ReportWriter = NewJSONWriter(&buf)
}
