package engine

import (
	"fmt"
	"iter"
	"slices"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/errors"
)

// MoveEvent describes an applied move to observers.
type MoveEvent struct {
	Player     checkers.Colour
	Move       checkers.Move
	Outcome    Outcome
	TurnPassed bool
	Ply        int
}

// Observer is notified after every applied move. A presentation layer can
// subscribe instead of polling the board.
type Observer interface {
	MoveApplied(ev MoveEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ev MoveEvent)

// MoveApplied calls f(ev).
func (f ObserverFunc) MoveApplied(ev MoveEvent) { f(ev) }

// Game is the engine boundary used by a presentation layer: it owns the
// board and the turn controller and only changes them through ApplyMove.
// A Game is not safe for concurrent use.
type Game struct {
	cfg       *config.Config
	board     *checkers.Board
	turn      *TurnController
	observers []Observer

	// ply counts applied moves, including each part of a split chain.
	ply int
}

// NewGame creates a game with the standard starting layout. A nil cfg
// selects the defaults.
func NewGame(cfg *config.Config) (*Game, error) {
	return NewGameFromBoard(checkers.NewBoard(), cfg)
}

// NewGameFromBoard creates a game on a prepared board, with the configured
// first player on move.
func NewGameFromBoard(board *checkers.Board, cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("nil board: %w", errors.ErrInvalidConfig)
	}
	return &Game{
		cfg:   cfg,
		board: board,
		turn:  NewTurnController(cfg.Rules.FirstPlayer),
	}, nil
}

// Board returns the live board. Callers must not mutate it.
func (g *Game) Board() *checkers.Board {
	return g.board
}

// Config returns the game configuration.
func (g *Game) Config() *config.Config {
	return g.cfg
}

// PieceAt returns the piece on pos, if any.
func (g *Game) PieceAt(pos checkers.Position) (*checkers.Piece, bool) {
	return g.board.PieceAt(pos)
}

// CurrentPlayer returns the colour on move.
func (g *Game) CurrentPlayer() checkers.Colour {
	return g.turn.CurrentPlayer()
}

// IsMidCaptureChain reports whether the selected piece must keep capturing.
func (g *Game) IsMidCaptureChain() bool {
	return g.turn.IsMidCaptureChain()
}

// State returns the state of the turn machine.
func (g *Game) State() TurnState {
	return g.turn.State()
}

// SelectedPiece returns the selected piece, if any.
func (g *Game) SelectedPiece() (*checkers.Piece, bool) {
	return g.turn.Selected()
}

// Ply returns the number of moves applied so far.
func (g *Game) Ply() int {
	return g.ply
}

// Subscribe registers an observer for applied moves.
func (g *Game) Subscribe(o Observer) {
	if o != nil {
		g.observers = append(g.observers, o)
	}
}

// Select selects the piece on pos for the player on move.
func (g *Game) Select(pos checkers.Position) error {
	piece, ok := g.board.PieceAt(pos)
	if !ok {
		return fmt.Errorf("select %s: %w", pos, errors.ErrInvalidTarget)
	}
	if err := g.turn.Select(piece); err != nil {
		return fmt.Errorf("select %s: %w", pos, err)
	}
	g.cfg.Logf(config.Detailed, "%s selects %v\n", g.turn.CurrentPlayer(), piece)
	return nil
}

// Deselect clears the selection unless a capture chain is in progress.
func (g *Game) Deselect() bool {
	return g.turn.Deselect()
}

// PossibleMoves returns the legal moves of piece as a lazy, restartable
// sequence. It is empty for a nil or captured piece, for a piece of the
// player not on move, and mid-chain for any piece but the capturing one.
func (g *Game) PossibleMoves(piece *checkers.Piece) iter.Seq[checkers.Move] {
	return func(yield func(checkers.Move) bool) {
		if piece == nil || piece.Colour != g.turn.CurrentPlayer() {
			return
		}
		var moves iter.Seq[checkers.Move]
		if g.turn.IsMidCaptureChain() {
			if sel, _ := g.turn.Selected(); sel != piece {
				return
			}
			moves = possibleMoves(g.board, piece, newSquareSet(g.turn.visited), true)
		} else {
			capturesOnly := g.cfg.Rules.ForcedCapture && HasCapture(g.board, piece.Colour)
			moves = possibleMoves(g.board, piece, 0, capturesOnly)
		}
		for m := range moves {
			if !yield(m) {
				return
			}
		}
	}
}

// LegalMoves collects PossibleMoves(piece).
func (g *Game) LegalMoves(piece *checkers.Piece) []checkers.Move {
	return slices.Collect(g.PossibleMoves(piece))
}

// MovablePieces returns the pieces of the player on move that have at
// least one legal move.
func (g *Game) MovablePieces() []*checkers.Piece {
	var out []*checkers.Piece
	for _, p := range g.board.PiecesOf(g.turn.CurrentPlayer()) {
		for range g.PossibleMoves(p) {
			out = append(out, p)
			break
		}
	}
	return out
}

// ApplyMove applies a move obtained from PossibleMoves. A capture may be a
// full chain or a prefix of one (see checkers.Capture.Prefix); if the
// piece can keep jumping after a prefix, the turn stays open mid-chain.
//
// A move for a piece other than the selected one is ignored and reported
// with ErrInvalidTarget. A move that is not legal in the current position
// is rejected with an *errors.IllegalMoveError; the board is unchanged in
// both cases.
func (g *Game) ApplyMove(move checkers.Move) (Outcome, error) {
	if move == nil || move.Mover() == nil {
		return Outcome{}, fmt.Errorf("apply: no move: %w", errors.ErrInvalidTarget)
	}
	player := g.turn.CurrentPlayer()
	if sel, ok := g.turn.Selected(); ok && sel.ID != move.Mover().ID {
		return Outcome{}, fmt.Errorf("apply %s: %v is selected: %w", move, sel, errors.ErrInvalidTarget)
	}

	own, err := g.resolve(move)
	if err != nil {
		return Outcome{}, err
	}
	if err := g.turn.Select(own.Mover()); err != nil {
		return Outcome{}, fmt.Errorf("apply %s: %w", move, err)
	}

	out, err := Apply(g.board, own)
	if err != nil {
		return Outcome{}, err
	}
	g.ply++

	passed := true
	switch m := own.(type) {
	case *checkers.Simple:
		g.turn.CompleteSimple()
	case *checkers.Capture:
		continues := false
		if !(out.Promoted && g.cfg.Rules.PromotionEndsTurn) {
			visited := g.turn.visited
			if !g.turn.IsMidCaptureChain() {
				visited = []checkers.Position{m.From}
			}
			visited = append(slices.Clone(visited), m.Path()...)
			continues = !searchCaptures(g.board, m.Piece, newSquareSet(visited)).Empty()
		}
		g.turn.CompleteCapture(m, continues)
		passed = !continues
	}

	g.cfg.Logf(config.Detailed, "ply %d: %s plays %s (captured %d, promoted %t)\n",
		g.ply, player, own, len(out.Captured), out.Promoted)
	if passed {
		g.cfg.Logf(config.Turns, "%s to move: %d red, %d black\n",
			g.turn.CurrentPlayer(), g.board.Count(checkers.Red), g.board.Count(checkers.Black))
	}

	ev := MoveEvent{Player: player, Move: own, Outcome: out, TurnPassed: passed, Ply: g.ply}
	for _, o := range g.observers {
		o.MoveApplied(ev)
	}
	return out, nil
}

// resolve finds the generated move that move stands for and returns it
// bound to this game's pieces. Moves are matched by piece ID and squares,
// so a move taken from a clone of this game also resolves.
func (g *Game) resolve(move checkers.Move) (checkers.Move, error) {
	player := g.turn.CurrentPlayer()
	piece, ok := g.board.PieceByID(move.Mover().ID)
	if !ok {
		return nil, &errors.IllegalMoveError{
			Err:    errors.ErrIllegalMove,
			Player: player.String(),
			Move:   move.String(),
			Reason: "piece is not on the board",
		}
	}
	if piece.Colour != player {
		return nil, &errors.IllegalMoveError{
			Err:    errors.ErrNotYourTurn,
			Player: player.String(),
			Move:   move.String(),
		}
	}

	for candidate := range g.PossibleMoves(piece) {
		if resolved, ok := matchMove(candidate, move); ok {
			return resolved, nil
		}
	}
	return nil, &errors.IllegalMoveError{
		Err:    errors.ErrIllegalMove,
		Player: player.String(),
		Move:   move.String(),
		Reason: "not among the legal moves",
	}
}

// matchMove reports whether want describes candidate, or for captures a
// prefix of it. The returned move is candidate cut to want's length.
func matchMove(candidate, want checkers.Move) (checkers.Move, bool) {
	if candidate.Kind() != want.Kind() || candidate.Origin() != want.Origin() {
		return nil, false
	}
	switch c := candidate.(type) {
	case *checkers.Simple:
		return c, c.To == want.Destination()
	case *checkers.Capture:
		w := want.(*checkers.Capture)
		n := 0
		for cs, ws := c, w; ws != nil; cs, ws = cs.Next, ws.Next {
			if cs == nil || cs.To != ws.To {
				return nil, false
			}
			if ws.Captured != nil && ws.Captured.ID != cs.Captured.ID {
				return nil, false
			}
			n++
		}
		return c.Prefix(n), true
	}
	return nil, false
}

// Clone returns an independent copy of the game sharing only the config.
// Observers are not copied.
func (g *Game) Clone() *Game {
	board := g.board.Clone()
	return &Game{
		cfg:   g.cfg,
		board: board,
		turn:  g.turn.clone(board),
		ply:   g.ply,
	}
}
