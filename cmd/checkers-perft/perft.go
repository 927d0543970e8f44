package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
	"github.com/lgbarn/checkers-go/internal/engine"
	"github.com/lgbarn/checkers-go/internal/errors"
	"github.com/lgbarn/checkers-go/internal/hashing"
	"github.com/lgbarn/checkers-go/internal/output"
	"github.com/lgbarn/checkers-go/internal/worker"
)

// perftOptions holds the search and output settings of one run.
type perftOptions struct {
	depth   int
	divide  bool
	unique  bool
	workers int
	json    bool
	dump    bool
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// runPerft searches the turn tree of a new game under cfg. Root moves are
// searched in parallel, each on its own clone of the game.
func runPerft(ctx context.Context, cfg *config.Config, opts perftOptions) (*output.PerftReport, error) {
	if opts.depth < 1 {
		return nil, fmt.Errorf("depth %d: %w", opts.depth, errors.ErrInvalidConfig)
	}
	game, err := engine.NewGame(cfg)
	if err != nil {
		return nil, err
	}

	roots := turnMoves(game)
	if opts.dump {
		fmt.Fprintf(cfg.LogFile, "%s to move\n%s\n", game.CurrentPlayer(), game.Board())
		output.WriteMoveList(cfg.LogFile, roots, 80)
		dumpConfig.Fdump(cfg.LogFile, output.MovesToJSON(roots))
	}

	var counter *hashing.ThreadSafeCounter
	if opts.unique {
		counter = hashing.NewThreadSafeCounter(0)
	}

	items := make([]worker.WorkItem, 0, len(roots))
	for i, m := range roots {
		child := game.Clone()
		if _, err := child.ApplyMove(m); err != nil {
			return nil, errors.Wrapf(err, "root move %s", m)
		}
		items = append(items, worker.WorkItem{Index: i, Game: child, Move: m, Depth: opts.depth - 1})
	}

	n := opts.workers
	if n < 1 {
		n = runtime.NumCPU()
	}

	start := time.Now()
	results, err := worker.Run(ctx, items, func(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
		nodes, err := perft(ctx, item.Game, item.Depth, counter)
		cfg.Logf(config.Turns, "%s: %d\n", output.FormatMove(item.Move), nodes)
		return worker.ProcessResult{Index: item.Index, Move: item.Move, Nodes: nodes, Error: err}
	}, worker.WithWorkers(n), worker.WithBufferSize(len(items)+1))
	if err != nil {
		return nil, err
	}

	report := &output.PerftReport{
		Depth:         opts.depth,
		ForcedCapture: cfg.Rules.ForcedCapture,
		Elapsed:       time.Since(start),
	}
	for _, r := range results {
		report.Nodes += r.Nodes
		if opts.divide {
			report.Divide = append(report.Divide, output.DivideEntry{Move: output.MoveToJSON(r.Move), Nodes: r.Nodes})
		}
	}
	if counter != nil {
		report.Unique = counter.UniqueCount()
	}
	return report, nil
}

// perft counts the leaves depth turns below g. Leaves are recorded in
// counter when it is not nil.
func perft(ctx context.Context, g *engine.Game, depth int, counter *hashing.ThreadSafeCounter) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if depth == 0 {
		if counter != nil {
			counter.CheckAndAdd(hashing.GenerateZobristHash(g.Board(), g.CurrentPlayer()))
		}
		return 1, nil
	}

	var nodes uint64
	for _, m := range turnMoves(g) {
		child := g.Clone()
		if _, err := child.ApplyMove(m); err != nil {
			return nodes, errors.Wrapf(err, "apply %s", m)
		}
		n, err := perft(ctx, child, depth-1, counter)
		nodes += n
		if err != nil {
			return nodes, err
		}
	}
	return nodes, nil
}

// turnMoves lists every move of the player on move. Captures are whole
// chains, so each move completes a turn.
func turnMoves(g *engine.Game) []checkers.Move {
	var moves []checkers.Move
	for _, p := range g.MovablePieces() {
		moves = append(moves, g.LegalMoves(p)...)
	}
	return moves
}
