package engine

import "github.com/lgbarn/checkers-go/internal/checkers"

// squareSet is a value-typed set of board squares, one bit per index.
// Each search branch extends its own copy, so siblings never share state.
type squareSet uint64

func (s squareSet) has(p checkers.Position) bool {
	i := p.Index()
	return i >= 0 && s&(1<<uint(i)) != 0
}

func (s squareSet) with(p checkers.Position) squareSet {
	i := p.Index()
	if i < 0 {
		return s
	}
	return s | 1<<uint(i)
}

func newSquareSet(ps []checkers.Position) squareSet {
	var s squareSet
	for _, p := range ps {
		s = s.with(p)
	}
	return s
}

// CaptureNode is one jump in a capture tree. A node owns its children:
// the alternative jumps available from its landing square.
type CaptureNode struct {
	From     checkers.Position
	Over     checkers.Position
	Landing  checkers.Position
	Captured *checkers.Piece
	Children []*CaptureNode
}

// IsLeaf reports whether the chain ends at this node.
func (n *CaptureNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// CaptureTree holds every capture chain reachable by a piece from its
// current square.
type CaptureTree struct {
	Piece  *checkers.Piece
	Origin checkers.Position
	Roots  []*CaptureNode
}

// Empty reports whether no capture is available.
func (t *CaptureTree) Empty() bool {
	return t == nil || len(t.Roots) == 0
}

// Chains flattens the tree into one independent chain per root-to-leaf
// path, in depth-first order. Every chain returned is maximal.
func (t *CaptureTree) Chains() []*checkers.Capture {
	if t.Empty() {
		return nil
	}
	var out []*checkers.Capture
	path := make([]*CaptureNode, 0, checkers.PiecesPerSide)

	var walk func(n *CaptureNode)
	walk = func(n *CaptureNode) {
		path = append(path, n)
		if n.IsLeaf() {
			out = append(out, t.chainOf(path))
		}
		for _, child := range n.Children {
			walk(child)
		}
		path = path[:len(path)-1]
	}
	for _, root := range t.Roots {
		walk(root)
	}
	return out
}

// chainOf builds a linked Capture from a root-to-leaf node path.
func (t *CaptureTree) chainOf(path []*CaptureNode) *checkers.Capture {
	var head, tail *checkers.Capture
	for _, n := range path {
		seg := &checkers.Capture{
			Piece:    t.Piece,
			From:     n.From,
			To:       n.Landing,
			Captured: n.Captured,
		}
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	return head
}

// SearchCaptures returns the capture tree of piece from its current square.
// Squares in visited count as already landed on during this turn; the
// piece's own square is always treated as visited.
func SearchCaptures(board *checkers.Board, piece *checkers.Piece, visited []checkers.Position) *CaptureTree {
	return searchCaptures(board, piece, newSquareSet(visited))
}

func searchCaptures(board *checkers.Board, piece *checkers.Piece, visited squareSet) *CaptureTree {
	tree := &CaptureTree{Piece: piece}
	if !board.Contains(piece) {
		return tree
	}
	tree.Origin = piece.Pos
	tree.Roots = jumpsFrom(board, piece, piece.Pos, visited.with(piece.Pos), 0)
	return tree
}

// jumpsFrom enumerates the jumps available from at and recurses from each
// landing square. Jumped pieces stay on the board until the move is
// applied, so captured guards against jumping the same piece twice.
func jumpsFrom(board *checkers.Board, piece *checkers.Piece, at checkers.Position, visited, captured squareSet) []*CaptureNode {
	var nodes []*CaptureNode
	for _, dir := range piece.Directions() {
		over := at.Add(dir)
		victim, ok := board.PieceAt(over)
		if !ok || victim.Colour == piece.Colour || captured.has(over) {
			continue
		}
		landing := over.Add(dir)
		if !board.IsEmpty(landing) || visited.has(landing) {
			continue
		}
		node := &CaptureNode{
			From:     at,
			Over:     over,
			Landing:  landing,
			Captured: victim,
		}
		node.Children = jumpsFrom(board, piece, landing, visited.with(landing), captured.with(over))
		nodes = append(nodes, node)
	}
	return nodes
}
