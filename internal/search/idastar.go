package search

import (
	"context"
	"time"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/ports"
)

// IDAStar bounds the depth-first traversal by path cost f = g + h instead of
// pure depth, where h is the board's admissible Manhattan heuristic. Each
// round adopts the smallest f value that exceeded the previous bound
// anywhere in the search tree; if nothing exceeded it, the bounded space was
// exhausted and the puzzle is unsolvable.
type IDAStar struct{}

func NewIDAStar() *IDAStar { return &IDAStar{} }

var _ ports.Solver = (*IDAStar)(nil)

func (s *IDAStar) Solve(ctx context.Context, b *board.Board) ([]board.Move, ports.Stats, error) {
	start := time.Now()
	nodes := 0

	fLimit := b.Heuristic()
	for {
		log.Debugf("idastar: f limit %d", fLimit)
		visited := make(map[string]struct{})
		moves, next, found := idaSearch(ctx, b.Clone(), 0, fLimit, visited, &nodes)
		stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if found {
			reverse(moves)
			return moves, stats, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		if next <= fLimit {
			return nil, stats, ErrNoSolution
		}
		fLimit = next
	}
}

// idaSearch explores paths whose cost stays within fLimit. On failure it
// returns the smallest f value strictly above the bound seen in this
// subtree, or fLimit unchanged if nothing exceeded it.
func idaSearch(ctx context.Context, b *board.Board, g, fLimit int, visited map[string]struct{}, nodes *int) ([]board.Move, int, bool) {
	if b.IsGoal() {
		return nil, fLimit, true
	}
	if ctx.Err() != nil {
		return nil, fLimit, false
	}
	key := b.StateKey()
	if _, ok := visited[key]; ok {
		return nil, fLimit, false
	}
	visited[key] = struct{}{}

	next := fLimit
	exceed := func(f int) {
		if f > fLimit && (next == fLimit || f < next) {
			next = f
		}
	}
	for _, m := range b.PossibleMoves() {
		if err := b.MoveBlock(m.ID, m.Dir); err != nil {
			log.Tracef("idastar: skip %s: %v", m, err)
			continue
		}
		*nodes++
		f := g + 1 + b.Heuristic()
		if f > fLimit {
			exceed(f)
		} else {
			moves, childNext, found := idaSearch(ctx, b, g+1, fLimit, visited, nodes)
			if found {
				return append(moves, m), fLimit, true
			}
			exceed(childNext)
		}
		undo(b, m)
	}

	delete(visited, key)
	return nil, next, false
}
