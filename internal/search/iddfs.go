package search

import (
	"context"
	"time"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/ports"
)

// IDDFS finds an optimal solution by depth-bounded DFS with a limit that
// grows by one per round. A round whose every branch ends with budget to
// spare has exhausted the reachable state space, so the outer loop stops
// and reports the puzzle unsolvable instead of deepening forever.
type IDDFS struct{}

func NewIDDFS() *IDDFS { return &IDDFS{} }

var _ ports.Solver = (*IDDFS)(nil)

func (s *IDDFS) Solve(ctx context.Context, b *board.Board) ([]board.Move, ports.Stats, error) {
	start := time.Now()
	nodes := 0

	for limit := 1; ; limit++ {
		log.Debugf("iddfs: depth limit %d", limit)
		visited := make(map[string]struct{})
		moves, remain, found := dfs(ctx, b.Clone(), limit, visited, &nodes)
		stats := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if found {
			reverse(moves)
			return moves, stats, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, stats, err
		}
		if remain > 0 {
			return nil, stats, ErrNoSolution
		}
	}
}

// dfs explores to the given depth budget. On failure it also reports the
// smallest leftover budget seen at any leaf: a positive value means no
// branch was cut off by the limit, so deepening cannot help.
func dfs(ctx context.Context, b *board.Board, limit int, visited map[string]struct{}, nodes *int) ([]board.Move, int, bool) {
	if b.IsGoal() {
		return nil, 0, true
	}
	if limit <= 0 {
		return nil, 0, false
	}
	if ctx.Err() != nil {
		return nil, 0, false
	}
	key := b.StateKey()
	if _, ok := visited[key]; ok {
		return nil, limit, false
	}
	visited[key] = struct{}{}

	remain := limit
	for _, m := range b.PossibleMoves() {
		if err := b.MoveBlock(m.ID, m.Dir); err != nil {
			log.Tracef("iddfs: skip %s: %v", m, err)
			continue
		}
		*nodes++
		moves, childRemain, found := dfs(ctx, b, limit-1, visited, nodes)
		if found {
			return append(moves, m), 0, true
		}
		if childRemain < remain {
			remain = childRemain
		}
		undo(b, m)
	}

	delete(visited, key)
	return nil, remain, false
}
