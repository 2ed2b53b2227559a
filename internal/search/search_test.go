package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/ports"
)

// small is solvable in 4 moves: block 1 slides left, block 2 walks up and left.
const small = `3 3
0 1 0
0 1 0
0 0 2
`

const smallGoal = `3 3
1 2 0
1 0 0
0 0 0
`

// rotation is a 2x2 three-tile puzzle whose tiles 1 and 2 are swapped
// relative to the packed layout; rotations cannot swap two tiles, so the
// goal is unreachable.
const unsolvable = `2 2
2 1
3 0
`

func mustParse(t *testing.T, input string) *board.Board {
	t.Helper()
	b, err := board.Parse(input)
	require.NoError(t, err)
	return b
}

// bfsDistances maps every reachable state key to its distance from start.
// Moves are invertible, so distances from the goal equal remaining optimal
// move counts.
func bfsDistances(t *testing.T, start *board.Board) (map[string]int, []*board.Board) {
	t.Helper()
	dist := map[string]int{start.StateKey(): 0}
	queue := []*board.Board{start.Clone()}
	var boards []*board.Board
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		boards = append(boards, cur)
		for _, m := range cur.PossibleMoves() {
			next := cur.Clone()
			if next.MoveBlock(m.ID, m.Dir) != nil {
				continue
			}
			if _, seen := dist[next.StateKey()]; seen {
				continue
			}
			dist[next.StateKey()] = dist[cur.StateKey()] + 1
			queue = append(queue, next)
		}
	}
	return dist, boards
}

func applyAll(t *testing.T, b *board.Board, moves []board.Move) {
	t.Helper()
	for _, m := range moves {
		require.NoError(t, b.MoveBlock(m.ID, m.Dir), "solution move %s must be applicable in order", m)
	}
}

func solvers() map[string]ports.Solver {
	return map[string]ports.Solver{
		"iddfs":   NewIDDFS(),
		"idastar": NewIDAStar(),
	}
}

func TestSolveAlreadyAtGoal(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, smallGoal)
			moves, _, err := s.Solve(context.Background(), b)
			require.NoError(t, err)
			assert.Empty(t, moves)
		})
	}
}

func TestSolveSingleMove(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			b := mustParse(t, `5 4
1 2 2 3
1 2 2 3
4 5 5 6
4 7 8 6
9 0 10 0
`)
			moves, st, err := s.Solve(context.Background(), b)
			require.NoError(t, err)
			require.Len(t, moves, 1)
			assert.Equal(t, "10L", moves[0].String())
			assert.Greater(t, st.Nodes, 0)
		})
	}
}

func TestSolveOptimalAndApplicable(t *testing.T) {
	goal := mustParse(t, smallGoal)
	dist, _ := bfsDistances(t, goal)

	start := mustParse(t, small)
	want, ok := dist[start.StateKey()]
	require.True(t, ok, "start must be reachable from goal")

	lengths := make(map[string]int)
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			moves, st, err := s.Solve(context.Background(), start)
			require.NoError(t, err)
			assert.Len(t, moves, want, "solution must be optimal")
			lengths[name] = len(moves)
			t.Logf("%s: %d moves, nodes=%d dur=%v", name, len(moves), st.Nodes, st.Duration)

			replay := mustParse(t, small)
			applyAll(t, replay, moves)
			assert.True(t, replay.IsGoal())
			// The input board must not have been mutated.
			fresh := mustParse(t, small)
			assert.Equal(t, fresh.StateKey(), start.StateKey())
		})
	}
	assert.Equal(t, lengths["iddfs"], lengths["idastar"])
}

func TestHeuristicAdmissible(t *testing.T) {
	goal := mustParse(t, smallGoal)
	dist, boards := bfsDistances(t, goal)
	require.Greater(t, len(boards), 1)

	for _, b := range boards {
		remaining := dist[b.StateKey()]
		assert.LessOrEqual(t, b.Heuristic(), remaining,
			"heuristic must never overstate the true remaining cost")
	}
}

func TestSolveUnsolvable(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			b := mustParse(t, unsolvable)
			_, _, err := s.Solve(ctx, b)
			assert.ErrorIs(t, err, ErrNoSolution)
		})
	}
}

func TestSolveCanceledContext(t *testing.T) {
	for name, s := range solvers() {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			b := mustParse(t, small)
			_, _, err := s.Solve(ctx, b)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}
