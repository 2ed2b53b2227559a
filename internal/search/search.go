// Package search implements the two iterative-deepening solvers, IDDFS and
// IDA*. Both walk the state space depth-first on a single cloned board,
// applying candidate moves in place and undoing them on backtrack, with a
// path-local visited set for cycle avoidance.
package search

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"svw.info/klotski/internal/board"
)

// ErrNoSolution reports that the goal state is unreachable from the input.
var ErrNoSolution = errors.New("puzzle has no solution")

var log = logrus.StandardLogger()

// undo reverses a just-applied move. A failing undo means the board's
// bookkeeping is broken, which is not recoverable.
func undo(b *board.Board, m board.Move) {
	if err := b.MoveBlock(m.ID, m.Dir.Inverse()); err != nil {
		panic(fmt.Sprintf("search: undo of %s failed: %v", m, err))
	}
}

// reverse flips a move list built during recursive unwinding into
// chronological order.
func reverse(moves []board.Move) {
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
}
