package ports

import (
	"context"
	"time"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/domain"
	"svw.info/klotski/internal/geom"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds a minimum-length move sequence from the given board to its
// goal state. The board is cloned internally; the argument is not mutated.
type Solver interface {
	Solve(ctx context.Context, b *board.Board) ([]board.Move, Stats, error)
}

// Generator creates new solvable puzzles from a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, size geom.Vec2, blockCount int8, shuffleRound int) (*domain.Puzzle, Stats, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
