package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/domain"
	"svw.info/klotski/internal/geom"
	"svw.info/klotski/internal/ports"
)

// Service aggregates the solver, generator and storage ports behind one
// application facade used by the HTTP adapter and the CLI.
type Service struct {
	Solvers   map[string]ports.Solver
	Generator ports.Generator
	Storage   ports.Storage
}

func NewService(solvers map[string]ports.Solver, g ports.Generator, st ports.Storage) *Service {
	return &Service{Solvers: solvers, Generator: g, Storage: st}
}

var (
	errNotConfigured    = errors.New("usecase dependency not configured")
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Solve runs the named algorithm ("iddfs" or "idastar") on the given board.
func (u *Service) Solve(ctx context.Context, algorithm string, b *board.Board) ([]board.Move, ports.Stats, error) {
	if len(u.Solvers) == 0 {
		return nil, ports.Stats{}, errNotConfigured
	}
	s, ok := u.Solvers[algorithm]
	if !ok {
		return nil, ports.Stats{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	return s.Solve(ctx, b)
}

func (u *Service) Generate(ctx context.Context, seed int64, size geom.Vec2, blockCount int8, shuffleRound int) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, size, blockCount, shuffleRound)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	if _, err := board.Parse(p.Board); err != nil {
		return err
	}
	if p.ID == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return err
		}
		p.ID = id.String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
