// Package generator creates random solvable puzzles: it packs random block
// shapes into an empty grid, then shuffles the result with random legal
// moves. A board produced this way is always solvable, since the pre-shuffle
// layout is the canonical goal itself.
package generator

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/domain"
	"svw.info/klotski/internal/geom"
	"svw.info/klotski/internal/grid"
	"svw.info/klotski/internal/ports"
)

type Random struct{}

func New() *Random { return &Random{} }

var _ ports.Generator = (*Random)(nil)

// Generate builds a puzzle of the given size with at most blockCount blocks,
// shuffled by up to shuffleRound random moves. The same seed reproduces the
// same puzzle (modulo the fresh ID).
func (g *Random) Generate(ctx context.Context, seed int64, size geom.Vec2, blockCount int8, shuffleRound int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	b, err := randomBoard(rng, size, blockCount)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	nodes := 0
	for i := 0; i < shuffleRound; i++ {
		if ctx.Err() != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
		}
		moves := sortedMoves(b)
		if len(moves) == 0 {
			break
		}
		m := moves[rng.Intn(len(moves))]
		if err := b.MoveBlock(m.ID, m.Dir); err != nil {
			continue // candidates over-approximate legality
		}
		nodes++
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
	}
	p := &domain.Puzzle{
		ID:        id.String(),
		Seed:      seed,
		Board:     b.String(),
		CreatedAt: time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// sortedMoves returns the move candidates in (id, direction) order.
// PossibleMoves iterates a map, so its order varies between runs; indexing
// it with the seeded RNG would make generation irreproducible.
func sortedMoves(b *board.Board) []board.Move {
	moves := b.PossibleMoves()
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].ID != moves[j].ID {
			return moves[i].ID < moves[j].ID
		}
		return moves[i].Dir < moves[j].Dir
	})
	return moves
}

// randomBoard greedily fills the grid in row-major order with randomly
// ordered block shapes. A 1x1 block always fits an empty cell, so the id
// space stays dense.
func randomBoard(rng *rand.Rand, size geom.Vec2, blockCount int8) (*board.Board, error) {
	shapes := []geom.Vec2{geom.V(2, 1), geom.V(1, 1), geom.V(1, 2), geom.V(2, 2)}
	g := grid.New[int8](size, 0)

	nextID := int8(1)
fill:
	for y := int8(0); y < size.Y; y++ {
		for x := int8(0); x < size.X; x++ {
			pos := geom.V(x, y)
			if id, _ := g.Get(pos); id != 0 {
				continue
			}
			rng.Shuffle(len(shapes), func(i, j int) { shapes[i], shapes[j] = shapes[j], shapes[i] })
			for _, shape := range shapes {
				if g.FillRegionIfEmpty(pos, shape, nextID) == nil {
					break
				}
			}
			nextID++
			if nextID > blockCount {
				break fill
			}
		}
	}

	return board.FromGrid(g)
}
