// Package board models a generalized sliding-block (Klotski) puzzle: a
// rectangular grid of rigid rectangular blocks and empty cells, with
// single-cell orthogonal sliding moves toward a canonical packed goal layout.
package board

import (
	"errors"
	"fmt"

	"svw.info/klotski/internal/geom"
	"svw.info/klotski/internal/grid"
)

var (
	// ErrMalformedBlock reports cells of one id that do not form a legal rectangle.
	ErrMalformedBlock = errors.New("malformed block")
	// ErrMissingBlock reports a gap in the dense 1..N id space.
	ErrMissingBlock = errors.New("missing block id")
	// ErrUnfittableLayout reports blocks that cannot be repacked into a goal layout.
	ErrUnfittableLayout = errors.New("blocks do not fit the board")
	// ErrBlockedMove reports a destination cell occupied by another block.
	ErrBlockedMove = errors.New("move blocked")
	// ErrOutOfRange reports a destination cell outside the board.
	ErrOutOfRange = errors.New("move out of range")
)

// Board owns the occupancy grid, the live puzzle state, the memoized goal
// state and the memoized legal-move candidates. All mutation goes through
// MoveBlock, which keeps the caches consistent.
type Board struct {
	grid  grid.Grid[int8]
	state State
	goal  State
	moves map[Move]struct{}
}

// FromGrid validates an occupancy grid (0 = hole, otherwise a block id from
// the dense range 1..N whose cells form a legal rectangle) and builds a board
// with its memoized goal state and move candidates.
func FromGrid(g grid.Grid[int8]) (*Board, error) {
	size := g.Size()
	var holes []geom.Vec2
	cellsByID := make(map[int8][]geom.Vec2)
	for y := int8(0); y < size.Y; y++ {
		for x := int8(0); x < size.X; x++ {
			pos := geom.V(x, y)
			id, _ := g.Get(pos)
			if id == 0 {
				holes = append(holes, pos)
			} else {
				cellsByID[id] = append(cellsByID[id], pos)
			}
		}
	}

	blocks, err := blocksFromCells(cellsByID)
	if err != nil {
		return nil, err
	}
	goal, err := computeGoal(size, blocks)
	if err != nil {
		return nil, err
	}

	b := &Board{
		grid:  g,
		state: newState(holes, blocks),
		goal:  goal,
	}
	b.recomputeMoves()
	return b, nil
}

// blocksFromCells converts per-id cell lists (row-major sorted) to blocks,
// enforcing the dense 1..N id space.
func blocksFromCells(cellsByID map[int8][]geom.Vec2) ([]Block, error) {
	blocks := make([]Block, 0, len(cellsByID))
	for id := int8(1); int(id) <= len(cellsByID); id++ {
		cells, ok := cellsByID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrMissingBlock, id)
		}
		block, err := blockFromCells(id, cells)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

// computeGoal packs the blocks, in id order, into the smallest top-left
// justified layout: scan cells in row-major order and place the next block
// wherever it fits; cells it skips become goal holes. The result is the
// canonical solved arrangement for this block multiset.
func computeGoal(size geom.Vec2, blocks []Block) (State, error) {
	g := grid.New[int8](size, 0)
	next := 0
	goalBlocks := make([]Block, 0, len(blocks))
	var holes []geom.Vec2

	for y := int8(0); y < size.Y; y++ {
		for x := int8(0); x < size.X; x++ {
			pos := geom.V(x, y)
			if id, _ := g.Get(pos); id != 0 {
				continue
			}
			if next >= len(blocks) {
				holes = append(holes, pos)
				continue
			}
			block := blocks[next]
			if g.FillRegionIfEmpty(pos, block.Size, block.ID) == nil {
				goalBlocks = append(goalBlocks, Block{ID: block.ID, Pos: pos, Size: block.Size})
				next++
			} else {
				holes = append(holes, pos)
			}
		}
	}

	if next < len(blocks) {
		return State{}, fmt.Errorf("%w: %dx%d cannot hold %d blocks",
			ErrUnfittableLayout, size.Y, size.X, len(blocks))
	}
	return newState(holes, goalBlocks), nil
}

// recomputeMoves rebuilds the move-candidate cache from the hole set: every
// occupied cardinal neighbor of a hole yields the candidate that slides the
// neighboring block toward the hole. Candidates over-approximate legality
// for multi-cell blocks; MoveBlock re-validates the full footprint.
func (b *Board) recomputeMoves() {
	if b.moves == nil {
		b.moves = make(map[Move]struct{}, len(b.state.holes)*2)
	}
	clear(b.moves)
	for hole := range b.state.holes {
		for _, d := range geom.Dirs {
			if id, ok := b.grid.Get(hole.Add(d.Vec())); ok && id != 0 {
				b.moves[Move{ID: id, Dir: d.Inverse()}] = struct{}{}
			}
		}
	}
}

// validateMove checks the entire destination footprint of the block: each
// destination cell must be inside the grid and either empty or covered by
// the same block.
func (b *Board) validateMove(id int8, d geom.Dir) error {
	if id < 1 || int(id) > len(b.state.blocks) {
		return fmt.Errorf("%w: id %d", ErrMissingBlock, id)
	}
	block := b.state.blocks[id-1]
	vec := d.Vec()
	for dy := int8(0); dy < block.Size.Y; dy++ {
		for dx := int8(0); dx < block.Size.X; dx++ {
			dest := block.Pos.Add(geom.V(dx, dy)).Add(vec)
			next, ok := b.grid.Get(dest)
			if !ok {
				return fmt.Errorf("%w: %d%s leaves the board at %s", ErrOutOfRange, id, d, dest)
			}
			if next != 0 && next != id {
				return fmt.Errorf("%w: %s is occupied by %d", ErrBlockedMove, dest, next)
			}
		}
	}
	return nil
}

// MoveBlock slides the block one cell in the given direction, updating the
// occupancy grid, the hole set and the move-candidate cache. The board is
// unchanged on error.
func (b *Board) MoveBlock(id int8, d geom.Dir) error {
	if err := b.validateMove(id, d); err != nil {
		return err
	}
	block := &b.state.blocks[id-1]

	if err := b.grid.FillRegion(block.Pos, block.Size, 0); err != nil {
		panic(fmt.Sprintf("board: clear footprint of %d: %v", id, err))
	}
	forEachCell(block.Pos, block.Size, func(p geom.Vec2) {
		b.state.holes[p] = struct{}{}
	})

	block.Pos = block.Pos.Add(d.Vec())
	if err := b.grid.FillRegion(block.Pos, block.Size, id); err != nil {
		panic(fmt.Sprintf("board: write footprint of %d: %v", id, err))
	}
	forEachCell(block.Pos, block.Size, func(p geom.Vec2) {
		delete(b.state.holes, p)
	})

	b.recomputeMoves()
	return nil
}

func forEachCell(anchor, size geom.Vec2, f func(geom.Vec2)) {
	for dy := int8(0); dy < size.Y; dy++ {
		for dx := int8(0); dx < size.X; dx++ {
			f(anchor.Add(geom.V(dx, dy)))
		}
	}
}

// IsGoal reports whether the current state matches the memoized goal state.
func (b *Board) IsGoal() bool { return b.state.Equal(b.goal) }

// PossibleMoves returns the current move candidates. Order is not
// significant; callers must treat the result as a set.
func (b *Board) PossibleMoves() []Move {
	moves := make([]Move, 0, len(b.moves))
	for m := range b.moves {
		moves = append(moves, m)
	}
	return moves
}

// Heuristic returns the sum of Manhattan distances between each block's
// current and goal anchors. Each move translates one block by one cell, so
// the value never exceeds the true remaining move count.
func (b *Board) Heuristic() int {
	sum := 0
	for i, block := range b.state.blocks {
		target := b.goal.blocks[i]
		sum += abs(int(block.Pos.X)-int(target.Pos.X)) + abs(int(block.Pos.Y)-int(target.Pos.Y))
	}
	return sum
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Clone returns an independent copy of the board. Search engines clone per
// deepening round and mutate the copy in place.
func (b *Board) Clone() *Board {
	c := &Board{
		grid:  b.grid.Clone(),
		state: b.state.clone(),
		goal:  b.goal, // immutable after construction
	}
	c.moves = make(map[Move]struct{}, len(b.moves))
	for m := range b.moves {
		c.moves[m] = struct{}{}
	}
	return c
}

// Equal reports full structural equality, including the occupancy grid.
func (b *Board) Equal(o *Board) bool {
	return b.grid.Equal(o.grid) && b.state.Equal(o.state)
}

// StateKey returns the canonical visited-set key for the current state.
func (b *Board) StateKey() string { return b.state.Key() }

// Size returns the board dimensions (X = columns, Y = rows).
func (b *Board) Size() geom.Vec2 { return b.grid.Size() }

// Blocks returns a copy of the current block placements, ordered by id.
func (b *Board) Blocks() []Block {
	blocks := make([]Block, len(b.state.blocks))
	copy(blocks, b.state.blocks)
	return blocks
}
