// Package grid provides a bounds-checked fixed-size 2D array addressed by
// geom.Vec2 coordinates, stored in row-major order.
package grid

import (
	"errors"

	"svw.info/klotski/internal/geom"
)

var (
	// ErrOutOfBounds reports a fill whose target rectangle leaves the grid.
	ErrOutOfBounds = errors.New("region out of bounds")
	// ErrRegionOccupied reports a conditional fill over non-empty cells.
	ErrRegionOccupied = errors.New("region occupied")
)

// Grid is a width-by-height array of T. The zero value of T is the "empty"
// sentinel used by FillRegionIfEmpty.
type Grid[T comparable] struct {
	size  geom.Vec2
	cells []T
}

// New returns a grid of the given size with every cell set to fill.
func New[T comparable](size geom.Vec2, fill T) Grid[T] {
	cells := make([]T, int(size.X)*int(size.Y))
	for i := range cells {
		cells[i] = fill
	}
	return Grid[T]{size: size, cells: cells}
}

// FromCells builds a grid over an existing row-major cell slice.
func FromCells[T comparable](size geom.Vec2, cells []T) (Grid[T], error) {
	if len(cells) != int(size.X)*int(size.Y) {
		return Grid[T]{}, ErrOutOfBounds
	}
	return Grid[T]{size: size, cells: cells}, nil
}

// Size returns the grid dimensions (X = columns, Y = rows).
func (g Grid[T]) Size() geom.Vec2 { return g.size }

func (g Grid[T]) inside(p geom.Vec2) bool {
	return p.X >= 0 && p.X < g.size.X && p.Y >= 0 && p.Y < g.size.Y
}

// Get returns the cell at p, or false if p is outside the grid.
func (g Grid[T]) Get(p geom.Vec2) (T, bool) {
	if !g.inside(p) {
		var zero T
		return zero, false
	}
	return g.cells[int(p.Y)*int(g.size.X)+int(p.X)], true
}

// Set writes the cell at p and reports whether p was inside the grid.
func (g *Grid[T]) Set(p geom.Vec2, v T) bool {
	if !g.inside(p) {
		return false
	}
	g.cells[int(p.Y)*int(g.size.X)+int(p.X)] = v
	return true
}

// FillRegion overwrites the size-shaped rectangle anchored at anchor with v.
// The grid is untouched if any target cell lies outside it.
func (g *Grid[T]) FillRegion(anchor, size geom.Vec2, v T) error {
	for dy := int8(0); dy < size.Y; dy++ {
		for dx := int8(0); dx < size.X; dx++ {
			if !g.inside(anchor.Add(geom.V(dx, dy))) {
				return ErrOutOfBounds
			}
		}
	}
	for dy := int8(0); dy < size.Y; dy++ {
		for dx := int8(0); dx < size.X; dx++ {
			g.Set(anchor.Add(geom.V(dx, dy)), v)
		}
	}
	return nil
}

// FillRegionIfEmpty fills like FillRegion but refuses to overwrite: every
// target cell must currently hold the zero value of T.
func (g *Grid[T]) FillRegionIfEmpty(anchor, size geom.Vec2, v T) error {
	var zero T
	for dy := int8(0); dy < size.Y; dy++ {
		for dx := int8(0); dx < size.X; dx++ {
			cur, ok := g.Get(anchor.Add(geom.V(dx, dy)))
			if !ok {
				return ErrOutOfBounds
			}
			if cur != zero {
				return ErrRegionOccupied
			}
		}
	}
	return g.FillRegion(anchor, size, v)
}

// Row returns the y-th row as a slice view into the grid.
func (g Grid[T]) Row(y int8) []T {
	start := int(y) * int(g.size.X)
	return g.cells[start : start+int(g.size.X)]
}

// Clone returns a deep copy of the grid.
func (g Grid[T]) Clone() Grid[T] {
	cells := make([]T, len(g.cells))
	copy(cells, g.cells)
	return Grid[T]{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g Grid[T]) Equal(o Grid[T]) bool {
	if g.size != o.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}
