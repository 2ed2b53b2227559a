package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/klotski/internal/geom"
)

func TestGet(t *testing.T) {
	cells := make([]int8, 9)
	for i := range cells {
		cells[i] = int8(i)
	}
	g, err := FromCells(geom.V(3, 3), cells)
	require.NoError(t, err)

	for y := int8(0); y < 3; y++ {
		for x := int8(0); x < 3; x++ {
			v, ok := g.Get(geom.V(x, y))
			require.True(t, ok)
			assert.Equal(t, y*3+x, v)
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	g := New[int8](geom.V(2, 2), 7)

	for _, p := range []geom.Vec2{geom.V(3, 1), geom.V(1, 3), geom.V(3, 3), geom.V(-1, 0)} {
		_, ok := g.Get(p)
		assert.False(t, ok, "expected %v to be outside", p)
	}
}

func TestFromCellsSizeMismatch(t *testing.T) {
	_, err := FromCells(geom.V(3, 3), make([]int8, 8))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestFillRegion(t *testing.T) {
	g := New[int8](geom.V(4, 4), 0)
	require.NoError(t, g.FillRegion(geom.V(1, 1), geom.V(2, 2), 9))

	for y := int8(0); y < 4; y++ {
		for x := int8(0); x < 4; x++ {
			v, _ := g.Get(geom.V(x, y))
			if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
				assert.Equal(t, int8(9), v)
			} else {
				assert.Equal(t, int8(0), v)
			}
		}
	}
}

func TestFillRegionOutOfBoundsLeavesGridUntouched(t *testing.T) {
	g := New[int8](geom.V(3, 3), 0)
	err := g.FillRegion(geom.V(2, 2), geom.V(2, 2), 5)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	want := New[int8](geom.V(3, 3), 0)
	assert.True(t, g.Equal(want))
}

func TestFillRegionIfEmpty(t *testing.T) {
	g := New[int8](geom.V(4, 4), 0)
	require.NoError(t, g.FillRegionIfEmpty(geom.V(0, 0), geom.V(2, 2), 1))

	err := g.FillRegionIfEmpty(geom.V(1, 1), geom.V(2, 1), 2)
	assert.ErrorIs(t, err, ErrRegionOccupied)

	err = g.FillRegionIfEmpty(geom.V(3, 3), geom.V(2, 2), 3)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	require.NoError(t, g.FillRegionIfEmpty(geom.V(2, 2), geom.V(2, 2), 4))
}

func TestCloneIsIndependent(t *testing.T) {
	g := New[int8](geom.V(2, 2), 1)
	c := g.Clone()
	c.Set(geom.V(0, 0), 9)

	v, _ := g.Get(geom.V(0, 0))
	assert.Equal(t, int8(1), v)
	assert.False(t, g.Equal(c))
}
