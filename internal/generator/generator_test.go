package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/klotski/internal/board"
	"svw.info/klotski/internal/geom"
	"svw.info/klotski/internal/search"
)

func TestGenerateProducesValidBoard(t *testing.T) {
	g := New()
	p, _, err := g.Generate(context.Background(), 12345, geom.V(4, 4), 6, 8)
	require.NoError(t, err)
	require.NotEmpty(t, p.ID)
	require.NotEmpty(t, p.Board)

	b, err := board.Parse(p.Board)
	require.NoError(t, err)
	assert.Equal(t, geom.V(4, 4), b.Size())
	assert.LessOrEqual(t, len(b.Blocks()), 6)
}

func TestGenerateIsSeeded(t *testing.T) {
	g := New()
	a, _, err := g.Generate(context.Background(), 42, geom.V(4, 5), 8, 4)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 42, geom.V(4, 5), 8, 4)
	require.NoError(t, err)
	assert.Equal(t, a.Board, b.Board)

	c, _, err := g.Generate(context.Background(), 43, geom.V(4, 5), 8, 4)
	require.NoError(t, err)
	assert.NotEqual(t, a.Board, c.Board, "different seeds should give different boards")
}

func TestGeneratedBoardIsSolvable(t *testing.T) {
	g := New()
	s := search.NewIDAStar()
	for seed := int64(1); seed <= 3; seed++ {
		p, _, err := g.Generate(context.Background(), seed, geom.V(3, 3), 4, 6)
		require.NoError(t, err)
		b, err := board.Parse(p.Board)
		require.NoError(t, err)

		moves, _, err := s.Solve(context.Background(), b)
		require.NoError(t, err, "shuffled board must stay solvable (seed %d)", seed)
		assert.LessOrEqual(t, len(moves), 6, "optimal solution cannot exceed the shuffle length")
	}
}
