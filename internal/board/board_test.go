package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/klotski/internal/geom"
)

// The classic 4x5 Klotski-style arrangement used throughout.
const classic = `5 4
1 2 2 3
1 2 2 3
4 0 5 5
4 0 7 6
9 10 8 6
`

const packed = `5 4
1 2 2 3
1 2 2 3
4 5 5 6
4 7 8 6
9 10 0 0
`

func TestMoveBlock(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)
	require.NoError(t, b.MoveBlock(5, geom.Left))

	after, err := Parse(`5 4
1 2 2 3
1 2 2 3
4 5 5 0
4 0 7 6
9 10 8 6
`)
	require.NoError(t, err)
	assert.True(t, b.grid.Equal(after.grid))
}

func TestMoveOutOfRange(t *testing.T) {
	b, err := Parse(`3 3
1 1 2
0 3 0
0 4 4
`)
	require.NoError(t, err)
	assert.ErrorIs(t, b.MoveBlock(2, geom.Right), ErrOutOfRange)
}

func TestMoveBlocked(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)
	assert.ErrorIs(t, b.MoveBlock(2, geom.Left), ErrBlockedMove)
}

func TestInitGoalChecking(t *testing.T) {
	b, err := Parse(packed)
	require.NoError(t, err)
	assert.True(t, b.IsGoal())
}

func TestGoalCheckingAfterMove(t *testing.T) {
	atGoal, err := Parse(packed)
	require.NoError(t, err)
	b, err := Parse(`5 4
1 2 2 3
1 2 2 3
4 5 5 6
4 7 8 6
9 0 10 0
`)
	require.NoError(t, err)
	assert.True(t, b.goal.Equal(atGoal.goal))
	assert.False(t, b.IsGoal())

	require.NoError(t, b.MoveBlock(10, geom.Left))
	assert.True(t, b.IsGoal())
}

func moveSet(moves []Move) map[Move]struct{} {
	set := make(map[Move]struct{}, len(moves))
	for _, m := range moves {
		set[m] = struct{}{}
	}
	return set
}

func TestInitPossibleMoves(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)

	expected := map[Move]struct{}{
		{4, geom.Right}: {},
		{2, geom.Down}:  {},
		{5, geom.Left}:  {},
		{7, geom.Left}:  {},
		{10, geom.Up}:   {},
	}
	assert.Equal(t, expected, moveSet(b.PossibleMoves()))
}

func TestPossibleMovesAfterMove(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)
	require.NoError(t, b.MoveBlock(10, geom.Up))

	expected := map[Move]struct{}{
		{4, geom.Right}: {},
		{2, geom.Down}:  {},
		{5, geom.Left}:  {},
		{10, geom.Up}:   {},
		{10, geom.Down}: {},
		{9, geom.Right}: {},
		{8, geom.Left}:  {},
	}
	assert.Equal(t, expected, moveSet(b.PossibleMoves()))
}

func TestMoveIsRecoverable(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)
	original := b.Clone()

	require.NoError(t, b.MoveBlock(5, geom.Left))
	assert.False(t, b.Equal(original))
	require.NoError(t, b.MoveBlock(5, geom.Right))
	assert.True(t, b.Equal(original))
	assert.Equal(t, original.StateKey(), b.StateKey())
}

func TestEveryCandidateRoundTrips(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)
	holes := len(b.state.holes)

	for _, m := range b.PossibleMoves() {
		before := b.Clone()
		if err := b.MoveBlock(m.ID, m.Dir); err != nil {
			// Candidates over-approximate legality, but never by range.
			assert.NotErrorIs(t, err, ErrOutOfRange)
			continue
		}
		assert.Equal(t, holes, len(b.state.holes), "hole count must be conserved by %s", m)
		require.NoError(t, b.MoveBlock(m.ID, m.Dir.Inverse()))
		assert.True(t, b.Equal(before), "undo of %s must restore the state", m)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)
	c := b.Clone()
	require.NoError(t, c.MoveBlock(5, geom.Left))

	assert.False(t, b.Equal(c))
	original, err := Parse(classic)
	require.NoError(t, err)
	assert.True(t, b.Equal(original))
}

func TestHeuristic(t *testing.T) {
	b, err := Parse(packed)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Heuristic())

	one, err := Parse(`5 4
1 2 2 3
1 2 2 3
4 5 5 6
4 7 8 6
9 0 10 0
`)
	require.NoError(t, err)
	assert.Equal(t, 1, one.Heuristic())
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrBadFormat},
		{"bad size line", "5\n", ErrBadFormat},
		{"non-integer size", "a 4\n", ErrBadFormat},
		{"non-positive size", "0 4\n", ErrBadFormat},
		{"missing rows", "2 2\n1 1\n", ErrBadFormat},
		{"short row", "2 2\n1 1\n0\n", ErrBadFormat},
		{"non-integer id", "2 2\n1 x\n0 0\n", ErrBadFormat},
		{"negative id", "2 2\n1 -1\n0 0\n", ErrBadFormat},
		{"missing id", "2 2\n1 3\n0 0\n", ErrMissingBlock},
		{"diagonal block", "2 2\n1 0\n0 1\n", ErrMalformedBlock},
		{"three cells", "2 2\n1 1\n1 0\n", ErrMalformedBlock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	b, err := Parse(classic)
	require.NoError(t, err)
	assert.Equal(t, classic, b.String())

	again, err := Parse(b.String())
	require.NoError(t, err)
	assert.True(t, b.Equal(again))
}
