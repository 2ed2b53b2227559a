package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	assert.Equal(t, V(3, 1), V(1, 2).Add(V(2, -1)))
	assert.Equal(t, V(-1, 0), V(0, 0).Add(Left.Vec()))
}

func TestInverseRoundTrip(t *testing.T) {
	for _, d := range Dirs {
		assert.Equal(t, d, d.Inverse().Inverse())
		assert.Equal(t, V(0, 0), d.Vec().Add(d.Inverse().Vec()))
	}
}

func TestParseDir(t *testing.T) {
	for _, d := range Dirs {
		got, err := ParseDir(d.String()[0])
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDir('X')
	assert.Error(t, err)
}
