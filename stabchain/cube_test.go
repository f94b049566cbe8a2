package stabchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/perm"
	"github.com/katalvlaran/stabchain/stabchain"
)

func TestCubeSingleGenerator(t *testing.T) {
	c, err := perm.SingleCycle(1, 2, 3)
	require.NoError(t, err)
	cyc := c.Permutation()
	a := action.Natural{}

	cube := stabchain.NewCube(0, []perm.Permutation{cyc, cyc, cyc}, a, -1)
	assert.Equal(t, 3, cube.Len())
	for pt := 0; pt < 3; pt++ {
		rep, ok := cube.Representative(0, pt, a)
		require.True(t, ok)
		assert.Equal(t, pt, rep.Apply(0))
	}
}

func TestCubeEarlyExit(t *testing.T) {
	a := action.Natural{}
	cyc, err := perm.SingleCycle(1, 2, 3, 4, 5, 6, 7, 8)
	require.NoError(t, err)
	p := cyc.Permutation()
	cube := stabchain.NewCube(0, []perm.Permutation{p, p, p, p, p, p, p, p}, a, 8)
	assert.Equal(t, 8, cube.Len())
}

func TestCubeUnreachablePoint(t *testing.T) {
	a := action.Natural{}
	p := perm.FromImages([]perm.Point{1, 0})
	cube := stabchain.NewCube(0, []perm.Permutation{p}, a, -1)
	_, ok := cube.Representative(0, 42, a)
	assert.False(t, ok)
}
