package stabchain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/perm"
	"github.com/katalvlaran/stabchain/stabchain"
)

func TestBuildOrbitAndRepresentative(t *testing.T) {
	g, err := perm.SingleCycle(1, 2, 3) // 0-indexed (0 1 2)
	require.NoError(t, err)
	cyc := g.Permutation()
	a := action.Natural{}

	tr := stabchain.BuildFactoredTransversal([]perm.Permutation{cyc}, 0, a)
	assert.Equal(t, 3, tr.Len())
	for _, pt := range []perm.Point{0, 1, 2} {
		rep, ok := stabchain.Representative(tr, 0, pt, a)
		require.True(t, ok)
		assert.Equal(t, pt, rep.Apply(0), "representative of %d must send base to %d", pt, pt)
	}
}

func TestRepresentativeMissingPoint(t *testing.T) {
	cyc := perm.FromImages([]perm.Point{1, 0})
	a := action.Natural{}
	tr := stabchain.BuildFactoredTransversal([]perm.Permutation{cyc}, 0, a)
	_, ok := stabchain.Representative(tr, 0, 99, a)
	assert.False(t, ok)
}

func TestRepresentativeWordMatchesCollapse(t *testing.T) {
	c, err := perm.ParseCycles([][]int{{1, 2, 3, 4, 5}})
	require.NoError(t, err)
	cyc := c.Permutation()
	a := action.Natural{}
	tr := stabchain.BuildFactoredTransversal([]perm.Permutation{cyc}, 0, a)
	for pt := 0; pt < 5; pt++ {
		w, ok := stabchain.RepresentativeWord(tr, 0, pt, a)
		require.True(t, ok)
		r, _ := stabchain.Representative(tr, 0, pt, a)
		assert.True(t, w.Collapse().Equal(r))
	}
}

func TestBuildOrbitMultipleGenerators(t *testing.T) {
	a := action.Natural{}
	transp := perm.FromImages([]perm.Point{1, 0, 2, 3})
	cyc4 := perm.FromImages([]perm.Point{1, 2, 3, 0})
	tr := stabchain.BuildFactoredTransversal([]perm.Permutation{transp, cyc4}, 0, a)
	assert.Equal(t, 4, tr.Len())
	for pt := 0; pt < 4; pt++ {
		rep, ok := stabchain.Representative(tr, 0, pt, a)
		require.True(t, ok)
		assert.Equal(t, pt, rep.Apply(0))
	}
}
