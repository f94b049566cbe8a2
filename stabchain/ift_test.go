package stabchain_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/stabchain"
)

func TestIFTBuilderSymmetricOrder(t *testing.T) {
	for n, want := range map[int]int64{3: 6, 4: 24, 5: 120, 6: 720} {
		g := group.Symmetric(n)
		b := stabchain.NewIFTBuilder(stabchain.DefaultSelector{}, action.Natural{})
		b.SetGenerators(g)
		chain := b.Build()
		require.NoError(t, stabchain.ValidStabchain(chain, action.Natural{}))
		assert.Equal(t, 0, chain.Order().Cmp(big.NewInt(want)), "S%d order", n)
	}
}

func TestIFTBuilderMatchesNaive(t *testing.T) {
	g := group.DirectProduct(group.Cyclic(3), group.Symmetric(4))
	naive := stabchain.NewNaiveBuilder(stabchain.DefaultSelector{}, action.Natural{})
	naive.SetGenerators(g)
	naiveChain := naive.Build()

	ift := stabchain.NewIFTBuilder(stabchain.DefaultSelector{}, action.Natural{})
	ift.SetGenerators(g)
	iftChain := ift.Build()

	assert.Equal(t, 0, naiveChain.Order().Cmp(iftChain.Order()))
}

func TestIFTBuilderMembership(t *testing.T) {
	g := group.Symmetric(5)
	b := stabchain.NewIFTBuilder(stabchain.DefaultSelector{}, action.Natural{})
	b.SetGenerators(g)
	chain := b.Build()
	for _, gen := range g.Generators() {
		assert.True(t, chain.IsMember(gen))
	}
	nonMember := group.Symmetric(6).Generators()[1] // moves point 5, outside S5's domain
	assert.False(t, chain.IsMember(nonMember))
}

func TestIFTBuilderTrivialGroup(t *testing.T) {
	b := stabchain.NewIFTBuilder(stabchain.DefaultSelector{}, action.Natural{})
	b.SetGenerators(group.Trivial())
	chain := b.Build()
	assert.Empty(t, chain.Records)
}
