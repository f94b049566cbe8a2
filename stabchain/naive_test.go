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

func TestNaiveBuilderSymmetricOrder(t *testing.T) {
	for n, want := range map[int]int64{3: 6, 4: 24, 5: 120} {
		g := group.Symmetric(n)
		b := stabchain.NewNaiveBuilder(stabchain.DefaultSelector{}, action.Natural{})
		b.SetGenerators(g)
		chain := b.Build()
		require.NoError(t, stabchain.ValidStabchain(chain, action.Natural{}))
		assert.Equal(t, 0, chain.Order().Cmp(big.NewInt(want)), "S%d order", n)
	}
}

func TestNaiveBuilderCyclicOrder(t *testing.T) {
	g := group.Cyclic(7)
	b := stabchain.NewNaiveBuilder(stabchain.DefaultSelector{}, action.Natural{})
	b.SetGenerators(g)
	chain := b.Build()
	assert.Equal(t, 0, chain.Order().Cmp(big.NewInt(7)))
}

func TestNaiveBuilderTrivialGroup(t *testing.T) {
	b := stabchain.NewNaiveBuilder(stabchain.DefaultSelector{}, action.Natural{})
	b.SetGenerators(group.Trivial())
	chain := b.Build()
	assert.Empty(t, chain.Records)
	assert.Equal(t, 0, chain.Order().Cmp(big.NewInt(1)))
}

func TestNaiveBuilderMembership(t *testing.T) {
	g := group.Symmetric(4)
	b := stabchain.NewNaiveBuilder(stabchain.DefaultSelector{}, action.Natural{})
	b.SetGenerators(g)
	chain := b.Build()
	for _, gen := range g.Generators() {
		assert.True(t, chain.IsMember(gen))
	}
}
