package stabchain_test

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/stabchain"
)

func TestRandomBuilderWithKnownOrderConverges(t *testing.T) {
	for n, want := range map[int]int64{3: 6, 4: 24, 5: 120} {
		g := group.Symmetric(n)
		rng := rand.New(rand.NewSource(int64(n) * 7))
		params := stabchain.NewRandomParams(stabchain.WithOrder(big.NewInt(want)))
		b := stabchain.NewRandomBuilder(stabchain.DefaultSelector{}, action.Natural{}, params, rng)
		b.SetGenerators(g)
		chain := b.Build()
		assert.Equal(t, 0, chain.Order().Cmp(big.NewInt(want)), "S%d order", n)
		assert.NoError(t, stabchain.ValidStabchain(chain, action.Natural{}))
	}
}

func TestRandomBuilderMembershipSoundness(t *testing.T) {
	g := group.Cyclic(9)
	rng := rand.New(rand.NewSource(3))
	params := stabchain.NewRandomParams(stabchain.WithOrder(big.NewInt(9)))
	b := stabchain.NewRandomBuilder(stabchain.DefaultSelector{}, action.Natural{}, params, rng)
	b.SetGenerators(g)
	chain := b.Build()
	for _, gen := range g.Generators() {
		assert.True(t, chain.IsMember(gen))
	}
}

func TestRandomBuilderTrivialGroup(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := stabchain.NewRandomBuilder(stabchain.DefaultSelector{}, action.Natural{}, stabchain.NewRandomParams(), rng)
	b.SetGenerators(group.Trivial())
	chain := b.Build()
	assert.Empty(t, chain.Records)
}

func TestNewRandomParamsDefaults(t *testing.T) {
	p := stabchain.NewRandomParams()
	assert.Equal(t, 10, p.C1)
	assert.Nil(t, p.Order)
	assert.False(t, p.QuickTest)

	p2 := stabchain.NewRandomParams(stabchain.WithQuickTest(true), stabchain.WithC1(2))
	assert.True(t, p2.QuickTest)
	assert.Equal(t, 2, p2.C1)
}

func TestRandomBuilderQuickTestStillConverges(t *testing.T) {
	g := group.Symmetric(4)
	rng := rand.New(rand.NewSource(99))
	params := stabchain.NewRandomParams(stabchain.WithOrder(big.NewInt(24)), stabchain.WithQuickTest(true))
	b := stabchain.NewRandomBuilder(stabchain.DefaultSelector{}, action.Natural{}, params, rng)
	b.SetGenerators(g)
	chain := b.Build()
	require.Equal(t, 0, chain.Order().Cmp(big.NewInt(24)))
}

// TestRandomBuilderNoKnownOrderConverges exercises the no-known-order
// path: without WithOrder, termination is driven entirely by sgt's
// all-points residue test rather than an exact order check, so this is
// the only unit test (besides the integration harness) that actually
// runs the SGT phase. Run across several seeds since the result is
// only probably correct.
func TestRandomBuilderNoKnownOrderConverges(t *testing.T) {
	g := group.Symmetric(6)
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		rng := rand.New(rand.NewSource(seed))
		params := stabchain.NewRandomParams()
		b := stabchain.NewRandomBuilder(stabchain.DefaultSelector{}, action.Natural{}, params, rng)
		b.SetGenerators(g)
		chain := b.Build()
		assert.NoError(t, stabchain.ValidStabchain(chain, action.Natural{}), "seed %d", seed)
		assert.NoError(t, stabchain.CorrectStabchainOrder(chain, big.NewInt(720)), "seed %d", seed)
	}
}
