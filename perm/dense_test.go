package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabchain/perm"
)

func TestIdentityInvariants(t *testing.T) {
	id := perm.ID()
	assert.True(t, id.IsID())
	assert.Equal(t, 0, id.Apply(0))
	assert.Equal(t, 5, id.Apply(5))
	_, ok := id.Lmp()
	assert.False(t, ok)

	p := perm.FromImages([]perm.Point{1, 0, 2})
	assert.True(t, id.Multiply(p).Equal(p))
	assert.True(t, p.Multiply(id).Equal(p))
	assert.True(t, p.Pow(0).Equal(id))
	assert.True(t, p.Pow(-1).Equal(p.Inv()))
}

func TestInverse(t *testing.T) {
	p := perm.FromImages([]perm.Point{1, 2, 0}) // 3-cycle (0 1 2)
	inv := p.Inv()
	assert.True(t, p.Multiply(inv).IsID())
	assert.True(t, inv.Multiply(p).IsID())
	assert.True(t, inv.Inv().Equal(p))
}

func TestMultiplyConvention(t *testing.T) {
	// (p.Multiply(q)).Apply(x) == q.Apply(p.Apply(x)): apply p first, then q.
	p := perm.FromImages([]perm.Point{1, 0}) // (0 1)
	q := perm.FromImages([]perm.Point{0, 2, 1}) // (1 2)
	pq := p.Multiply(q)
	for x := 0; x < 3; x++ {
		assert.Equal(t, q.Apply(p.Apply(x)), pq.Apply(x))
	}
}

func TestOrder(t *testing.T) {
	cyc4, err := perm.SingleCycle(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cyc4.Permutation().Order())

	two, err := perm.ParseCycles([][]int{{1, 2, 3}, {5, 6}})
	require.NoError(t, err)
	assert.Equal(t, 6, two.Permutation().Order())
}

func TestShiftCommutesWithApply(t *testing.T) {
	p := perm.FromImages([]perm.Point{1, 2, 0})
	k := 5
	shifted := p.Shift(k)
	for y := 0; y < 10; y++ {
		if y >= k {
			assert.Equal(t, p.Apply(y-k)+k, shifted.Apply(y))
		} else {
			assert.Equal(t, y, shifted.Apply(y))
		}
	}
}

func TestPowNegative(t *testing.T) {
	p := perm.FromImages([]perm.Point{1, 2, 3, 0}) // 4-cycle
	assert.True(t, p.Pow(-1).Equal(p.Inv()))
	assert.True(t, p.Pow(4).IsID())
	assert.True(t, p.Pow(-4).IsID())
}

func TestDivide(t *testing.T) {
	p := perm.FromImages([]perm.Point{1, 2, 0})
	q := perm.FromImages([]perm.Point{0, 2, 1})
	d := p.Divide(q)
	assert.True(t, d.Multiply(q).Equal(p))
}
