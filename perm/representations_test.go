package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stabchain/perm"
)

func TestBasedPermutationMatchesDense(t *testing.T) {
	dense := perm.FromImages([]perm.Point{0, 1, 3, 4, 2})
	based := perm.NewBasedPermutation(2, []perm.Point{1, 2, 0})
	for x := 0; x < 6; x++ {
		assert.Equal(t, dense.Apply(x), based.Apply(x), "x=%d", x)
	}
	assert.True(t, dense.Equal(based))
	assert.True(t, based.Equal(dense))
}

func TestMapPermutationSparse(t *testing.T) {
	mp := perm.NewMapPermutation(map[perm.Point]perm.Point{5: 7, 7: 5})
	assert.Equal(t, 7, mp.Apply(5))
	assert.Equal(t, 5, mp.Apply(7))
	assert.Equal(t, 3, mp.Apply(3))
	assert.False(t, mp.IsID())

	dense := perm.FromImages(func() []perm.Point {
		v := make([]perm.Point, 8)
		for i := range v {
			v[i] = i
		}
		v[5], v[7] = 7, 5
		return v
	}())
	assert.True(t, mp.Equal(dense))
}

func TestSyncPermutationDelegates(t *testing.T) {
	p := perm.FromImages([]perm.Point{1, 2, 0})
	sp := perm.NewSyncPermutation(p)
	for x := 0; x < 3; x++ {
		assert.Equal(t, p.Apply(x), sp.Apply(x))
	}
	assert.True(t, sp.Equal(p))
	assert.Equal(t, p.Order(), sp.Order())
}

func TestWordPermutationCollapse(t *testing.T) {
	a := perm.FromImages([]perm.Point{1, 0})
	b := perm.FromImages([]perm.Point{0, 2, 1})
	w := perm.NewWordPermutationFrom([]perm.Permutation{a, b})
	collapsed := w.Collapse()
	expected := perm.ID().Multiply(a).Multiply(b)
	assert.True(t, collapsed.Equal(expected))

	w2 := w.Extend(a.Inv())
	for x := 0; x < 3; x++ {
		assert.Equal(t, w2.Collapse().Apply(x), w2.Apply(x))
	}
}

func TestWordPermutationFlattensNestedWords(t *testing.T) {
	a := perm.FromImages([]perm.Point{1, 0})
	b := perm.FromImages([]perm.Point{0, 2, 1})
	w1 := perm.NewWordPermutationFrom([]perm.Permutation{a})
	w2 := perm.NewWordPermutationFrom([]perm.Permutation{b})
	combined := w1.Multiply(w2)
	wp, ok := combined.(perm.WordPermutation)
	if assert.True(t, ok) {
		assert.Len(t, wp.Factors(), 2)
	}
}

func TestHashConsistentAcrossRepresentations(t *testing.T) {
	dense := perm.FromImages([]perm.Point{1, 2, 0})
	based := perm.NewBasedPermutation(0, []perm.Point{1, 2, 0})
	mp := perm.NewMapPermutation(map[perm.Point]perm.Point{0: 1, 1: 2, 2: 0})
	assert.Equal(t, dense.Hash(), based.Hash())
	assert.Equal(t, dense.Hash(), mp.Hash())
}
