package perm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stabchain/perm"
)

func TestParseCyclesRoundTrip(t *testing.T) {
	c, err := perm.ParseCycles([][]int{{1, 2, 3}, {4, 5}})
	require.NoError(t, err)
	assert.Equal(t, "(1 2 3)(4 5)", c.String())

	p := c.Permutation()
	back := perm.ExportCycles(p)
	assert.Equal(t, c.String(), back.String())
}

func TestParseCyclesRejectsDuplicates(t *testing.T) {
	_, err := perm.ParseCycles([][]int{{1, 2}, {2, 3}})
	require.Error(t, err)
	assert.ErrorIs(t, err, perm.ErrDuplicatePoint)
}

func TestParseCyclesRejectsNonPositive(t *testing.T) {
	_, err := perm.ParseCycles([][]int{{0, 1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, perm.ErrMalformedCycle)
}

func TestIdentityCycleString(t *testing.T) {
	assert.Equal(t, "()", perm.ExportCycles(perm.ID()).String())
}

func TestParseImageVector(t *testing.T) {
	p, err := perm.ParseImageVector([]int{2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Apply(0))
	assert.Equal(t, 2, p.Apply(1))
	assert.Equal(t, 0, p.Apply(2))
}

func TestParseImageVectorRejectsNonBijection(t *testing.T) {
	_, err := perm.ParseImageVector([]int{1, 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, perm.ErrBadImageVector)
}

func TestParseZeroIndexedImageVector(t *testing.T) {
	p, err := perm.ParseZeroIndexedImageVector([]int{1, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Apply(0))
	assert.Equal(t, 0, p.Apply(1))
}
