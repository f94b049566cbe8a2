package stabchain

import "github.com/katalvlaran/stabchain/perm"

// BaseSelector picks the point a new chain level should be built
// around, given the generator forcing that level into existence and
// the base points already chosen at shallower levels.
type BaseSelector interface {
	MovedPoint(p perm.Permutation, level int, base []perm.Point) perm.Point
}

// LmpSelector picks the largest point moved by p that isn't already a
// base point. Favors bases that front-load high-index structure —
// useful when generators are dense permutations on a large domain and
// most of the "action" is concentrated near the top of the support.
type LmpSelector struct{}

// MovedPoint implements BaseSelector.
func (LmpSelector) MovedPoint(p perm.Permutation, _ int, base []perm.Point) perm.Point {
	lmp, ok := p.Lmp()
	if !ok {
		return 0
	}
	used := basePointSet(base)
	for x := lmp; x >= 0; x-- {
		if p.Apply(x) == x {
			continue
		}
		if _, taken := used[x]; taken {
			continue
		}
		return x
	}
	return lmp
}

// FmpSelector picks the smallest (first) point moved by p that isn't
// already a base point, matching original_source's use of the least
// moved point.
type FmpSelector struct{}

// MovedPoint implements BaseSelector.
func (FmpSelector) MovedPoint(p perm.Permutation, _ int, base []perm.Point) perm.Point {
	lmp, ok := p.Lmp()
	if !ok {
		return 0
	}
	used := basePointSet(base)
	for x := 0; x <= lmp; x++ {
		if p.Apply(x) == x {
			continue
		}
		if _, taken := used[x]; taken {
			continue
		}
		return x
	}
	for x := 0; x <= lmp; x++ {
		if p.Apply(x) != x {
			return x
		}
	}
	return 0
}

// DefaultSelector is an alias for FmpSelector. Builders take their
// selector as an explicit constructor argument; none picks one itself.
type DefaultSelector = FmpSelector

func basePointSet(base []perm.Point) map[perm.Point]struct{} {
	used := make(map[perm.Point]struct{}, len(base))
	for _, b := range base {
		used[b] = struct{}{}
	}
	return used
}
