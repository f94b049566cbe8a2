// Package action defines the Action capability: how a permutation acts
// on a point, and how a builder picks the next base point from a newly
// absorbed generator. Keeping this as its own tiny package (mirroring
// the teacher's bfs/types.go-style small option files) lets every
// stabchain strategy stay polymorphic over the action, even though in
// practice only the natural action is used.
package action

import "github.com/katalvlaran/stabchain/perm"

// Action maps (permutation, point) to the point's image, and picks the
// point a new chain level should be built around.
type Action interface {
	// Apply returns the image of x under p.
	Apply(p perm.Permutation, x perm.Point) perm.Point

	// MovedPoint returns the point a new StabchainRecord for level
	// should be based at, given the generator p that is forcing the new
	// level to exist and the points already used as a base at shallower
	// levels.
	MovedPoint(p perm.Permutation, level int, base []perm.Point) perm.Point
}

// Natural is the default Action: apply(p, x) = p.Apply(x), and
// MovedPoint returns the least point moved by p that isn't already a
// base point.
type Natural struct{}

// Apply implements Action.
func (Natural) Apply(p perm.Permutation, x perm.Point) perm.Point {
	return p.Apply(x)
}

// MovedPoint implements Action.
func (Natural) MovedPoint(p perm.Permutation, _ int, base []perm.Point) perm.Point {
	lmp, ok := p.Lmp()
	if !ok {
		return 0
	}
	used := make(map[perm.Point]struct{}, len(base))
	for _, b := range base {
		used[b] = struct{}{}
	}
	for x := 0; x <= lmp; x++ {
		if p.Apply(x) == x {
			continue
		}
		if _, taken := used[x]; taken {
			continue
		}
		return x
	}
	// Every moved point is already a base point (p fixes the base
	// setwise but not pointwise in a way this selector can resolve);
	// fall back to the first moved point even if reused — callers that
	// need strict non-collision should use a different selector.
	for x := 0; x <= lmp; x++ {
		if p.Apply(x) != x {
			return x
		}
	}
	return 0
}
