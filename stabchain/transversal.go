package stabchain

import (
	"sort"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/perm"
)

// FactoredTransversal maps each point in an orbit to the inverse of the
// generator that carried it there from its Schreier-tree parent — one
// edge per orbit point. The base point itself always maps to the identity.
//
// Storing the inverse (rather than the forward generator) matches
// original_source's cube.rs (`p.inv()`) and ift.rs
// (`record.transversal.insert(next_orbit_point, p.inv())`); Representative
// below inverts each edge back to its forward generator while walking.
type FactoredTransversal map[perm.Point]perm.Permutation

// NewFactoredTransversal returns a FactoredTransversal containing only
// the identity entry at base.
func NewFactoredTransversal(base perm.Point) FactoredTransversal {
	return FactoredTransversal{base: perm.ID()}
}

// Orbit returns the set of points reachable from base under gens.
func Orbit(gens []perm.Permutation, base perm.Point, a action.Action) map[perm.Point]struct{} {
	t := BuildFactoredTransversal(gens, base, a)
	out := make(map[perm.Point]struct{}, len(t))
	for pt := range t {
		out[pt] = struct{}{}
	}
	return out
}

// BuildFactoredTransversal computes the orbit of base under gens by
// breadth-first closure, recording a FactoredTransversal edge for each
// newly discovered point. It mirrors the teacher's bfs.BFS walker: a
// FIFO frontier, a visited set, and one loop that both discovers new
// points and records how they were reached.
func BuildFactoredTransversal(gens []perm.Permutation, base perm.Point, a action.Action) FactoredTransversal {
	t := NewFactoredTransversal(base)
	if len(gens) == 0 {
		return t
	}
	queue := []perm.Point{base}
	for len(queue) > 0 {
		pt := queue[0]
		queue = queue[1:]
		for _, g := range gens {
			img := a.Apply(g, pt)
			if _, seen := t[img]; seen {
				continue
			}
			t[img] = g.Inv()
			queue = append(queue, img)
		}
	}
	return t
}

// pathToBase walks t from pt back to base following stored edges,
// returning the edges in the order encountered (closest to pt first).
// The edge at index i is the inverse of the forward generator for that
// hop; callers invert and fold in reverse to get a base->pt representative.
func pathToBase(t FactoredTransversal, base, pt perm.Point, a action.Action) ([]perm.Permutation, bool) {
	if _, ok := t[pt]; !ok {
		return nil, false
	}
	var path []perm.Permutation
	cur := pt
	for cur != base {
		edge, ok := t[cur]
		if !ok {
			return nil, false
		}
		path = append(path, edge)
		cur = a.Apply(edge, cur)
	}
	return path, true
}

// Representative returns a permutation R with R.Apply(base) == pt,
// built from transversal edges, and true, or (nil, false) if pt isn't
// in t's orbit.
func Representative(t FactoredTransversal, base, pt perm.Point, a action.Action) (perm.Permutation, bool) {
	path, ok := pathToBase(t, base, pt, a)
	if !ok {
		return nil, false
	}
	result := perm.ID()
	for i := len(path) - 1; i >= 0; i-- {
		result = result.Multiply(path[i].Inv())
	}
	return result, true
}

// RepresentativeWord is Representative, but returns a lazy
// WordPermutation instead of an eagerly collapsed product — useful
// when the caller (e.g. the randomized builder's Schreier-generator
// search) only needs to Apply a handful of points before discarding
// most candidates.
func RepresentativeWord(t FactoredTransversal, base, pt perm.Point, a action.Action) (perm.WordPermutation, bool) {
	path, ok := pathToBase(t, base, pt, a)
	if !ok {
		return perm.WordPermutation{}, false
	}
	w := perm.NewWordPermutation()
	for i := len(path) - 1; i >= 0; i-- {
		w = w.Extend(path[i].Inv())
	}
	return w, true
}

// Points returns the set of points reachable from base, as recorded by t,
// in increasing order.
func (t FactoredTransversal) Points() []perm.Point {
	pts := make([]perm.Point, 0, len(t))
	for pt := range t {
		pts = append(pts, pt)
	}
	sort.Ints(pts)
	return pts
}

// Len returns the orbit size |t|.
func (t FactoredTransversal) Len() int {
	return len(t)
}

// Contains reports whether pt is in the orbit recorded by t.
func (t FactoredTransversal) Contains(pt perm.Point) bool {
	_, ok := t[pt]
	return ok
}

// Clone returns a shallow copy of t (the Permutation values are
// immutable, so sharing them across the copy is safe).
func (t FactoredTransversal) Clone() FactoredTransversal {
	cp := make(FactoredTransversal, len(t))
	for k, v := range t {
		cp[k] = v
	}
	return cp
}
