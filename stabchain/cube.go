package stabchain

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/perm"
)

// Cube is the shallow-transversal structure from the remark after
// Lemma 4.4.1 in Seress's "Permutation Group Algorithms", transcribed
// from original_source's cube.rs. Unlike FactoredTransversal's
// Schreier tree (depth up to |orbit|-1), Cube builds the orbit in
// O(log|orbit|) rounds by repeatedly closing the current point set
// under each generator and its inverse, so every orbit point has a
// short (though not minimal-length) representative word.
type Cube struct {
	// Orbit maps each discovered point to the inverse of the single
	// generator (or inverse-generator) that discovered it, not a
	// composed word.
	Orbit map[perm.Point]perm.Permutation
	// Depth maps each point to the round it was first discovered in.
	Depth map[perm.Point]int
	// frontier is the last round's point set (cube[i] in cube.rs), kept
	// as a dense bitset rather than a map[Point]struct{} since rounds
	// only ever test and set membership over a bounded, usually dense
	// range of points — exactly the use case bitset targets.
	frontier *bitset.BitSet
}

// frontierPoints returns f's set bits as a []perm.Point, for iterating
// a round's point set in NewCube.
func frontierPoints(f *bitset.BitSet) []perm.Point {
	pts := make([]perm.Point, 0, f.Count())
	for i, ok := f.NextSet(0); ok; i, ok = f.NextSet(i + 1) {
		pts = append(pts, perm.Point(i))
	}
	return pts
}

// NewCube builds a Cube rooted at base, processing seq in order. If
// expectedSize >= 0, construction stops early once the orbit reaches
// that size (a known upper bound on the true orbit size lets callers
// avoid processing the rest of seq).
func NewCube(base perm.Point, seq []perm.Permutation, a action.Action, expectedSize int) *Cube {
	orbit := map[perm.Point]perm.Permutation{base: perm.ID()}
	depth := map[perm.Point]int{base: 0}
	frontier := bitset.New(uint(base + 1))
	frontier.Set(uint(base))

	for _, p := range seq {
		next := bitset.New(frontier.Len())
		pInv := p.Inv()
		for _, j := range frontierPoints(frontier) {
			val := a.Apply(p, j)
			if _, ok := orbit[val]; !ok {
				orbit[val] = pInv
				depth[val] = depth[j] + 1
			}
			next.Set(uint(val))

			valInv := a.Apply(pInv, j)
			if _, ok := orbit[valInv]; !ok {
				orbit[valInv] = p
				depth[valInv] = depth[j] + 1
			}
			next.Set(uint(valInv))
		}
		next.InPlaceUnion(frontier)
		frontier = next
		if expectedSize >= 0 && len(orbit) == expectedSize {
			break
		}
	}
	return &Cube{Orbit: orbit, Depth: depth, frontier: frontier}
}

// Representative returns a permutation R with R.Apply(base) == pt,
// walking the cube's (generator, not word) edges back to base one hop
// at a time — shallower than FactoredTransversal.Representative's path
// only in the aggregate (bounded depth), not per-call simplicity, since
// each hop still requires a single Multiply.
func (c *Cube) Representative(base, pt perm.Point, a action.Action) (perm.Permutation, bool) {
	if _, ok := c.Orbit[pt]; !ok {
		return nil, false
	}
	result := perm.ID()
	cur := pt
	for cur != base {
		edge, ok := c.Orbit[cur]
		if !ok {
			return nil, false
		}
		g := edge.Inv()
		result = g.Multiply(result)
		cur = a.Apply(edge, cur)
	}
	return result, true
}

// Len returns the orbit size.
func (c *Cube) Len() int {
	return len(c.Orbit)
}
