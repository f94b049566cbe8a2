package group

import (
	"math/rand"

	"github.com/katalvlaran/stabchain/perm"
)

// MinSize is the minimum product-replacement slate size (spec.md §4.4).
const MinSize = 11

// InitialRuns is the number of warm-up steps run at construction
// (spec.md §4.4).
const InitialRuns = 50

// RandPerm generates random elements of a subgroup by product
// replacement: a slate of permutations is maintained, and each call
// replaces one slate entry with a product involving another, folding the
// same update into a running accumulator. After enough steps the
// accumulator is close to uniformly distributed over the generated
// subgroup. RandPerm carries mutable state and is not safe for
// concurrent use by multiple goroutines.
type RandPerm struct {
	rng   *rand.Rand
	slate []perm.Permutation
	accum perm.Permutation
}

// NewRandPerm builds a RandPerm seeded from g's generators, padded (by
// cycling) up to minSize entries if g has fewer generators, then
// warmed up for initialRuns steps. If g has no generators, every draw
// is the identity.
func NewRandPerm(minSize int, g Group, initialRuns int, rng *rand.Rand) *RandPerm {
	gens := g.Generators()
	var slate []perm.Permutation
	if len(gens) == 0 {
		slate = []perm.Permutation{perm.ID()}
	} else {
		slate = make([]perm.Permutation, len(gens))
		copy(slate, gens)
	}
	k := len(slate)
	size := minSize
	if k > size {
		size = k
	}
	for i := k; i < size; i++ {
		slate = append(slate, slate[(i-k)%k])
	}
	rp := &RandPerm{
		rng:   rng,
		slate: slate,
		accum: perm.ID(),
	}
	for i := 0; i < initialRuns; i++ {
		rp.RandomPermutation()
	}
	return rp
}

// FromGenerators builds a RandPerm with a fixed default seed. Callers
// that care about reproducibility or true randomness should use
// NewRandPerm with an explicit *rand.Rand instead.
func FromGenerators(minSize int, g Group, initialRuns int) *RandPerm {
	return NewRandPerm(minSize, g, initialRuns, rand.New(rand.NewSource(1)))
}

// RandomPermutation performs one product-replacement step and returns
// the updated accumulator.
func (r *RandPerm) RandomPermutation() perm.Permutation {
	n := len(r.slate)
	s := r.rng.Intn(n)
	t := s
	for t == s {
		t = r.rng.Intn(n)
	}
	e := 1
	if r.rng.Intn(2) == 0 {
		e = -1
	}
	if r.rng.Intn(2) == 0 {
		// "right": slate[s] <- slate[s]·slate[t]^e; accum <- accum·slate[s]
		r.slate[s] = r.slate[s].Multiply(r.slate[t].Pow(e))
		r.accum = r.accum.Multiply(r.slate[s])
	} else {
		// "left": slate[s] <- slate[t]^e·slate[s]; accum <- slate[s]·accum
		r.slate[s] = r.slate[t].Pow(e).Multiply(r.slate[s])
		r.accum = r.slate[s].Multiply(r.accum)
	}
	return r.accum
}

// CayleyWalk returns the product of k generators chosen uniformly at
// random from g, each optionally inverted, collapsed into a single
// permutation. Returns the identity if g has no generators.
func CayleyWalk(g Group, k int, rng *rand.Rand) perm.Permutation {
	gens := g.Generators()
	if len(gens) == 0 {
		return perm.ID()
	}
	w := perm.NewWordPermutation()
	for i := 0; i < k; i++ {
		elem := gens[rng.Intn(len(gens))]
		if rng.Intn(2) == 0 {
			elem = elem.Inv()
		}
		w = w.Extend(elem)
	}
	return w.Collapse()
}

// LazyCayleyWalk is CayleyWalk, but at each of the k steps a coin flip
// decides whether to multiply by a random generator or by the identity
// (i.e. stay put). This biases the walk toward shorter effective words.
func LazyCayleyWalk(g Group, k int, rng *rand.Rand) perm.Permutation {
	gens := g.Generators()
	if len(gens) == 0 {
		return perm.ID()
	}
	w := perm.NewWordPermutation()
	for i := 0; i < k; i++ {
		if rng.Intn(2) == 0 {
			continue
		}
		elem := gens[rng.Intn(len(gens))]
		if rng.Intn(2) == 0 {
			elem = elem.Inv()
		}
		w = w.Extend(elem)
	}
	return w.Collapse()
}
