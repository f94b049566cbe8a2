package perm

// WordPermutation is a lazy, unevaluated product of Permutations. It
// exists so the randomized stabilizer-chain strategy can assemble long
// candidate Schreier generators (a random subproduct, times a coset
// representative, times a sift residue) without collapsing to a dense
// image vector until it actually needs to apply, compare or sift the
// result — most candidates are discarded after a handful of point
// applications during sifting.
//
// A WordPermutation is immutable: Multiply returns a new, longer word.
// Apply folds over the stored factors directly, which is cheap for the
// handful of points sifting actually touches; Collapse materializes a
// DensePermutation on demand for callers (Order, Equal, …) that need the
// whole bijection.
type WordPermutation struct {
	factors []Permutation
}

// NewWordPermutation starts an empty (identity) word.
func NewWordPermutation() WordPermutation {
	return WordPermutation{}
}

// NewWordPermutationFrom starts a word from an existing slice of factors,
// applied left to right (the same order Multiply would append them in).
func NewWordPermutationFrom(factors []Permutation) WordPermutation {
	cp := make([]Permutation, len(factors))
	copy(cp, factors)
	return WordPermutation{factors: cp}
}

// Factors returns the word's factors, in application order. The caller
// must not mutate the returned slice.
func (p WordPermutation) Factors() []Permutation {
	return p.factors
}

// Extend appends more factors, applied after the existing ones.
func (p WordPermutation) Extend(more ...Permutation) WordPermutation {
	out := make([]Permutation, len(p.factors)+len(more))
	copy(out, p.factors)
	copy(out[len(p.factors):], more)
	return WordPermutation{factors: out}
}

// Collapse materializes the word into a single DensePermutation.
func (p WordPermutation) Collapse() Permutation {
	acc := ID()
	for _, f := range p.factors {
		acc = acc.Multiply(f)
	}
	return acc
}

func (p WordPermutation) Apply(x Point) Point {
	for _, f := range p.factors {
		x = f.Apply(x)
	}
	return x
}

func (p WordPermutation) Inv() Permutation {
	inv := make([]Permutation, len(p.factors))
	for i, f := range p.factors {
		inv[len(p.factors)-1-i] = f.Inv()
	}
	return WordPermutation{factors: inv}
}

func (p WordPermutation) Multiply(other Permutation) Permutation {
	if ow, ok := other.(WordPermutation); ok {
		return p.Extend(ow.factors...)
	}
	return p.Extend(other)
}

func (p WordPermutation) Divide(other Permutation) Permutation {
	return p.Multiply(other.Inv())
}

func (p WordPermutation) Pow(k int) Permutation {
	return p.Collapse().Pow(k)
}

func (p WordPermutation) Order() int {
	return p.Collapse().Order()
}

func (p WordPermutation) Lmp() (Point, bool) {
	return p.Collapse().Lmp()
}

func (p WordPermutation) Shift(k Point) Permutation {
	shifted := make([]Permutation, len(p.factors))
	for i, f := range p.factors {
		shifted[i] = f.Shift(k)
	}
	return WordPermutation{factors: shifted}
}

func (p WordPermutation) IsID() bool {
	return p.Collapse().IsID()
}

func (p WordPermutation) Equal(other Permutation) bool {
	return p.Collapse().Equal(other)
}

func (p WordPermutation) Hash() uint64 {
	return p.Collapse().Hash()
}

func (p WordPermutation) String() string {
	return p.Collapse().String()
}
