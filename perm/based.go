package perm

// BasedPermutation is a DensePermutation shifted by an integer offset:
// every point below base is fixed, and point x >= base maps through the
// inner permutation at x-base, then back by +base. It avoids allocating
// an n-length image vector from zero when a permutation's support starts
// well above zero (e.g. the second factor of a direct product, or a
// chain record after several Shift calls).
type BasedPermutation struct {
	base   Point
	images []Point // inner DensePermutation-style image vector, 0-indexed
}

// NewBasedPermutation builds a BasedPermutation equivalent to
// FromImages(images).Shift(base), but without materializing the
// intervening fixed prefix.
func NewBasedPermutation(base Point, images []Point) Permutation {
	trimmed := trimTrailingFixed(images)
	// Drop any fixed prefix too, folding it into base.
	skip := 0
	for skip < len(trimmed) && trimmed[skip] == skip {
		skip++
	}
	if skip == len(trimmed) {
		return ID()
	}
	shifted := make([]Point, len(trimmed)-skip)
	for i, v := range trimmed[skip:] {
		shifted[i] = v - skip
	}
	return BasedPermutation{base: base + skip, images: shifted}
}

func (p BasedPermutation) dense() DensePermutation {
	return DensePermutation{images: p.images}
}

func (p BasedPermutation) Apply(x Point) Point {
	if x < p.base {
		return x
	}
	return p.dense().Apply(x-p.base) + p.base
}

func (p BasedPermutation) Inv() Permutation {
	if p.IsID() {
		return p
	}
	inv := p.dense().Inv().(DensePermutation)
	return BasedPermutation{base: p.base, images: inv.images}
}

func (p BasedPermutation) Multiply(other Permutation) Permutation {
	if p.IsID() {
		return other
	}
	if other.IsID() {
		return p
	}
	// General path: realize both as dense image vectors over their
	// combined support and let DensePermutation's Multiply do the work,
	// then re-fold into based form.
	result := p.dense().Shift(p.base).Multiply(other)
	dp, ok := result.(DensePermutation)
	if !ok {
		return result
	}
	return NewBasedPermutation(0, dp.images)
}

func (p BasedPermutation) Divide(other Permutation) Permutation {
	return p.Multiply(other.Inv())
}

func (p BasedPermutation) Pow(k int) Permutation {
	if p.IsID() {
		return p
	}
	if k < 0 {
		return p.Inv().Pow(-k)
	}
	inner := p.dense().Pow(k).(DensePermutation)
	return BasedPermutation{base: p.base, images: inner.images}
}

func (p BasedPermutation) Order() int {
	return p.dense().Order()
}

func (p BasedPermutation) Lmp() (Point, bool) {
	lmp, ok := p.dense().Lmp()
	if !ok {
		return 0, false
	}
	return lmp + p.base, true
}

func (p BasedPermutation) Shift(k Point) Permutation {
	if p.IsID() {
		return p
	}
	return BasedPermutation{base: p.base + k, images: p.images}
}

func (p BasedPermutation) IsID() bool {
	return len(p.images) == 0
}

func (p BasedPermutation) Equal(other Permutation) bool {
	return p.dense().Shift(p.base).Equal(other)
}

func (p BasedPermutation) Hash() uint64 {
	return p.dense().Shift(p.base).Hash()
}

func (p BasedPermutation) String() string {
	return fmtString(p)
}
