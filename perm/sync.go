package perm

// SyncPermutation wraps a DensePermutation behind an immutable value
// copy so it can cross goroutine boundaries freely. Every method reads
// or builds a new value; nothing is ever mutated in place, so there is
// in fact nothing to lock — the type exists to document at the call site
// that a permutation value is intended to be shared across the parallel
// benchmark harness (cmd/stabbench), mirroring core.Graph's separate
// locking story for the same reason in the teacher package.
type SyncPermutation struct {
	inner DensePermutation
}

// NewSyncPermutation wraps an existing Permutation for safe cross-goroutine use.
func NewSyncPermutation(p Permutation) Permutation {
	if sp, ok := p.(SyncPermutation); ok {
		return sp
	}
	return SyncPermutation{inner: toDense(p)}
}

// toDense realizes any Permutation as a DensePermutation image vector.
func toDense(p Permutation) DensePermutation {
	if dp, ok := p.(DensePermutation); ok {
		return dp
	}
	lmp, ok := p.Lmp()
	if !ok {
		return DensePermutation{}
	}
	images := make([]Point, lmp+1)
	for x := 0; x <= lmp; x++ {
		images[x] = p.Apply(x)
	}
	return DensePermutation{images: trimTrailingFixed(images)}
}

func (p SyncPermutation) Apply(x Point) Point { return p.inner.Apply(x) }

func (p SyncPermutation) Inv() Permutation {
	return SyncPermutation{inner: toDense(p.inner.Inv())}
}

func (p SyncPermutation) Multiply(other Permutation) Permutation {
	return SyncPermutation{inner: toDense(p.inner.Multiply(other))}
}

func (p SyncPermutation) Divide(other Permutation) Permutation {
	return SyncPermutation{inner: toDense(p.inner.Divide(other))}
}

func (p SyncPermutation) Pow(k int) Permutation {
	return SyncPermutation{inner: toDense(p.inner.Pow(k))}
}

func (p SyncPermutation) Order() int { return p.inner.Order() }

func (p SyncPermutation) Lmp() (Point, bool) { return p.inner.Lmp() }

func (p SyncPermutation) Shift(k Point) Permutation {
	return SyncPermutation{inner: toDense(p.inner.Shift(k))}
}

func (p SyncPermutation) IsID() bool { return p.inner.IsID() }

func (p SyncPermutation) Equal(other Permutation) bool { return p.inner.Equal(other) }

func (p SyncPermutation) Hash() uint64 { return p.inner.Hash() }

func (p SyncPermutation) String() string { return p.inner.String() }
