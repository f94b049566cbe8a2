package perm

// DensePermutation is the default Permutation representation: an image
// vector images[i] = p(i) for i in [0, len(images)). Points at or beyond
// len(images) are implicitly fixed. Every constructor and operation
// trims trailing fixed points, so the stored length is Lmp()+1 (0 for
// the identity) and callers never need to worry about padding.
type DensePermutation struct {
	images []Point
}

// ID returns the identity permutation.
func ID() Permutation {
	return DensePermutation{}
}

// FromImages interprets v as the image of 0,1,…,len(v)-1 and returns the
// corresponding permutation. v must be a bijection on [0, len(v)); the
// caller is responsible for validating untrusted input (see
// ParseImageVector for a validating variant).
func FromImages(v []Point) Permutation {
	trimmed := trimTrailingFixed(v)
	cp := make([]Point, len(trimmed))
	copy(cp, trimmed)
	return DensePermutation{images: cp}
}

// trimTrailingFixed drops any suffix of v where v[i] == i, so the stored
// length always equals Lmp()+1 (or 0 for the identity). This keeps Equal,
// Hash and String cheap and representation-independent.
func trimTrailingFixed(v []Point) []Point {
	n := len(v)
	for n > 0 && v[n-1] == n-1 {
		n--
	}
	return v[:n]
}

func (p DensePermutation) Apply(x Point) Point {
	if x < 0 || x >= len(p.images) {
		return x
	}
	return p.images[x]
}

func (p DensePermutation) Inv() Permutation {
	inv := make([]Point, len(p.images))
	for i, img := range p.images {
		inv[img] = i
	}
	return DensePermutation{images: trimTrailingFixed(inv)}
}

func (p DensePermutation) Multiply(other Permutation) Permutation {
	n := len(p.images)
	if lmp, ok := other.Lmp(); ok && lmp+1 > n {
		n = lmp + 1
	}
	if n == 0 {
		return ID()
	}
	out := make([]Point, n)
	for x := 0; x < n; x++ {
		out[x] = other.Apply(p.Apply(x))
	}
	return DensePermutation{images: trimTrailingFixed(out)}
}

func (p DensePermutation) Divide(other Permutation) Permutation {
	return p.Multiply(other.Inv())
}

func (p DensePermutation) Pow(k int) Permutation {
	if k < 0 {
		return p.Inv().Pow(-k)
	}
	result := ID()
	base := Permutation(p)
	for k > 0 {
		if k&1 == 1 {
			result = result.Multiply(base)
		}
		base = base.Multiply(base)
		k >>= 1
	}
	return result
}

func (p DensePermutation) Order() int {
	if p.IsID() {
		return 1
	}
	visited := make([]bool, len(p.images))
	order := 1
	for start := range p.images {
		if visited[start] {
			continue
		}
		cycleLen := 0
		cur := start
		for !visited[cur] {
			visited[cur] = true
			cur = p.images[cur]
			cycleLen++
		}
		if cycleLen > 1 {
			order = lcm(order, cycleLen)
		}
	}
	return order
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func (p DensePermutation) Lmp() (Point, bool) {
	if len(p.images) == 0 {
		return 0, false
	}
	return len(p.images) - 1, true
}

func (p DensePermutation) Shift(k Point) Permutation {
	if k == 0 {
		return p
	}
	out := make([]Point, len(p.images)+k)
	for i := 0; i < k; i++ {
		out[i] = i
	}
	for i, img := range p.images {
		out[i+k] = img + k
	}
	return DensePermutation{images: trimTrailingFixed(out)}
}

func (p DensePermutation) IsID() bool {
	return len(p.images) == 0
}

func (p DensePermutation) Equal(other Permutation) bool {
	n := len(p.images)
	if olmp, ok := other.Lmp(); ok && olmp+1 > n {
		n = olmp + 1
	}
	for x := 0; x < n; x++ {
		if p.Apply(x) != other.Apply(x) {
			return false
		}
	}
	return true
}

func (p DensePermutation) Hash() uint64 {
	return hashImages(p.images)
}

// hashImages computes a deterministic FNV-1a hash over an image vector.
// Shared by every representation so equal permutations (same trimmed
// image vector) always hash equal regardless of which representation
// produced them.
func hashImages(images []Point) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for _, v := range images {
		u := uint64(v)
		for i := 0; i < 8; i++ {
			h ^= u & 0xff
			h *= prime64
			u >>= 8
		}
	}
	return h
}

func (p DensePermutation) String() string {
	return fmtString(p)
}
