package perm

// Point identifies an element of the domain Ω a Permutation acts on.
// Points are nonnegative and compared, hashed, and ordered as plain ints.
type Point = int

// Permutation is the capability every stabilizer-chain construction
// strategy consumes. Implementations are immutable value types: no
// method mutates the receiver, every method that "changes" a permutation
// returns a new one.
//
// Invariants (spec.md §4.1):
//
//	Multiply is associative.
//	Multiply(ID(), p) == Multiply(p, ID()) == p.
//	p.Inv().Inv() behaves identically to p.
//	ID().Apply(x) == x for all x.
//	p.Pow(0) == ID(); p.Pow(-1) == p.Inv().
//	p.Shift(k).Apply(y) == p.Apply(y-k)+k for y >= k, and == y otherwise.
type Permutation interface {
	// Apply returns the image of x under the permutation.
	Apply(x Point) Point

	// Inv returns the inverse permutation.
	Inv() Permutation

	// Multiply returns the product self·other (apply self first, then other:
	// (self.Multiply(other)).Apply(x) == other.Apply(self.Apply(x))).
	Multiply(other Permutation) Permutation

	// Divide returns self·other⁻¹.
	Divide(other Permutation) Permutation

	// Pow returns the k-th power, k may be negative or zero.
	Pow(k int) Permutation

	// Order returns the multiplicative order of the permutation.
	Order() int

	// Lmp returns the largest moved point and true, or (0, false) for the
	// identity permutation.
	Lmp() (Point, bool)

	// Shift relabels every moved point x to x+k.
	Shift(k int) Permutation

	// IsID reports whether this permutation is the identity.
	IsID() bool

	// Equal reports whether self and other describe the same bijection.
	Equal(other Permutation) bool

	// Hash returns a value suitable for use as a deterministic map key
	// surrogate; equal permutations always hash equal.
	Hash() uint64

	// String renders the permutation in disjoint-cycle notation, 0-indexed.
	String() string
}

// fmtString is a small helper so representations share one String
// implementation instead of duplicating the cycle-walk logic.
func fmtString(p Permutation) string {
	c := ExportCycles(p)
	return c.String()
}
