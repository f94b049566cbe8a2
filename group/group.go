package group

import "github.com/katalvlaran/stabchain/perm"

// Group is an ordered finite sequence of generators over a shared
// permutation type. Duplicate generators are permitted but have no
// algebraic effect. Group values are immutable once constructed.
type Group struct {
	generators []perm.Permutation
}

// New builds a Group from an explicit generator list. The slice is
// copied; later mutation of gens does not affect the returned Group.
func New(gens []perm.Permutation) Group {
	cp := make([]perm.Permutation, len(gens))
	copy(cp, gens)
	return Group{generators: cp}
}

// Generators returns the group's generators. The caller must not mutate
// the returned slice.
func (g Group) Generators() []perm.Permutation {
	return g.generators
}

// SymmetricSuperOrder returns 1 + the largest moved point over every
// generator, or 0 for the trivial group — the size of the smallest
// symmetric group this Group is a subgroup of.
func (g Group) SymmetricSuperOrder() int {
	maxLmp := -1
	for _, p := range g.generators {
		if lmp, ok := p.Lmp(); ok && lmp > maxLmp {
			maxLmp = lmp
		}
	}
	if maxLmp < 0 {
		return 0
	}
	return maxLmp + 1
}

// Trivial returns the group with no generators.
func Trivial() Group {
	return Group{}
}

// Cyclic returns the cyclic group of order n generated by the single
// n-cycle (0 1 2 ... n-1). For n <= 1 this is the trivial group.
func Cyclic(n int) Group {
	if n <= 1 {
		return Trivial()
	}
	images := make([]perm.Point, n)
	for i := 0; i < n; i++ {
		images[i] = (i + 1) % n
	}
	return New([]perm.Permutation{perm.FromImages(images)})
}

// Symmetric returns the full symmetric group on n points, generated by
// the transposition (0 1) and the n-cycle (0 1 ... n-1) — the classical
// two-generator presentation.
func Symmetric(n int) Group {
	if n <= 1 {
		return Trivial()
	}
	transposition := make([]perm.Point, n)
	for i := range transposition {
		transposition[i] = i
	}
	transposition[0], transposition[1] = transposition[1], transposition[0]

	cycle := make([]perm.Point, n)
	for i := 0; i < n; i++ {
		cycle[i] = (i + 1) % n
	}
	return New([]perm.Permutation{perm.FromImages(transposition), perm.FromImages(cycle)})
}

// DirectProduct returns the direct product of the given groups, acting
// on disjoint point ranges: the i-th factor's generators are Shifted by
// the sum of the symmetric super-orders of the factors before it, and
// the resulting generator list is every shifted generator from every
// factor (so the factors commute, as a direct product requires).
func DirectProduct(groups ...Group) Group {
	var gens []perm.Permutation
	offset := 0
	for _, g := range groups {
		for _, p := range g.generators {
			if offset == 0 {
				gens = append(gens, p)
			} else {
				gens = append(gens, p.Shift(offset))
			}
		}
		offset += g.SymmetricSuperOrder()
	}
	return New(gens)
}

// CopiesOfCyclic returns a group generated by `copies` disjoint n-cycles
// — one generator per copy, each moving its own block of n points. This
// is deliberately distinct from DirectProduct(Cyclic(n), ...): here every
// copy is a single generator in one Group, rather than each copy
// contributing its own factor before combination. See SPEC_FULL.md §9
// for why this variant is preserved rather than normalized away.
func CopiesOfCyclic(copies, n int) Group {
	if copies <= 0 || n <= 1 {
		return Trivial()
	}
	gens := make([]perm.Permutation, 0, copies)
	for c := 0; c < copies; c++ {
		images := make([]perm.Point, n)
		for i := 0; i < n; i++ {
			images[i] = (i + 1) % n
		}
		gens = append(gens, perm.FromImages(images).Shift(c*n))
	}
	return New(gens)
}
