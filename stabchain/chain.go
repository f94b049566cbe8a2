package stabchain

import (
	"math/big"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/perm"
)

// Stabchain is a complete stabilizer chain: an ordered sequence of
// StabchainRecords from the full group down to the trivial subgroup,
// together with the Action used to build it. Base()[i] ==
// Records[i].Base for every i; Records[i].Gens stabilizes every
// Base()[j] for j < i.
type Stabchain struct {
	Records []StabchainRecord
	Action  action.Action
}

// Base returns the chain's base, in level order.
func (c *Stabchain) Base() []perm.Point {
	base := make([]perm.Point, len(c.Records))
	for i, r := range c.Records {
		base[i] = r.Base
	}
	return base
}

// StrongGeneratingSet returns the union of every level's generators —
// a strong generating set for the whole chain relative to its base.
func (c *Stabchain) StrongGeneratingSet() []perm.Permutation {
	var sgs []perm.Permutation
	for _, r := range c.Records {
		sgs = append(sgs, r.Gens.Generators()...)
	}
	return sgs
}

// Order returns the chain's order: the product of every level's orbit
// size. This equals |G| when the chain is a valid BSGS for G.
func (c *Stabchain) Order() *big.Int {
	order := big.NewInt(1)
	for _, r := range c.Records {
		order.Mul(order, big.NewInt(int64(r.OrbitSize())))
	}
	return order
}

// Sift reduces p through the chain level by level: at each level it
// divides out the coset representative of p's image at that level's
// base, stopping either when p has become the identity or when the
// current level's transversal doesn't contain the image (p is not a
// member of the group at or below that level). It returns the residue
// and the index of the level sifting stopped at (len(c.Records) if
// sifting consumed the whole chain).
func (c *Stabchain) Sift(p perm.Permutation) (perm.Permutation, int) {
	if p.IsID() {
		return p, len(c.Records)
	}
	g := p
	i := 0
	for _, r := range c.Records {
		image := c.Action.Apply(g, r.Base)
		if !r.Transversal.Contains(image) {
			break
		}
		repr, _ := Representative(r.Transversal, r.Base, image, c.Action)
		g = g.Divide(repr)
		i++
	}
	return g, i
}

// IsMember reports whether p belongs to the group described by the
// chain: sifting p fully reduces it to the identity.
func (c *Stabchain) IsMember(p perm.Permutation) bool {
	residue, level := c.Sift(p)
	return level == len(c.Records) && residue.IsID()
}

// ValidTransversal checks that t's base entry is the identity and that
// every recorded edge, when applied, walks strictly toward base —
// i.e. every point has a finite path back to base through t itself.
func ValidTransversal(t FactoredTransversal, base perm.Point, act action.Action) error {
	id, ok := t[base]
	if !ok {
		return &ValidationError{Err: ErrTransversalGap, Point: base, HasPt: true}
	}
	if !id.IsID() {
		return &ValidationError{Err: ErrTransversalRootMismatch, Point: base, HasPt: true}
	}
	for pt := range t {
		seen := map[perm.Point]bool{pt: true}
		cur := pt
		for cur != base {
			edge, ok := t[cur]
			if !ok {
				return &ValidationError{Err: ErrTransversalGap, Point: pt, HasPt: true}
			}
			cur = act.Apply(edge, cur)
			if seen[cur] {
				return &ValidationError{Err: ErrTransversalGap, Point: pt, HasPt: true}
			}
			seen[cur] = true
		}
	}
	return nil
}

// ValidStabchain checks every level's transversal with ValidTransversal
// and that each level's generators fix every strictly shallower base
// point — the defining stabilizer-chain invariant: level i's subgroup
// is the pointwise stabilizer of base[0..i-1].
func ValidStabchain(c *Stabchain, act action.Action) error {
	for level, r := range c.Records {
		if err := ValidTransversal(r.Transversal, r.Base, act); err != nil {
			if ve, ok := err.(*ValidationError); ok {
				ve.Level = level
			}
			return err
		}
		for shallower := 0; shallower < level; shallower++ {
			fixed := c.Records[shallower].Base
			for _, g := range r.Gens.Generators() {
				if act.Apply(g, fixed) != fixed {
					return &ValidationError{Err: ErrBaseNotFixed, Level: level, Point: fixed, HasPt: true}
				}
			}
		}
	}
	return nil
}

// CorrectStabchainOrder checks that c's computed Order matches want.
func CorrectStabchainOrder(c *Stabchain, want *big.Int) error {
	got := c.Order()
	if got.Cmp(want) != 0 {
		return &ValidationError{Err: ErrOrderMismatch, Level: len(c.Records)}
	}
	return nil
}
