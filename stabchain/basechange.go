package stabchain

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/perm"
)

// BaseChangeBuilder rebuilds a Stabchain for a new base ordering
// without re-deriving generators from scratch: it starts from a chain
// of trivial records (one per new base point) and a random-element
// generator seeded from the old chain's strong generating set, then
// repeatedly samples, sifts, and augments until the new chain's order
// matches the old one's (spec.md §4.10, transcribed from
// original_source's base_change_builder/random.rs).
type BaseChangeBuilder struct {
	action action.Action
	rng    *rand.Rand
	chain  []StabchainRecord
}

// NewBaseChangeBuilder returns a BaseChangeBuilder using act as the
// group action and rng as the (caller-owned) random source.
func NewBaseChangeBuilder(act action.Action, rng *rand.Rand) *BaseChangeBuilder {
	return &BaseChangeBuilder{action: act, rng: rng}
}

// SetBase rebuilds the chain for newBase, which must retain every
// point of old's current base (ErrBaseMissingOldPoints) and must not
// repeat a point (ErrDuplicateBasePoint).
func (b *BaseChangeBuilder) SetBase(old *Stabchain, newBase []perm.Point) error {
	if len(newBase) == 0 {
		return ErrEmptyBase
	}
	seen := make(map[perm.Point]struct{}, len(newBase))
	for _, pt := range newBase {
		if _, dup := seen[pt]; dup {
			return ErrDuplicateBasePoint
		}
		seen[pt] = struct{}{}
	}
	for _, pt := range old.Base() {
		if _, ok := seen[pt]; !ok {
			return ErrBaseMissingOldPoints
		}
	}

	targetOrder := old.Order()
	sgs := old.StrongGeneratingSet()
	sgsGroup := group.New(sgs)

	b.chain = make([]StabchainRecord, len(newBase))
	for i, pt := range newBase {
		b.chain[i] = TrivialRecord(pt)
	}

	rp := group.NewRandPerm(group.MinSize, sgsGroup, group.InitialRuns, b.rng)
	for b.currentOrder().Cmp(targetOrder) != 0 {
		g := rp.RandomPermutation()
		residue, level := b.residueWithDropout(g)
		if level < len(newBase) {
			b.chain[level] = augmentTransversal(b.chain[level], residue, b.action)
		}
	}
	return nil
}

// Build returns the rebuilt Stabchain.
func (b *BaseChangeBuilder) Build() *Stabchain {
	return &Stabchain{Records: b.chain, Action: b.action}
}

func (b *BaseChangeBuilder) currentOrder() *big.Int {
	order := big.NewInt(1)
	for _, r := range b.chain {
		order.Mul(order, big.NewInt(int64(r.OrbitSize())))
	}
	return order
}

// residueWithDropout sifts p through the chain being built, returning
// the residue and the level sifting stopped at.
func (b *BaseChangeBuilder) residueWithDropout(p perm.Permutation) (perm.Permutation, int) {
	if p.IsID() {
		return p, len(b.chain)
	}
	g := p
	i := 0
	for _, r := range b.chain {
		image := b.action.Apply(g, r.Base)
		if !r.Transversal.Contains(image) {
			break
		}
		repr, _ := Representative(r.Transversal, r.Base, image, b.action)
		g = g.Divide(repr)
		i++
	}
	return g, i
}
