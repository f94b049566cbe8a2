package stabchain

import (
	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/perm"
)

// IFTBuilder is the Incremental Fast Transversal builder: generators
// are absorbed one at a time, each either discarded (if it already
// sifts to the identity through the sub-chain at the current level),
// used to seed a brand-new bottom level, or folded into the existing
// level's transversal — any Schreier generator produced along the way
// is recursively absorbed one level deeper. Transcribed from
// original_source's ift.rs. The level being extended is held in the
// currentPos field; descending to the next level is a recursive call
// (extendLowerLevel -> extendInner), so Go call-stack depth grows with
// the chain's length.
type IFTBuilder struct {
	currentPos int
	chain      []StabchainRecord
	selector   BaseSelector
	action     action.Action
}

// NewIFTBuilder returns an IFTBuilder using selector to pick each new
// level's base point and act as the group action.
func NewIFTBuilder(selector BaseSelector, act action.Action) *IFTBuilder {
	return &IFTBuilder{selector: selector, action: act}
}

// SetGenerators implements Builder: absorbs every generator of g in
// turn, each starting from level 0.
func (b *IFTBuilder) SetGenerators(g group.Group) {
	for _, gen := range g.Generators() {
		b.currentPos = 0
		b.extendInner(gen)
	}
}

// Build implements Builder.
func (b *IFTBuilder) Build() *Stabchain {
	return &Stabchain{Records: b.chain, Action: b.action}
}

func (b *IFTBuilder) bottomOfChain() bool {
	return b.currentPos == len(b.chain)
}

func (b *IFTBuilder) baseSoFar() []perm.Point {
	base := make([]perm.Point, 0, b.currentPos)
	for i := 0; i < b.currentPos && i < len(b.chain); i++ {
		base = append(base, b.chain[i].Base)
	}
	return base
}

func (b *IFTBuilder) isInGroupFromCurrent(p perm.Permutation) bool {
	if p.IsID() {
		return true
	}
	g := p
	for _, r := range b.chain[b.currentPos:] {
		image := b.action.Apply(g, r.Base)
		if !r.Transversal.Contains(image) {
			return false
		}
		repr, _ := Representative(r.Transversal, r.Base, image, b.action)
		g = g.Divide(repr)
	}
	return g.IsID()
}

func (b *IFTBuilder) extendLowerLevel(p perm.Permutation) {
	b.currentPos++
	b.extendInner(p)
	b.currentPos--
}

func (b *IFTBuilder) extendInner(p perm.Permutation) {
	if b.isInGroupFromCurrent(p) {
		return
	}

	if b.bottomOfChain() {
		movedPoint := b.selector.MovedPoint(p, b.currentPos, b.baseSoFar())
		transversal := FactoredTransversal{movedPoint: perm.ID()}
		nextOrbitPoint := b.action.Apply(p, movedPoint)
		representative := p
		for nextOrbitPoint != movedPoint {
			transversal[nextOrbitPoint] = p.Inv()
			nextOrbitPoint = b.action.Apply(p, nextOrbitPoint)
			representative = representative.Multiply(p)
		}
		record := NewStabchainRecord(movedPoint, group.New([]perm.Permutation{p}), transversal)
		b.chain = append(b.chain, record)
		b.extendLowerLevel(representative)
		return
	}

	record := b.chain[b.currentPos]
	newTransversal := make(FactoredTransversal)

	toCheck := record.Transversal.Points()
	for len(toCheck) > 0 {
		orbitElement := toCheck[len(toCheck)-1]
		toCheck = toCheck[:len(toCheck)-1]

		orbitRepr, _ := Representative(record.Transversal, record.Base, orbitElement, b.action)
		newImage := b.action.Apply(p, orbitElement)

		if record.Transversal.Contains(newImage) || newTransversal.Contains(newImage) {
			imageRepr, ok := Representative(record.Transversal, record.Base, newImage, b.action)
			if !ok {
				imageRepr, _ = Representative(newTransversal, record.Base, newImage, b.action)
			}
			newPerm := orbitRepr.Multiply(p).Multiply(imageRepr.Inv())
			b.extendLowerLevel(newPerm)
		} else {
			newTransversal[newImage] = p.Inv()
		}
	}

	toCheck = newTransversal.Points()
	for k, v := range newTransversal {
		record.Transversal[k] = v
	}

	for len(toCheck) > 0 {
		orbitElement := toCheck[len(toCheck)-1]
		toCheck = toCheck[:len(toCheck)-1]

		orbitRepr, _ := Representative(record.Transversal, record.Base, orbitElement, b.action)

		candidates := make([]perm.Permutation, 0, 1+len(record.Gens.Generators()))
		candidates = append(candidates, p)
		candidates = append(candidates, record.Gens.Generators()...)

		for _, generator := range candidates {
			newImage := b.action.Apply(generator, orbitElement)
			if record.Transversal.Contains(newImage) {
				imageRepr, _ := Representative(record.Transversal, record.Base, newImage, b.action)
				newPerm := orbitRepr.Multiply(generator).Multiply(imageRepr.Inv())
				b.extendLowerLevel(newPerm)
			} else {
				record.Transversal[newImage] = generator.Inv()
				toCheck = append(toCheck, newImage)
			}
		}
	}

	gens := make([]perm.Permutation, 0, 1+len(record.Gens.Generators()))
	gens = append(gens, p)
	gens = append(gens, record.Gens.Generators()...)
	record.Gens = group.New(gens)

	b.chain[b.currentPos] = record
}
