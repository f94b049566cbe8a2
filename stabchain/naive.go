package stabchain

import (
	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/perm"
)

// NaiveBuilder is the textbook Schreier-Sims construction: at each
// level, build the orbit of a chosen base point by BFS, then compute
// every Schreier generator u_α·s·u_{s(α)}⁻¹ for each orbit point α and
// each generator s, and recurse into the next level with whichever
// Schreier generators aren't already the identity. Used as the
// correctness reference for the faster IFT and randomized builders
// (spec.md §4.7).
type NaiveBuilder struct {
	selector BaseSelector
	action   action.Action
	chain    []StabchainRecord
}

// NewNaiveBuilder returns a NaiveBuilder using selector to choose each
// level's base point and act as the group action.
func NewNaiveBuilder(selector BaseSelector, act action.Action) *NaiveBuilder {
	return &NaiveBuilder{selector: selector, action: act}
}

// SetGenerators implements Builder. The naive strategy ignores
// incremental absorption: it (re)builds the whole chain from g's
// generators in one recursive pass.
func (b *NaiveBuilder) SetGenerators(g group.Group) {
	b.chain = nil
	b.buildLevel(g.Generators())
}

// Build implements Builder.
func (b *NaiveBuilder) Build() *Stabchain {
	return &Stabchain{Records: b.chain, Action: b.action}
}

func (b *NaiveBuilder) baseSoFar() []perm.Point {
	base := make([]perm.Point, len(b.chain))
	for i, r := range b.chain {
		base[i] = r.Base
	}
	return base
}

func (b *NaiveBuilder) buildLevel(gens []perm.Permutation) {
	nonID := nonIdentity(gens)
	if len(nonID) == 0 {
		return
	}
	level := len(b.chain)
	base := b.baseSoFar()

	basePt := b.selector.MovedPoint(nonID[0], level, base)
	for _, g := range nonID[1:] {
		if candidate := b.selector.MovedPoint(g, level, base); candidate < basePt {
			basePt = candidate
		}
	}

	transversal := BuildFactoredTransversal(nonID, basePt, b.action)
	record := NewStabchainRecord(basePt, group.New(nonID), transversal)
	b.chain = append(b.chain, record)

	var nextGens []perm.Permutation
	for _, alpha := range transversal.Points() {
		uAlpha, ok := Representative(transversal, basePt, alpha, b.action)
		if !ok {
			continue
		}
		for _, s := range nonID {
			sAlpha := b.action.Apply(s, alpha)
			uSAlpha, ok := Representative(transversal, basePt, sAlpha, b.action)
			if !ok {
				continue
			}
			schreierGen := uAlpha.Multiply(s).Multiply(uSAlpha.Inv())
			if !schreierGen.IsID() {
				nextGens = append(nextGens, schreierGen)
			}
		}
	}
	if len(nextGens) > 0 {
		b.buildLevel(nextGens)
	}
}

func nonIdentity(gens []perm.Permutation) []perm.Permutation {
	out := make([]perm.Permutation, 0, len(gens))
	for _, g := range gens {
		if !g.IsID() {
			out = append(out, g)
		}
	}
	return out
}
