package stabchain

import (
	"math/big"
	"math/rand"

	"github.com/katalvlaran/stabchain/action"
	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/perm"
)

// RandomParams tunes the randomized Schreier-Sims construction
// (spec.md §4.9): subproduct/coset-representative sample sizes, the
// thresholds at which the probabilistic trivial-residue test samples
// the whole orbit/base instead of a fixed number of points, an
// optional known target order (enabling deterministic termination),
// and whether to trust the cheaper "fixes the sample" test without
// ever falling back to exhaustive verification.
type RandomParams struct {
	C1, C2, C3, C4        int
	OrbitBound, BaseBound int
	Order                 *big.Int
	QuickTest             bool
}

// RandomParamOption configures a RandomParams, in the teacher's
// BuilderOption idiom (builder/options.go).
type RandomParamOption func(*RandomParams)

// WithC1 sets the full/short subproduct pool size factor (spec.md
// §4.9 step 2: a pool of ~2·C1 subproducts is built).
func WithC1(c1 int) RandomParamOption { return func(p *RandomParams) { p.C1 = c1 } }

// WithC2 sets the coset-representative sample factor (step 3: C2·t representatives).
func WithC2(c2 int) RandomParamOption { return func(p *RandomParams) { p.C2 = c2 } }

// WithC3 sets the SGT-phase subproduct factor.
func WithC3(c3 int) RandomParamOption { return func(p *RandomParams) { p.C3 = c3 } }

// WithC4 sets the SGT-phase coset-representative factor.
func WithC4(c4 int) RandomParamOption { return func(p *RandomParams) { p.C4 = c4 } }

// WithOrbitBound sets the orbit-size threshold below which the
// trivial-residue test samples every orbit point instead of a random subset.
func WithOrbitBound(n int) RandomParamOption { return func(p *RandomParams) { p.OrbitBound = n } }

// WithBaseBound sets the base-length threshold up to which the
// trivial-residue test samples BaseBound random orbit points instead of
// b* random ones.
func WithBaseBound(n int) RandomParamOption { return func(p *RandomParams) { p.BaseBound = n } }

// WithOrder supplies a known target group order, enabling deterministic
// (loop-until-order-matches) termination instead of purely probabilistic.
func WithOrder(order *big.Int) RandomParamOption {
	return func(p *RandomParams) { p.Order = order }
}

// WithQuickTest enables the cheaper sample-only trivial-residue test,
// trading a bounded false-positive rate for speed.
func WithQuickTest(quick bool) RandomParamOption {
	return func(p *RandomParams) { p.QuickTest = quick }
}

// NewRandomParams builds a RandomParams from defaults (C1=10, C2=8,
// C3=6, C4=4, OrbitBound=20, BaseBound=10, no known order, QuickTest
// off) overridden by opts, in application order.
func NewRandomParams(opts ...RandomParamOption) RandomParams {
	p := RandomParams{C1: 10, C2: 8, C3: 6, C4: 4, OrbitBound: 20, BaseBound: 10}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// RandomBuilder is the randomized Schreier-Sims builder with shallow
// transversals (spec.md §4.9). Each absorbed generator seeds or
// augments the chain; chain correctness is verified (or, with a known
// target order, driven) by repeatedly drawing random subproducts of
// the current strong generating set and sifting them, adjoining any
// that reveal a gap. Unlike NaiveBuilder/IFTBuilder, this strategy's
// output is only probably correct without a known order.
type RandomBuilder struct {
	selector   BaseSelector
	action     action.Action
	params     RandomParams
	rng        *rand.Rand
	chain      []StabchainRecord
	domainSize int
}

// NewRandomBuilder returns a RandomBuilder. rng is owned by the
// caller and never replaced internally, matching the teacher's
// explicit-seed discipline (spec.md §5: no package-global rand.Rand).
func NewRandomBuilder(selector BaseSelector, act action.Action, params RandomParams, rng *rand.Rand) *RandomBuilder {
	return &RandomBuilder{selector: selector, action: act, params: params, rng: rng}
}

// SetGenerators implements Builder.
func (b *RandomBuilder) SetGenerators(g group.Group) {
	gens := nonIdentity(g.Generators())
	if len(gens) == 0 {
		return
	}
	b.domainSize = g.SymmetricSuperOrder()
	base := make([]perm.Point, 0, 1)
	basePt := b.selector.MovedPoint(gens[0], 0, base)
	for _, gen := range gens[1:] {
		if candidate := b.selector.MovedPoint(gen, 0, base); candidate < basePt {
			basePt = candidate
		}
	}
	transversal := BuildFactoredTransversal(gens, basePt, b.action)
	b.chain = []StabchainRecord{NewStabchainRecord(basePt, group.New(gens), transversal)}
	b.sgc(0)
}

// Build implements Builder.
func (b *RandomBuilder) Build() *Stabchain {
	return b.currentChain()
}

// currentChain wraps the builder's current chain slice in a fresh
// *Stabchain. It must be re-derived after every mutation of b.chain —
// appendBottomRecord can reallocate the slice and augmentLevel rewrites
// an element in place, so a *Stabchain captured before either call
// would go on sifting against a stale backing array.
func (b *RandomBuilder) currentChain() *Stabchain {
	return &Stabchain{Records: b.chain, Action: b.action}
}

// orderMatches reports whether a known target order was supplied and
// the current chain's order already equals it.
func (b *RandomBuilder) orderMatches() bool {
	return b.params.Order != nil && b.currentChain().Order().Cmp(b.params.Order) == 0
}

// sgc is the Strong-Generating Construction phase (spec.md §4.9): draw
// random candidate elements at level, sift each against the current
// chain, and either adjoin a gap it revealed or discard it as a
// probable trivial residue. Once a level adjoins nothing further (or
// the bottom of the chain is reached), control passes to sgt, which
// either confirms the chain is a genuine strong generating set or
// re-enters sgc at whatever level it finds lacking.
func (b *RandomBuilder) sgc(level int) {
	if b.orderMatches() {
		return
	}

	gens := b.levelGenerators(level)
	if len(gens) == 0 {
		b.sgt()
		return
	}

	candidates := b.randomCandidates(level, gens)
	anyAdjoined := false
	for _, w := range candidates {
		p := w.Collapse()
		residue, dropLevel := b.currentChain().Sift(p)
		if dropLevel == len(b.chain) {
			if b.residueIsProbablyTrivial(residue, level) {
				continue
			}
			b.appendBottomRecord(residue)
			anyAdjoined = true
			continue
		}
		b.augmentLevel(dropLevel, residue)
		anyAdjoined = true
	}

	if anyAdjoined && level+1 < len(b.chain) {
		b.sgc(level + 1)
		return
	}

	b.sgt()
}

// sgt is the Strong-Generating Test phase (spec.md §4.9): verify the
// chain sgc produced is actually a strong generating set by sifting
// the top-level generators plus a batch of random Schreier-generator
// candidates (the same pool construction as sgc, but with c3/c4 in
// place of c1/c2) through the *whole* chain, checking each residue
// against every point of the domain rather than just a level's orbit.
// The first residue that fails the all-points test means sgc missed
// something: if it sifted to the bottom, a new base point is pushed
// and sgc re-enters there; otherwise sgc re-enters at the drop-out
// level. If every candidate passes but a known target order still
// doesn't match, sgc restarts from the top.
func (b *RandomBuilder) sgt() {
	if len(b.chain) == 0 {
		return
	}
	if b.orderMatches() {
		return
	}

	gens := b.levelGenerators(0)
	candidates := make([]perm.WordPermutation, 0, len(b.chain[0].Gens.Generators()))
	for _, g := range b.chain[0].Gens.Generators() {
		candidates = append(candidates, perm.NewWordPermutationFrom([]perm.Permutation{g}))
	}
	candidates = append(candidates, b.randomSchreierCandidates(0, b.params.C3, b.params.C4, gens)...)

	for _, w := range candidates {
		p := w.Collapse()
		residue, dropLevel := b.currentChain().Sift(p)
		if b.residueFixesAllPoints(residue) {
			continue
		}
		if dropLevel == len(b.chain) {
			level := len(b.chain)
			b.appendBottomRecord(residue)
			b.sgc(level)
		} else {
			b.augmentLevel(dropLevel, residue)
			b.sgc(dropLevel)
		}
		return
	}

	if b.params.Order != nil && !b.orderMatches() {
		b.sgc(0)
	}
}

// residueFixesAllPoints reports whether p fixes every point of the
// domain 0..domainSize-1 — the SGT all-points test (spec.md §4.9
// "If the residue fixes every point of Ω"), stricter than
// residueIsProbablyTrivial's per-level orbit sampling.
func (b *RandomBuilder) residueFixesAllPoints(p perm.Permutation) bool {
	if p.IsID() {
		return true
	}
	for pt := perm.Point(0); pt < perm.Point(b.domainSize); pt++ {
		if b.action.Apply(p, pt) != pt {
			return false
		}
	}
	return true
}

func (b *RandomBuilder) levelGenerators(level int) []perm.Permutation {
	if level >= len(b.chain) {
		return nil
	}
	var gens []perm.Permutation
	for _, r := range b.chain[level:] {
		gens = append(gens, r.Gens.Generators()...)
	}
	return gens
}

// randomCandidates builds the SGC candidate pool with the builder's
// configured C1/C2 (spec.md §4.9 steps 2-3).
func (b *RandomBuilder) randomCandidates(level int, gens []perm.Permutation) []perm.WordPermutation {
	return b.randomSchreierCandidates(level, b.params.C1, b.params.C2, gens)
}

// randomSchreierCandidates builds ~2·c1 random subproducts of gens,
// each multiplied by c2·t random coset representatives of level's
// transversal (spec.md §4.9 steps 2-3), kept as words to defer
// collapse. Shared by sgc (c1, c2) and sgt (c3, c4 — spec.md §4.9
// "c3·c4·t random gw-candidates as in SGC").
func (b *RandomBuilder) randomSchreierCandidates(level, c1, c2 int, gens []perm.Permutation) []perm.WordPermutation {
	if level >= len(b.chain) {
		return nil
	}
	record := b.chain[level]
	t := 0
	for _, r := range b.chain[level:] {
		t += r.Transversal.Len() + len(r.Gens.Generators())
	}
	if t == 0 {
		t = 1
	}

	var subproducts []perm.WordPermutation
	for i := 0; i < c1; i++ {
		subproducts = append(subproducts, b.randomSubproduct(gens, len(gens)))
		k := 1 + b.rng.Intn(1+len(gens)/2)
		subproducts = append(subproducts, b.randomSubset(gens, k))
	}

	points := record.Transversal.Points()
	var out []perm.WordPermutation
	for _, sub := range subproducts {
		for j := 0; j < c2*t; j++ {
			pt := points[b.rng.Intn(len(points))]
			repWord, _ := RepresentativeWord(record.Transversal, record.Base, pt, b.action)
			out = append(out, repWord.Extend(sub.Factors()...))
		}
	}
	return out
}

func (b *RandomBuilder) randomSubproduct(gens []perm.Permutation, limit int) perm.WordPermutation {
	w := perm.NewWordPermutation()
	for i := 0; i < limit && i < len(gens); i++ {
		if b.rng.Intn(2) == 0 {
			w = w.Extend(gens[i])
		}
	}
	return w
}

func (b *RandomBuilder) randomSubset(gens []perm.Permutation, k int) perm.WordPermutation {
	w := perm.NewWordPermutation()
	if len(gens) == 0 {
		return w
	}
	for i := 0; i < k; i++ {
		if b.rng.Intn(2) == 0 {
			w = w.Extend(gens[b.rng.Intn(len(gens))])
		}
	}
	return w
}

// residueIsProbablyTrivial implements the three-tier probabilistic
// trivial-residue test from spec.md §4.9 step 4: sample every orbit
// point if the orbit is no larger than OrbitBound (exhaustive for this
// level, so the result is conclusive); otherwise BaseBound random
// points if the base built so far is no longer than BaseBound; else
// b* random points, where b* is the number of existing base points
// that already lie in this record's orbit. If the residue fixes every
// sampled point and the sample was exhaustive, it's genuinely trivial.
// If the sample was only partial, QuickTest decides whether to trust
// it outright or fall back to an exhaustive check of the whole orbit
// before accepting (spec.md §4.9 "quick_test": without it, the cheap
// sample only ever short-circuits a definite rejection, never a cheap
// acceptance).
func (b *RandomBuilder) residueIsProbablyTrivial(residue perm.Permutation, level int) bool {
	if residue.IsID() {
		return true
	}
	if level >= len(b.chain) {
		return false
	}
	points := b.chain[level].Transversal.Points()

	exhaustive := len(points) <= b.params.OrbitBound
	sample := points
	if !exhaustive {
		n := b.params.BaseBound
		if len(b.chain) > b.params.BaseBound {
			n = b.bStar(level)
			if n == 0 {
				n = 1
			}
		}
		if n > len(points) {
			n = len(points)
		}
		sample = make([]perm.Point, n)
		for i := range sample {
			sample[i] = points[b.rng.Intn(len(points))]
		}
	}

	for _, pt := range sample {
		if b.action.Apply(residue, pt) != pt {
			return false
		}
	}
	if exhaustive || b.params.QuickTest {
		return true
	}
	for _, pt := range points {
		if b.action.Apply(residue, pt) != pt {
			return false
		}
	}
	return true
}

// bStar counts how many of the chain's existing base points already
// lie in level's orbit (spec.md §4.9 step 4's b*).
func (b *RandomBuilder) bStar(level int) int {
	record := b.chain[level]
	count := 0
	for _, r := range b.chain {
		if record.Transversal.Contains(r.Base) {
			count++
		}
	}
	return count
}

// appendBottomRecord pushes a new bottom-level record whose sole
// generator is p, choosing its base point via the selector.
func (b *RandomBuilder) appendBottomRecord(p perm.Permutation) {
	if p.IsID() {
		return
	}
	base := make([]perm.Point, len(b.chain))
	for i, r := range b.chain {
		base[i] = r.Base
	}
	basePt := b.selector.MovedPoint(p, len(b.chain), base)
	transversal := BuildFactoredTransversal([]perm.Permutation{p}, basePt, b.action)
	b.chain = append(b.chain, NewStabchainRecord(basePt, group.New([]perm.Permutation{p}), transversal))
}

// augmentLevel is the shared transversal-augmentation step (spec.md
// §4.9 "Transversal augmentation at a level", also used by the
// base-change builder via augmentTransversal): add p to level's
// generators and rebuild its shallow transversal via Cube over the
// augmented generator set.
func (b *RandomBuilder) augmentLevel(level int, p perm.Permutation) {
	if level >= len(b.chain) || p.IsID() {
		return
	}
	b.chain[level] = augmentTransversal(b.chain[level], p, b.action)
}

// augmentTransversal adds p to record's generators and rebuilds its
// transversal as a shallow (Cube-based) transversal over the augmented
// generator set, so depth stays bounded however many generators a
// level accumulates. Shared by RandomBuilder and the base-change
// builder (original_source's update_schrier_tree in random.rs).
func augmentTransversal(record StabchainRecord, p perm.Permutation, act action.Action) StabchainRecord {
	if p.IsID() {
		return record
	}
	gens := append([]perm.Permutation{p}, record.Gens.Generators()...)
	cube := NewCube(record.Base, gens, act, -1)
	transversal := make(FactoredTransversal, len(cube.Orbit))
	for pt, edge := range cube.Orbit {
		transversal[pt] = edge
	}
	record.Gens = group.New(gens)
	record.Transversal = transversal
	return record
}
