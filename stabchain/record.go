package stabchain

import (
	"github.com/katalvlaran/stabchain/group"
	"github.com/katalvlaran/stabchain/perm"
)

// StabchainRecord is one level of a stabilizer chain: a base point, the
// generators that stabilize every shallower base point (closing this
// level's orbit), and the transversal (coset representatives) for that
// orbit.
type StabchainRecord struct {
	Base        perm.Point
	Gens        group.Group
	Transversal FactoredTransversal
}

// NewStabchainRecord builds a record from an explicit base, generator
// set, and transversal.
func NewStabchainRecord(base perm.Point, gens group.Group, t FactoredTransversal) StabchainRecord {
	return StabchainRecord{Base: base, Gens: gens, Transversal: t}
}

// TrivialRecord returns a record with no generators and a
// single-point transversal — the starting point for a base-change
// rebuild (original_source's StabchainRecord::trivial_record).
func TrivialRecord(base perm.Point) StabchainRecord {
	return StabchainRecord{
		Base:        base,
		Gens:        group.Trivial(),
		Transversal: NewFactoredTransversal(base),
	}
}

// OrbitSize returns the size of this level's orbit, i.e. the index of
// the next stabilizer in this subgroup.
func (r StabchainRecord) OrbitSize() int {
	return r.Transversal.Len()
}
