package stabchain

import "github.com/katalvlaran/stabchain/group"

// Builder is the shared contract every stabilizer-chain construction
// strategy implements: hand it a group's generators with SetGenerators
// (or via BuildChain), then Build the finished Stabchain.
// Mirrors the teacher's one-constructor-per-impl_*.go idiom: NaiveBuilder,
// IFTBuilder, and RandomBuilder each satisfy this interface with their
// own internal state and complexity tradeoffs.
type Builder interface {
	// SetGenerators absorbs every generator of g into the chain under
	// construction, extending or rebuilding levels as needed.
	SetGenerators(g group.Group)
	// Build finalizes and returns the constructed Stabchain.
	Build() *Stabchain
}

// BuildChain is a convenience wrapper: construct a Stabchain for g
// using b, a Builder that has not yet had SetGenerators called.
func BuildChain(b Builder, g group.Group) *Stabchain {
	b.SetGenerators(g)
	return b.Build()
}
