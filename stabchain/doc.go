// Package stabchain builds and queries stabilizer chains (base and
// strong generating sets, "BSGS") for finite permutation groups.
//
// A StabchainRecord pairs a base point with a transversal (a coset
// representative for each point in the orbit of that base point under
// the record's own generating set) and the generators used to reach
// the next, deeper record. A Stabchain is the ordered chain of such
// records from the top group down to the trivial subgroup.
//
// Three independent strategies build a chain from a Group: naive
// Schreier-Sims (NaiveBuilder), the incremental fast-transversal
// algorithm (IFTBuilder), and a randomized Monte-Carlo builder
// (RandomBuilder) that trades a controllable failure probability for
// much lower cost on large groups. A fourth component, the base-change
// builder, rebuilds a chain for a different base ordering without
// starting from the original group's generators.
package stabchain
