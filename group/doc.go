// Package group provides the Group type (an ordered, immutable
// generating set over a shared Permutation type), its standard
// constructors, and two families of random-element generation used by
// the randomized stabilizer-chain strategy and its base-change builder:
//
//   - RandPerm, a product-replacement random walk (spec.md §4.4): a
//     slate of permutations is repeatedly combined pairwise, and an
//     accumulator tracks a running product that is, after enough steps,
//     close to uniformly distributed over the generated subgroup.
//   - CayleyWalk / LazyCayleyWalk, simple random walks over the Cayley
//     graph of the generators, used by strategies that want a cheaper
//     (if less uniform) random group element.
//
// Groups and Permutations are immutable once constructed; RandPerm is
// the one type in this package with mutable internal state (its slate
// and accumulator), matching spec.md §3's lifecycle rules.
package group
