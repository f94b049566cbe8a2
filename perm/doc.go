// Package perm defines the Permutation capability shared by every
// stabilizer-chain construction strategy, plus a handful of concrete
// representations of it.
//
// A Permutation is an opaque bijection on the nonnegative integers with
// finite support: only finitely many points are moved, and the largest
// moved point (LMP) determines the smallest symmetric group the
// permutation lives in. Strategies in the stabchain package are
// polymorphic over this interface — swapping DensePermutation for
// MapPermutation or SyncPermutation changes performance characteristics
// only, never observable results.
//
// Representations:
//
//   - DensePermutation — []Point image vector, the default. Fast Apply,
//     O(n) memory regardless of how many points actually move.
//   - BasedPermutation — a dense image vector shifted by an offset, for
//     permutations whose support lies in [k, k+n) rather than [0, n).
//   - MapPermutation — map[Point]Point, sparse. Good when the domain is
//     large but few points move.
//   - SyncPermutation — a copy-on-read wrapper around DensePermutation,
//     safe to share across goroutines (used by the parallel benchmark
//     harness in cmd/stabbench).
//   - WordPermutation — a lazy, unevaluated product of other
//     Permutations. Multiply appends to the word instead of computing;
//     Apply folds over the factors one at a time, while Order/Equal/Lmp
//     collapse the word on every call (the result is not cached). The
//     randomized stabilizer-chain strategy relies on this to
//     avoid collapsing candidate Schreier generators until it knows it
//     needs to.
//
// Cycle notation (1-indexed disjoint cycles, e.g. "(1 2 3)(4 5)") and the
// classical 1-indexed image-vector form are both supported for
// import/export; see cycles.go.
package perm
