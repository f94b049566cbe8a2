// Package stabchain (module github.com/katalvlaran/stabchain) computes
// stabilizer chains — Base and Strong Generating Sets (BSGS) — for
// finite permutation groups presented by a small generating set.
//
// What is stabchain?
//
//	A small, dependency-light computational-group-theory library that
//	brings together:
//
//	  • A permutation capability (perm) with four concrete
//	    representations and cycle-notation import/export
//	  • A product-replacement random element generator and Cayley walks
//	    (group)
//	  • Three stabilizer-chain construction strategies — Naive
//	    Schreier-Sims, Incremental Fast Transversal, and Randomized
//	    Schreier-Sims with shallow transversals — plus a base-change
//	    builder (stabchain)
//	  • A decorated group-library JSON file format and CLI drivers
//	    (grouplib, cmd/stabbench, cmd/permconv)
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	perm/       — Permutation capability + representations + cycle notation
//	action/     — the Action capability (apply a permutation, pick a base point)
//	group/      — Group, RandPerm product replacement, Cayley walks
//	stabchain/  — orbit/transversal, the shallow-transversal cube, the
//	              three construction strategies, and the base-change builder
//	grouplib/   — decorated group-library JSON loading
//	cmd/        — stabbench (benchmark driver), permconv (cycle converter)
//
// A stabilizer chain answers membership testing, order computation,
// random element sampling, and (via the base-change builder) efficient
// rebasing — the classical toolkit built on top of a BSGS.
//
//	go get github.com/katalvlaran/stabchain
package stabchain
