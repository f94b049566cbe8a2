// Package grouplib loads decorated group libraries: JSON files
// describing a list of permutation groups, each with a generating set
// in cycle notation, a declared order, and optional metadata (spec.md
// §6). It is the only package in this module that touches a filesystem
// or archive format — the stabilizer-chain core never imports it.
//
// A decorated group library backs the integration test suite (a small
// embedded fixture, loaded via Load) and the cmd/stabbench benchmark
// driver (its two hard-coded testdata files, loaded via LoadFile). Both
// load paths go through DecoratedGroup and Load; LoadZip reads the same
// format from a zip archive.
package grouplib
