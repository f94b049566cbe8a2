package perm

import "errors"

// Sentinel errors for permutation construction and import. Callers must
// use errors.Is(err, ErrX) to branch on semantics; these are never
// wrapped with formatted strings at the definition site.
var (
	// ErrMalformedCycle indicates a cycle contained a non-positive integer.
	ErrMalformedCycle = errors.New("perm: cycle entries must be positive")

	// ErrDuplicatePoint indicates a point appeared in more than one cycle.
	ErrDuplicatePoint = errors.New("perm: point appears in more than one cycle")

	// ErrBadImageVector indicates an image vector was not a bijection on
	// its own index range.
	ErrBadImageVector = errors.New("perm: image vector is not a permutation")

	// ErrEmptyLine indicates a permutation converter input line had no tokens.
	ErrEmptyLine = errors.New("perm: empty input line")
)
