package stabchain

import (
	"errors"
	"strconv"
)

// ErrEmptyBase is returned when a Stabchain or base-change operation is
// given a base with no points.
var ErrEmptyBase = errors.New("stabchain: empty base")

// ErrDuplicateBasePoint is returned when a proposed base repeats a point.
var ErrDuplicateBasePoint = errors.New("stabchain: duplicate base point")

// ErrBaseMissingOldPoints is returned by a base-change when the new
// base doesn't retain every point of the chain being rebased.
var ErrBaseMissingOldPoints = errors.New("stabchain: new base drops an old base point")

// ErrNotInGroup is returned when a sift fails to reduce a permutation
// to the identity, i.e. the permutation is not a member of the chain's group.
var ErrNotInGroup = errors.New("stabchain: permutation not in group")

// ErrBaseNotFixed is a validation error: a level's generators move a
// strictly shallower base point, violating the stabilizer-chain invariant.
var ErrBaseNotFixed = errors.New("stabchain: generator does not fix a shallower base point")

// ErrTransversalGap is a validation error: some orbit point has no
// transversal entry.
var ErrTransversalGap = errors.New("stabchain: transversal has a gap")

// ErrTransversalRootMismatch is a validation error: the transversal's
// entry at the base point isn't the identity.
var ErrTransversalRootMismatch = errors.New("stabchain: transversal base entry is not identity")

// ErrOrderMismatch is a validation error: the chain's computed order
// doesn't match an expected order.
var ErrOrderMismatch = errors.New("stabchain: chain order mismatch")

// ValidationError describes a single structural defect found by
// ValidTransversal, ValidStabchain, or CorrectStabchainOrder. It wraps
// a sentinel error with the chain level and point (if any) at fault.
type ValidationError struct {
	Err   error
	Level int
	Point int
	HasPt bool
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.HasPt {
		return e.Err.Error() + ": level " + strconv.Itoa(e.Level) + ", point " + strconv.Itoa(e.Point)
	}
	return e.Err.Error() + ": level " + strconv.Itoa(e.Level)
}

// Unwrap exposes the wrapped sentinel for errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
