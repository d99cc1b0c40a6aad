// Package aabb: sentinel error set.
//
// All errors are prefixed "aabb: ..." for easy grepping and are meant to
// be checked via errors.Is, not string comparison.

package aabb

import "errors"

var (
	// ErrDimensionMismatch is returned by NewN and UnionN when their
	// per-axis bounds disagree on dimensionality.
	ErrDimensionMismatch = errors.New("aabb: dimension mismatch")
)
