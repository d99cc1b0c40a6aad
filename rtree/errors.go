// Package rtree: sentinel error set.

package rtree

import "errors"

var (
	// ErrBadFanout is returned by New when maxChildren < 2.
	ErrBadFanout = errors.New("rtree: max children must be at least 2")

	// ErrValueNotFound is returned by Remove when no branch matches the
	// given box and value.
	ErrValueNotFound = errors.New("rtree: value not found")

	// ErrRejectedByPredicate is returned by InsertIf when the insert
	// predicate rejects the target leaf.
	ErrRejectedByPredicate = errors.New("rtree: insert rejected by predicate")
)
