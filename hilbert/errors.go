// Package hilbert: sentinel error set.

package hilbert

import "errors"

var (
	// ErrBadItemCount is returned by New when n is not positive.
	ErrBadItemCount = errors.New("hilbert: item count must be positive")

	// ErrTooManyItems is returned by Add once the tree already holds the
	// n items declared to New.
	ErrTooManyItems = errors.New("hilbert: add called more than the declared item count")

	// ErrNotFinished is returned by Search/Neighbors if called before Finish.
	ErrNotFinished = errors.New("hilbert: tree not finished")

	// ErrIncompleteInsert is returned by Finish if fewer than n items
	// were added.
	ErrIncompleteInsert = errors.New("hilbert: finish called before all declared items were added")
)
