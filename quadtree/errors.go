// Package quadtree: sentinel error set.

package quadtree

import "errors"

var (
	// ErrBadMaxChildItems is returned by New when maxChildItems < 1.
	ErrBadMaxChildItems = errors.New("quadtree: maxChildItems must be >= 1")

	// ErrOutOfBounds is returned by Insert when the object's box is not
	// fully contained by the tree's outer box.
	ErrOutOfBounds = errors.New("quadtree: box is outside the tree's outer bounds")
)
