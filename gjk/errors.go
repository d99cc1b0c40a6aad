// Package gjk: sentinel error set.

package gjk

import "errors"

var (
	// ErrTooFewPoints is returned by MakePolygon/MakePolygonFromHull when
	// the hull has fewer than 3 points.
	ErrTooFewPoints = errors.New("gjk: hull needs at least 3 points")

	// ErrTooManyPoints is returned by MakeProxy when the vertex count
	// exceeds MaxPolyVerts.
	ErrTooManyPoints = errors.New("gjk: count exceeds MaxPolyVerts")
)
