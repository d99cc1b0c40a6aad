package gjk

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/vecmath"
)

// MaxPolyVerts bounds a DistanceProxy's vertex count, matching the
// original's fixed-size vertex arrays.
const MaxPolyVerts = 8

// LinearSlop is a small distance, chosen to be numerically significant
// but visually insignificant, used throughout as a collision tolerance.
const LinearSlop = 0.005

// DistanceProxy encapsulates any convex shape as a small vertex set plus
// a rounding radius, the common input to every GJK query.
type DistanceProxy[T constraints.Float] struct {
	Vertices [MaxPolyVerts]vecmath.Vec2[T]
	Count    int
	Radius   T
}

// MakeProxy builds a DistanceProxy from up to MaxPolyVerts vertices.
func MakeProxy[T constraints.Float](vertices []vecmath.Vec2[T], radius T) (DistanceProxy[T], error) {
	if len(vertices) > MaxPolyVerts {
		return DistanceProxy[T]{}, fmt.Errorf("gjk: MakeProxy: %w", ErrTooManyPoints)
	}
	var proxy DistanceProxy[T]
	for i, v := range vertices {
		proxy.Vertices[i] = v
	}
	proxy.Count = len(vertices)
	proxy.Radius = radius
	return proxy, nil
}

// findSupport returns the index of the vertex farthest along direction.
func findSupport[T constraints.Float](proxy *DistanceProxy[T], direction vecmath.Vec2[T]) int {
	bestIndex := 0
	bestValue := vecmath.Dot(proxy.Vertices[0], direction)
	for i := 1; i < proxy.Count; i++ {
		value := vecmath.Dot(proxy.Vertices[i], direction)
		if value > bestValue {
			bestIndex = i
			bestValue = value
		}
	}
	return bestIndex
}
