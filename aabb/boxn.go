package aabb

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// BoxN is an incidental N-dimensional generalization of Box, kept for
// callers that index higher-dimensional data; the 2D spatial trees in
// this module use Box exclusively. Dimension is the slice length of
// Lower/Upper rather than a compile-time parameter, since Go generics
// cannot carry an array length as a type parameter.
type BoxN[T constraints.Float] struct {
	Lower, Upper []T
}

// NewN builds a BoxN from explicit per-axis bounds, which must be the
// same length.
func NewN[T constraints.Float](lower, upper []T) (BoxN[T], error) {
	if len(lower) != len(upper) {
		return BoxN[T]{}, fmt.Errorf("aabb: %w: lower has %d axes, upper has %d", ErrDimensionMismatch, len(lower), len(upper))
	}
	l := append([]T(nil), lower...)
	u := append([]T(nil), upper...)
	return BoxN[T]{Lower: l, Upper: u}, nil
}

// EmptyN returns the D-dimensional identity element for UnionN.
func EmptyN[T constraints.Float](dim int) BoxN[T] {
	var inf T = T(math.Inf(1))
	l := make([]T, dim)
	u := make([]T, dim)
	for i := 0; i < dim; i++ {
		l[i] = inf
		u[i] = -inf
	}
	return BoxN[T]{Lower: l, Upper: u}
}

// Dim returns the box's dimensionality.
func (b BoxN[T]) Dim() int { return len(b.Lower) }

// UnionN returns the smallest box containing both a and b. a and b must
// share a dimension.
func UnionN[T constraints.Float](a, b BoxN[T]) (BoxN[T], error) {
	if a.Dim() != b.Dim() {
		return BoxN[T]{}, fmt.Errorf("aabb: %w: %d vs %d", ErrDimensionMismatch, a.Dim(), b.Dim())
	}
	out := BoxN[T]{Lower: make([]T, a.Dim()), Upper: make([]T, a.Dim())}
	for i := range a.Lower {
		out.Lower[i] = minT(a.Lower[i], b.Lower[i])
		out.Upper[i] = maxT(a.Upper[i], b.Upper[i])
	}
	return out, nil
}

// Contains reports whether b fully contains other, assuming equal dim.
func (b BoxN[T]) Contains(other BoxN[T]) bool {
	for i := range b.Lower {
		if b.Lower[i] > other.Lower[i] || b.Upper[i] < other.Upper[i] {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies within b on every axis.
func (b BoxN[T]) ContainsPoint(p []T) bool {
	for i := range b.Lower {
		if p[i] < b.Lower[i] || p[i] > b.Upper[i] {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and other share any point, assuming equal dim.
func (b BoxN[T]) Overlaps(other BoxN[T]) bool {
	for i := range b.Lower {
		if b.Lower[i] > other.Upper[i] || other.Lower[i] > b.Upper[i] {
			return false
		}
	}
	return true
}

// Perimeter returns 2*sum(upper[i]-lower[i]) across every axis.
func (b BoxN[T]) Perimeter() T {
	var sum T
	for i := range b.Lower {
		sum += b.Upper[i] - b.Lower[i]
	}
	return 2 * sum
}

// NormalVolume returns the product of side lengths across every axis.
func (b BoxN[T]) NormalVolume() T {
	vol := T(1)
	for i := range b.Lower {
		vol *= b.Upper[i] - b.Lower[i]
	}
	return vol
}

// SphericalVolume returns the volume of b's bounding hypersphere, using
// the precomputed unit-ball volume table for dimensions 0..20.
func (b BoxN[T]) SphericalVolume() T {
	var sumSq T
	for i := range b.Lower {
		half := (b.Upper[i] - b.Lower[i]) * T(0.5)
		sumSq += half * half
	}
	radius := T(math.Sqrt(float64(sumSq)))
	d := b.Dim()

	switch d {
	case 2:
		return radius * radius * unitBallVolume[T](2)
	case 3:
		return radius * radius * radius * unitBallVolume[T](3)
	default:
		return T(math.Pow(float64(radius), float64(d))) * unitBallVolume[T](d)
	}
}

func minT[T constraints.Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}
