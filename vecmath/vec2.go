package vecmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Vec2 is a 2D vector over any float type.
type Vec2[T constraints.Float] struct {
	X, Y T
}

// Add returns a+b.
func Add[T constraints.Float](a, b Vec2[T]) Vec2[T] { return Vec2[T]{a.X + b.X, a.Y + b.Y} }

// Sub returns a-b.
func Sub[T constraints.Float](a, b Vec2[T]) Vec2[T] { return Vec2[T]{a.X - b.X, a.Y - b.Y} }

// Neg returns -a.
func Neg[T constraints.Float](a Vec2[T]) Vec2[T] { return Vec2[T]{-a.X, -a.Y} }

// Scale returns a*s.
func Scale[T constraints.Float](a Vec2[T], s T) Vec2[T] { return Vec2[T]{a.X * s, a.Y * s} }

// MulAdd returns a + s*b.
func MulAdd[T constraints.Float](a Vec2[T], s T, b Vec2[T]) Vec2[T] {
	return Vec2[T]{a.X + s*b.X, a.Y + s*b.Y}
}

// Dot returns the scalar dot product a·b.
func Dot[T constraints.Float](a, b Vec2[T]) T { return a.X*b.X + a.Y*b.Y }

// Cross returns the 2D scalar cross product a×b (the z component of the
// 3D cross product of the two vectors extended with z=0).
func Cross[T constraints.Float](a, b Vec2[T]) T { return a.X*b.Y - a.Y*b.X }

// CrossSV returns the 90° rotation of v scaled by s: s × v.
func CrossSV[T constraints.Float](s T, v Vec2[T]) Vec2[T] { return Vec2[T]{-s * v.Y, s * v.X} }

// CrossVS returns v × s, the mirror-sign rotation of CrossSV.
func CrossVS[T constraints.Float](v Vec2[T], s T) Vec2[T] { return Vec2[T]{s * v.Y, -s * v.X} }

// Abs returns the component-wise absolute value.
func Abs[T constraints.Float](a Vec2[T]) Vec2[T] {
	return Vec2[T]{absT(a.X), absT(a.Y)}
}

// Min returns the component-wise minimum.
func Min[T constraints.Float](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{minT(a.X, b.X), minT(a.Y, b.Y)}
}

// Max returns the component-wise maximum.
func Max[T constraints.Float](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{maxT(a.X, b.X), maxT(a.Y, b.Y)}
}

// Len returns the Euclidean length of v.
func Len[T constraints.Float](v Vec2[T]) T {
	return T(math.Sqrt(float64(v.X*v.X + v.Y*v.Y)))
}

// LenSquared returns the squared Euclidean length of v (no sqrt).
func LenSquared[T constraints.Float](v Vec2[T]) T { return v.X*v.X + v.Y*v.Y }

// Normalize returns v scaled to unit length, or the zero vector if |v| is
// within machine epsilon of zero (per spec.md §4.1).
func Normalize[T constraints.Float](v Vec2[T]) Vec2[T] {
	length := Len(v)
	if length < epsilonOf[T]() {
		return Vec2[T]{}
	}
	inv := 1 / length
	return Vec2[T]{v.X * inv, v.Y * inv}
}

// Distance returns the Euclidean distance between a and b.
func Distance[T constraints.Float](a, b Vec2[T]) T { return Len(Sub(a, b)) }

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared[T constraints.Float](a, b Vec2[T]) T { return LenSquared(Sub(a, b)) }

// Lerp linearly interpolates between a and b: a when t=0, b when t=1.
func Lerp[T constraints.Float](a, b Vec2[T], t T) Vec2[T] {
	return Vec2[T]{a.X + t*(b.X-a.X), a.Y + t*(b.Y-a.Y)}
}

// FuzzyEqual reports whether a and b are within eps on both axes.
func FuzzyEqual[T constraints.Float](a, b Vec2[T], eps T) bool {
	return absT(a.X-b.X) <= eps && absT(a.Y-b.Y) <= eps
}

// FuzzyEqualDefault uses the type's machine epsilon as the tolerance.
func FuzzyEqualDefault[T constraints.Float](a, b Vec2[T]) bool {
	return FuzzyEqual(a, b, epsilonOf[T]())
}

func absT[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func minT[T constraints.Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxT[T constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// epsilonOf returns the machine epsilon for T (float32 or float64).
func epsilonOf[T constraints.Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(1.1920929e-7)
	default:
		return T(2.220446049250313e-16)
	}
}
