package vecmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Rot is a 2D rotation stored as sin/cos rather than an angle, so that
// composing rotations is a handful of multiply-adds instead of a trig call.
type Rot[T constraints.Float] struct {
	S, C T
}

// NewRot builds a Rot from an angle in radians.
func NewRot[T constraints.Float](angle T) Rot[T] {
	s, c := math.Sincos(float64(angle))
	return Rot[T]{S: T(s), C: T(c)}
}

// Identity returns the zero-angle rotation.
func Identity[T constraints.Float]() Rot[T] { return Rot[T]{S: 0, C: 1} }

// Angle recovers the angle in radians via atan2(S, C).
func (r Rot[T]) Angle() T { return T(math.Atan2(float64(r.S), float64(r.C))) }

// MulRot composes q then r: MulRot(q, r) rotates by q first, then r.
func MulRot[T constraints.Float](q, r Rot[T]) Rot[T] {
	return Rot[T]{
		S: q.S*r.C + q.C*r.S,
		C: q.C*r.C - q.S*r.S,
	}
}

// InvMulRot computes the relative rotation q^-1 * r.
func InvMulRot[T constraints.Float](q, r Rot[T]) Rot[T] {
	return Rot[T]{
		S: q.C*r.S - q.S*r.C,
		C: q.C*r.C + q.S*r.S,
	}
}

// Inv returns the inverse rotation (the transpose of the equivalent
// rotation matrix).
func (r Rot[T]) Inv() Rot[T] { return Rot[T]{S: -r.S, C: r.C} }

// RotateVec applies r to v.
func RotateVec[T constraints.Float](r Rot[T], v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: r.C*v.X - r.S*v.Y,
		Y: r.S*v.X + r.C*v.Y,
	}
}

// InvRotateVec applies r's inverse to v without materializing Inv().
func InvRotateVec[T constraints.Float](r Rot[T], v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: r.C*v.X + r.S*v.Y,
		Y: -r.S*v.X + r.C*v.Y,
	}
}
