package vecmath

import "golang.org/x/exp/constraints"

// Xf is a rigid transform: a rotation q followed by a translation p.
type Xf[T constraints.Float] struct {
	P Vec2[T]
	Q Rot[T]
}

// IdentityXf returns the no-op transform.
func IdentityXf[T constraints.Float]() Xf[T] {
	return Xf[T]{P: Vec2[T]{}, Q: Identity[T]()}
}

// TransformPoint applies xf's rotation then its translation: q*p + p_translate.
func TransformPoint[T constraints.Float](xf Xf[T], point Vec2[T]) Vec2[T] {
	return Add(RotateVec(xf.Q, point), xf.P)
}

// InvTransformPoint is the exact inverse of TransformPoint.
func InvTransformPoint[T constraints.Float](xf Xf[T], point Vec2[T]) Vec2[T] {
	return InvRotateVec(xf.Q, Sub(point, xf.P))
}

// MulXf composes two transforms: applying the result to a point is the
// same as applying b then a.
func MulXf[T constraints.Float](a, b Xf[T]) Xf[T] {
	return Xf[T]{
		Q: MulRot(a.Q, b.Q),
		P: Add(RotateVec(a.Q, b.P), a.P),
	}
}

// InvMulXf computes a^-1 * b, the transform taking b's frame into a's.
func InvMulXf[T constraints.Float](a, b Xf[T]) Xf[T] {
	return Xf[T]{
		Q: InvMulRot(a.Q, b.Q),
		P: InvRotateVec(a.Q, Sub(b.P, a.P)),
	}
}

// Sweep describes the motion of a body's center of mass between two
// discrete time steps, used to reconstruct an interpolated transform for
// continuous collision detection.
type Sweep[T constraints.Float] struct {
	LocalCenter Vec2[T] // center of mass in body-local coordinates
	C1, C2      Vec2[T] // center of mass at alpha=0 and alpha=1
	A1, A2      T       // angle at alpha=0 and alpha=1
}

// GetTransform interpolates the sweep at the given alpha in [0,1] and
// returns the world transform with that center of mass and angle.
func (s Sweep[T]) GetTransform(alpha T) Xf[T] {
	c := Add(Scale(s.C1, 1-alpha), Scale(s.C2, alpha))
	angle := s.A1*(1-alpha) + s.A2*alpha
	q := NewRot(angle)
	xf := Xf[T]{Q: q, P: Sub(c, RotateVec(q, s.LocalCenter))}
	return xf
}

// Advance moves the sweep's starting point to the given alpha, used after
// a time-of-impact event to avoid re-solving from t=0 on the next step.
func (s *Sweep[T]) Advance(alpha T) {
	beta := (alpha - 0) / (1 - 0)
	s.C1 = Add(s.C1, Scale(Sub(s.C2, s.C1), beta))
	s.A1 += beta * (s.A2 - s.A1)
}
