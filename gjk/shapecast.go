package gjk

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/vecmath"
)

// ShapeCastInput describes a linear sweep of proxy B by translationB
// against a fixed proxy A, both under their own world transforms.
type ShapeCastInput[T constraints.Float] struct {
	ProxyA, ProxyB         DistanceProxy[T]
	TransformA, TransformB vecmath.Xf[T]
	TranslationB           vecmath.Vec2[T]
	MaxFraction            T
}

// RayHit is the result of a shape cast or shape-local ray cast: the
// world-space hit point and normal, the fraction of the swept
// translation at which the hit occurred, the iteration count spent, and
// whether a hit was found at all.
type RayHit[T constraints.Float] struct {
	Normal     vecmath.Vec2[T]
	Point      vecmath.Vec2[T]
	Fraction   T
	Iterations int
	Hit        bool
}

// ShapeCast performs Gino van den Bergen's GJK-raycast: proxy B is swept
// by TranslationB against fixed proxy A, returning the first time of
// contact. An initial overlap (iter==0 when the separation loop exits)
// is reported as a miss, since a cast is only meaningful when the shapes
// start apart.
func ShapeCast[T constraints.Float](input *ShapeCastInput[T]) RayHit[T] {
	var output RayHit[T]

	proxyA := &input.ProxyA
	proxyB := &input.ProxyB
	radius := proxyA.Radius + proxyB.Radius

	xfA := input.TransformA
	xfB := input.TransformB
	r := input.TranslationB
	n := vecmath.Vec2[T]{}
	var lambda T
	maxFraction := input.MaxFraction

	var s simplex[T]
	s.count = 0

	indexA := findSupport(proxyA, vecmath.InvRotateVec(xfA.Q, vecmath.Neg(r)))
	wA := vecmath.TransformPoint(xfA, proxyA.Vertices[indexA])
	indexB := findSupport(proxyB, vecmath.InvRotateVec(xfB.Q, r))
	wB := vecmath.TransformPoint(xfB, proxyB.Vertices[indexB])
	v := vecmath.Sub(wA, wB)

	sigma := maxT(LinearSlop, radius-T(LinearSlop))

	iter := 0
	for iter < maxGJKIters && vecmath.Len(v) > sigma {
		indexA = findSupport(proxyA, vecmath.InvRotateVec(xfA.Q, vecmath.Neg(v)))
		wA = vecmath.TransformPoint(xfA, proxyA.Vertices[indexA])
		indexB = findSupport(proxyB, vecmath.InvRotateVec(xfB.Q, v))
		wB = vecmath.TransformPoint(xfB, proxyB.Vertices[indexB])
		p := vecmath.Sub(wA, wB)

		v = vecmath.Normalize(v)

		vp := vecmath.Dot(v, p)
		vr := vecmath.Dot(v, r)
		if vp-sigma > lambda*vr {
			if vr <= 0 {
				return output
			}
			lambda = (vp - sigma) / vr
			if lambda > maxFraction {
				return output
			}
			n = vecmath.Neg(v)
			s.count = 0
		}

		vertex := &s.v[s.count]
		vertex.indexA = indexB
		vertex.wA = vecmath.MulAdd(wB, lambda, r)
		vertex.indexB = indexA
		vertex.wB = wA
		vertex.w = vecmath.Sub(vertex.wB, vertex.wA)
		vertex.a = 1
		s.count++

		switch s.count {
		case 2:
			s.solve2()
		case 3:
			s.solve3()
		}

		if s.count == 3 {
			// The swept shapes overlap along the whole translation.
			return output
		}

		v = s.closest()
		iter++
	}

	if iter == 0 {
		return output
	}

	pointB, pointA := s.computeWitnessPoints()
	if vecmath.Dot(v, v) > 0 {
		n = vecmath.Normalize(vecmath.Neg(v))
	}

	output.Point = vecmath.MulAdd(pointA, proxyA.Radius, n)
	output.Normal = n
	output.Fraction = lambda
	output.Iterations = iter
	output.Hit = true
	return output
}
