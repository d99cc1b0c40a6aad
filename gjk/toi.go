package gjk

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/vecmath"
)

// TOIState reports the outcome of a TimeOfImpact query.
type TOIState int

const (
	TOIUnknown TOIState = iota
	TOIFailed
	TOIOverlapped
	TOIHit
	TOISeparated
)

// TOIInput bundles both proxies, their sweeps over [0,tMax], and the
// time horizon to search.
type TOIInput[T constraints.Float] struct {
	ProxyA, ProxyB DistanceProxy[T]
	SweepA, SweepB vecmath.Sweep[T]
	TMax           T
}

// TOIOutput is the query result: the state reached, and the time (in
// [0,TMax]) at which it was reached.
type TOIOutput[T constraints.Float] struct {
	State TOIState
	T     T
}

// sepType distinguishes the three shapes a separating axis can take once
// fixed from the final GJK simplex.
type sepType int

const (
	sepPoint sepType = iota
	sepFaceA
	sepFaceB
)

// sepFunc is a separating axis, fixed in the local frame of one proxy
// (or anchored to a single point pair), used to bisect for the time at
// which the two swept shapes first come within target separation.
type sepFunc[T constraints.Float] struct {
	proxyA, proxyB *DistanceProxy[T]
	sweepA, sweepB vecmath.Sweep[T]
	localPoint     vecmath.Vec2[T]
	axis           vecmath.Vec2[T]
	kind           sepType
}

// makeSepFunc builds a separating axis from the final simplex of a
// ShapeDistance call at time t1: a single support pair becomes a point
// axis; two points on one proxy become that proxy's face normal.
func makeSepFunc[T constraints.Float](cache *DistanceCache, proxyA *DistanceProxy[T], sweepA *vecmath.Sweep[T], proxyB *DistanceProxy[T], sweepB *vecmath.Sweep[T], t1 T) sepFunc[T] {
	var f sepFunc[T]
	f.proxyA, f.proxyB = proxyA, proxyB
	f.sweepA, f.sweepB = *sweepA, *sweepB

	xfA := sweepA.GetTransform(t1)
	xfB := sweepB.GetTransform(t1)

	if cache.Count == 1 {
		f.kind = sepPoint
		localPointA := proxyA.Vertices[cache.IndexA[0]]
		localPointB := proxyB.Vertices[cache.IndexB[0]]
		pointA := vecmath.TransformPoint(xfA, localPointA)
		pointB := vecmath.TransformPoint(xfB, localPointB)
		f.axis = vecmath.Normalize(vecmath.Sub(pointB, pointA))
		return f
	}

	if cache.IndexA[0] == cache.IndexA[1] {
		// Two points on B, one on A: the axis is B's edge normal.
		f.kind = sepFaceB
		localB1 := proxyB.Vertices[cache.IndexB[0]]
		localB2 := proxyB.Vertices[cache.IndexB[1]]
		f.axis = vecmath.Normalize(vecmath.CrossVS(vecmath.Sub(localB2, localB1), 1))
		normal := vecmath.RotateVec(xfB.Q, f.axis)

		f.localPoint = vecmath.Scale(vecmath.Add(localB1, localB2), 0.5)
		pointB := vecmath.TransformPoint(xfB, f.localPoint)

		localA := proxyA.Vertices[cache.IndexA[0]]
		pointA := vecmath.TransformPoint(xfA, localA)

		if vecmath.Dot(vecmath.Sub(pointA, pointB), normal) < 0 {
			f.axis = vecmath.Neg(f.axis)
		}
		return f
	}

	// Two points on A, one or two on B: the axis is A's edge normal.
	f.kind = sepFaceA
	localA1 := proxyA.Vertices[cache.IndexA[0]]
	localA2 := proxyA.Vertices[cache.IndexA[1]]
	f.axis = vecmath.Normalize(vecmath.CrossVS(vecmath.Sub(localA2, localA1), 1))
	normal := vecmath.RotateVec(xfA.Q, f.axis)

	f.localPoint = vecmath.Scale(vecmath.Add(localA1, localA2), 0.5)
	pointA := vecmath.TransformPoint(xfA, f.localPoint)

	localB := proxyB.Vertices[cache.IndexB[0]]
	pointB := vecmath.TransformPoint(xfB, localB)

	if vecmath.Dot(vecmath.Sub(pointB, pointA), normal) < 0 {
		f.axis = vecmath.Neg(f.axis)
	}
	return f
}

// findMinSeparation evaluates f at time t against the deepest-penetrating
// vertex pair, returning that separation and the witness indices.
func (f *sepFunc[T]) findMinSeparation(t T) (separation T, indexA, indexB int) {
	xfA := f.sweepA.GetTransform(t)
	xfB := f.sweepB.GetTransform(t)

	switch f.kind {
	case sepPoint:
		axisA := vecmath.InvRotateVec(xfA.Q, f.axis)
		axisB := vecmath.InvRotateVec(xfB.Q, vecmath.Neg(f.axis))
		indexA = findSupport(f.proxyA, axisA)
		indexB = findSupport(f.proxyB, axisB)
		pointA := vecmath.TransformPoint(xfA, f.proxyA.Vertices[indexA])
		pointB := vecmath.TransformPoint(xfB, f.proxyB.Vertices[indexB])
		return vecmath.Dot(vecmath.Sub(pointB, pointA), f.axis), indexA, indexB

	case sepFaceA:
		normal := vecmath.RotateVec(xfA.Q, f.axis)
		pointA := vecmath.TransformPoint(xfA, f.localPoint)
		axisB := vecmath.InvRotateVec(xfB.Q, vecmath.Neg(normal))
		indexA = -1
		indexB = findSupport(f.proxyB, axisB)
		pointB := vecmath.TransformPoint(xfB, f.proxyB.Vertices[indexB])
		return vecmath.Dot(vecmath.Sub(pointB, pointA), normal), indexA, indexB

	default: // sepFaceB
		normal := vecmath.RotateVec(xfB.Q, f.axis)
		pointB := vecmath.TransformPoint(xfB, f.localPoint)
		axisA := vecmath.InvRotateVec(xfA.Q, vecmath.Neg(normal))
		indexB = -1
		indexA = findSupport(f.proxyA, axisA)
		pointA := vecmath.TransformPoint(xfA, f.proxyA.Vertices[indexA])
		return vecmath.Dot(vecmath.Sub(pointA, pointB), normal), indexA, indexB
	}
}

// evaluateSeparation evaluates f at time t against a fixed witness pair
// (rather than re-finding the deepest point), for the inner root finder.
func (f *sepFunc[T]) evaluateSeparation(indexA, indexB int, t T) T {
	xfA := f.sweepA.GetTransform(t)
	xfB := f.sweepB.GetTransform(t)

	switch f.kind {
	case sepPoint:
		pointA := vecmath.TransformPoint(xfA, f.proxyA.Vertices[indexA])
		pointB := vecmath.TransformPoint(xfB, f.proxyB.Vertices[indexB])
		return vecmath.Dot(vecmath.Sub(pointB, pointA), f.axis)

	case sepFaceA:
		normal := vecmath.RotateVec(xfA.Q, f.axis)
		pointA := vecmath.TransformPoint(xfA, f.localPoint)
		pointB := vecmath.TransformPoint(xfB, f.proxyB.Vertices[indexB])
		return vecmath.Dot(vecmath.Sub(pointB, pointA), normal)

	default: // sepFaceB
		normal := vecmath.RotateVec(xfB.Q, f.axis)
		pointB := vecmath.TransformPoint(xfB, f.localPoint)
		pointA := vecmath.TransformPoint(xfA, f.proxyA.Vertices[indexA])
		return vecmath.Dot(vecmath.Sub(pointA, pointB), normal)
	}
}

// TimeOfImpact computes the first time in [0, TMax] at which the swept
// proxies come within target separation, via conservative-advancement
// local separating-axis bisection (up to 20 outer iterations, each with
// up to 50 inner root-finding iterations alternating secant and
// bisection on odd/even iteration count).
func TimeOfImpact[T constraints.Float](input *TOIInput[T]) TOIOutput[T] {
	output := TOIOutput[T]{State: TOIUnknown, T: input.TMax}

	proxyA := &input.ProxyA
	proxyB := &input.ProxyB

	sweepA := input.SweepA
	sweepB := input.SweepB

	twoPi := T(2 * math.Pi)
	dA := twoPi * T(math.Floor(float64(sweepA.A1/twoPi)))
	sweepA.A1 -= dA
	sweepA.A2 -= dA
	dB := twoPi * T(math.Floor(float64(sweepB.A1/twoPi)))
	sweepB.A1 -= dB
	sweepB.A2 -= dB

	tMax := input.TMax
	totalRadius := proxyA.Radius + proxyB.Radius
	target := maxT(T(LinearSlop), totalRadius+T(LinearSlop))
	tolerance := T(0.25 * LinearSlop)

	t1 := T(0)
	const maxOuterIters = 20
	const maxInnerIters = 50
	iter := 0

	var cache DistanceCache
	distanceInput := DistanceInput[T]{ProxyA: input.ProxyA, ProxyB: input.ProxyB, UseRadii: false}

	for {
		xfA := sweepA.GetTransform(t1)
		xfB := sweepB.GetTransform(t1)

		distanceInput.TransformA = xfA
		distanceInput.TransformB = xfB
		distanceOutput := ShapeDistance(&cache, &distanceInput)

		if distanceOutput.Distance <= 0 {
			output.State = TOIOverlapped
			output.T = 0
			break
		}
		if distanceOutput.Distance < target+tolerance {
			output.State = TOIHit
			output.T = t1
			break
		}

		f := makeSepFunc(&cache, proxyA, &sweepA, proxyB, &sweepB, t1)

		done := false
		t2 := tMax
		pushBackIter := 0
		for {
			s2, indexA, indexB := f.findMinSeparation(t2)

			if s2 > target+tolerance {
				output.State = TOISeparated
				output.T = tMax
				done = true
				break
			}
			if s2 > target-tolerance {
				t1 = t2
				break
			}

			s1 := f.evaluateSeparation(indexA, indexB, t1)

			if s1 < target-tolerance {
				output.State = TOIFailed
				output.T = t1
				done = true
				break
			}
			if s1 <= target+tolerance {
				output.State = TOIHit
				output.T = t1
				done = true
				break
			}

			rootIterCount := 0
			a1, a2 := t1, t2
			for {
				var t T
				if rootIterCount&1 == 1 {
					t = a1 + (target-s1)*(a2-a1)/(s2-s1)
				} else {
					t = 0.5 * (a1 + a2)
				}
				rootIterCount++

				s := f.evaluateSeparation(indexA, indexB, t)
				if absT(s-target) < tolerance {
					t2 = t
					break
				}

				if s > target {
					a1 = t
					s1 = s
				} else {
					a2 = t
					s2 = s
				}
				if rootIterCount == maxInnerIters {
					break
				}
			}

			pushBackIter++
			if pushBackIter == MaxPolyVerts {
				break
			}
		}

		iter++
		if done {
			break
		}
		if iter == maxOuterIters {
			output.State = TOIFailed
			output.T = t1
			break
		}
	}

	return output
}

func absT[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
