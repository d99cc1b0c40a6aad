package gjk

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/vecmath"
)

// maxGJKIters bounds both ShapeDistance's and ShapeCast's main loop, the
// same cap the original uses for both (k_maxIters = 20).
const maxGJKIters = 20

// DistanceInput bundles the two proxies, their world transforms, and
// whether the proxies' rounding radii should be subtracted from the
// result, for ShapeDistance.
type DistanceInput[T constraints.Float] struct {
	ProxyA, ProxyB     DistanceProxy[T]
	TransformA, TransformB vecmath.Xf[T]
	UseRadii           bool
}

// DistanceOutput is the closest point on each proxy, the distance
// between them (after radii are applied, if requested), and the number
// of support-point iterations spent.
type DistanceOutput[T constraints.Float] struct {
	PointA, PointB vecmath.Vec2[T]
	Distance       T
	Iterations     int
}

// ShapeDistance computes the closest points between two convex proxies
// under their respective transforms, via GJK with Voronoi-region simplex
// reduction. cache both warm-starts the search (set its Count to 0 on
// the very first call for a given pair) and is updated in place with the
// final simplex, for reuse on the next call with slightly moved proxies.
func ShapeDistance[T constraints.Float](cache *DistanceCache, input *DistanceInput[T]) DistanceOutput[T] {
	proxyA := &input.ProxyA
	proxyB := &input.ProxyB

	s := newSimplex(cache, proxyA, input.TransformA, proxyB, input.TransformB)

	var saveA, saveB [3]int
	saveCount := 0

	iter := 0
	for iter < maxGJKIters {
		saveCount = s.count
		for i := 0; i < saveCount; i++ {
			saveA[i] = s.v[i].indexA
			saveB[i] = s.v[i].indexB
		}

		switch s.count {
		case 2:
			s.solve2()
		case 3:
			s.solve3()
		}

		if s.count == 3 {
			// The origin lies inside the simplex: the shapes overlap.
			break
		}

		d := s.computeSearchDirection()
		if vecmath.Dot(d, d) < epsilonSquared[T]() {
			// The origin is on (or within machine precision of) the
			// simplex: overlap, or too close to resolve further.
			break
		}

		vertex := &s.v[s.count]
		vertex.indexA = findSupport(proxyA, vecmath.InvRotateVec(input.TransformA.Q, vecmath.Neg(d)))
		vertex.wA = vecmath.TransformPoint(input.TransformA, proxyA.Vertices[vertex.indexA])
		vertex.indexB = findSupport(proxyB, vecmath.InvRotateVec(input.TransformB.Q, d))
		vertex.wB = vecmath.TransformPoint(input.TransformB, proxyB.Vertices[vertex.indexB])
		vertex.w = vecmath.Sub(vertex.wB, vertex.wA)

		iter++

		duplicate := false
		for i := 0; i < saveCount; i++ {
			if vertex.indexA == saveA[i] && vertex.indexB == saveB[i] {
				duplicate = true
				break
			}
		}
		if duplicate {
			break
		}
		s.count++
	}

	var output DistanceOutput[T]
	output.PointA, output.PointB = s.computeWitnessPoints()
	output.Distance = vecmath.Distance(output.PointA, output.PointB)
	output.Iterations = iter

	s.saveInto(cache)

	if input.UseRadii {
		if output.Distance < epsilonOf[T]() {
			mid := vecmath.Scale(vecmath.Add(output.PointA, output.PointB), 0.5)
			output.PointA, output.PointB = mid, mid
			output.Distance = 0
			return output
		}

		rA, rB := proxyA.Radius, proxyB.Radius
		normal := vecmath.Normalize(vecmath.Sub(output.PointB, output.PointA))
		output.Distance = maxT(0, output.Distance-rA-rB)
		output.PointA = vecmath.MulAdd(output.PointA, rA, normal)
		output.PointB = vecmath.MulAdd(output.PointB, -rB, normal)
	}

	return output
}

func maxT[T constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// epsilonOf mirrors the original's FLT_EPSILON, the float32 machine
// epsilon it uses for every near-zero comparison in this package,
// regardless of T.
func epsilonOf[T constraints.Float]() T {
	return T(1.1920929e-7)
}

func epsilonSquared[T constraints.Float]() T {
	eps := epsilonOf[T]()
	return eps * eps
}
