package gjk

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/vecmath"
)

// DistanceCache warm-starts ShapeDistance across calls with slowly moving
// proxies: it records the index pairs of the simplex vertices that were
// active when the previous call finished. Count must be 0 on first use.
type DistanceCache struct {
	Metric float64
	Count  int
	IndexA [3]int
	IndexB [3]int
}

// simplexVertex is one vertex of the working simplex: the support points
// on each proxy (in world space), their difference, and the barycentric
// weight assigned to it by the last Solve2/Solve3 call.
type simplexVertex[T constraints.Float] struct {
	wA, wB         vecmath.Vec2[T]
	w              vecmath.Vec2[T] // wB - wA
	a              T               // barycentric weight
	indexA, indexB int
}

// simplex is the Voronoi-region closest-point solver (Ericson §5.1.8):
// up to 3 vertices of the Minkowski difference A-B, reduced at each step
// to the sub-simplex closest to the origin.
type simplex[T constraints.Float] struct {
	v     [3]simplexVertex[T]
	count int
}

// newSimplex seeds a simplex from cache (or from vertex 0 of each proxy
// if cache is empty), transforming the cached local vertex indices into
// world-space support points under the given transforms.
func newSimplex[T constraints.Float](cache *DistanceCache, proxyA *DistanceProxy[T], xfA vecmath.Xf[T], proxyB *DistanceProxy[T], xfB vecmath.Xf[T]) simplex[T] {
	var s simplex[T]
	s.count = cache.Count
	for i := 0; i < s.count; i++ {
		v := &s.v[i]
		v.indexA = cache.IndexA[i]
		v.indexB = cache.IndexB[i]
		v.wA = vecmath.TransformPoint(xfA, proxyA.Vertices[v.indexA])
		v.wB = vecmath.TransformPoint(xfB, proxyB.Vertices[v.indexB])
		v.w = vecmath.Sub(v.wB, v.wA)
		v.a = -1
	}

	if s.count == 0 {
		v := &s.v[0]
		v.indexA, v.indexB = 0, 0
		v.wA = vecmath.TransformPoint(xfA, proxyA.Vertices[0])
		v.wB = vecmath.TransformPoint(xfB, proxyB.Vertices[0])
		v.w = vecmath.Sub(v.wB, v.wA)
		v.a = 1
		s.count = 1
	}
	return s
}

func (s *simplex[T]) saveInto(cache *DistanceCache) {
	cache.Metric = float64(s.metric())
	cache.Count = s.count
	for i := 0; i < s.count; i++ {
		cache.IndexA[i] = s.v[i].indexA
		cache.IndexB[i] = s.v[i].indexB
	}
}

func (s *simplex[T]) metric() T {
	switch s.count {
	case 1:
		return 0
	case 2:
		return vecmath.Distance(s.v[0].w, s.v[1].w)
	case 3:
		return vecmath.Cross(vecmath.Sub(s.v[1].w, s.v[0].w), vecmath.Sub(s.v[2].w, s.v[0].w))
	default:
		return 0
	}
}

// closest returns the simplex's current best estimate of the point on
// the Minkowski difference closest to the origin. Only meaningful for
// count 1 or 2; a 3-vertex simplex means the origin is already enclosed.
func (s *simplex[T]) closest() vecmath.Vec2[T] {
	switch s.count {
	case 1:
		return s.v[0].w
	case 2:
		return weight2(s.v[0].a, s.v[0].w, s.v[1].a, s.v[1].w)
	default:
		return vecmath.Vec2[T]{}
	}
}

func weight2[T constraints.Float](a1 T, w1 vecmath.Vec2[T], a2 T, w2 vecmath.Vec2[T]) vecmath.Vec2[T] {
	return vecmath.Vec2[T]{X: a1*w1.X + a2*w2.X, Y: a1*w1.Y + a2*w2.Y}
}

func weight3[T constraints.Float](a1 T, w1 vecmath.Vec2[T], a2 T, w2 vecmath.Vec2[T], a3 T, w3 vecmath.Vec2[T]) vecmath.Vec2[T] {
	return vecmath.Vec2[T]{X: a1*w1.X + a2*w2.X + a3*w3.X, Y: a1*w1.Y + a2*w2.Y + a3*w3.Y}
}

// computeSearchDirection returns the direction from the simplex's
// closest point toward the origin, used to pick the next support point.
func (s *simplex[T]) computeSearchDirection() vecmath.Vec2[T] {
	switch s.count {
	case 1:
		return vecmath.Neg(s.v[0].w)
	case 2:
		e12 := vecmath.Sub(s.v[1].w, s.v[0].w)
		sgn := vecmath.Cross(e12, vecmath.Neg(s.v[0].w))
		if sgn > 0 {
			return vecmath.CrossSV(T(1), e12)
		}
		return vecmath.CrossVS(e12, T(1))
	default:
		return vecmath.Vec2[T]{}
	}
}

// computeWitnessPoints recovers the closest point on each proxy from the
// simplex's final barycentric weights.
func (s *simplex[T]) computeWitnessPoints() (a, b vecmath.Vec2[T]) {
	switch s.count {
	case 1:
		return s.v[0].wA, s.v[0].wB
	case 2:
		a = weight2(s.v[0].a, s.v[0].wA, s.v[1].a, s.v[1].wA)
		b = weight2(s.v[0].a, s.v[0].wB, s.v[1].a, s.v[1].wB)
		return a, b
	case 3:
		a = weight3(s.v[0].a, s.v[0].wA, s.v[1].a, s.v[1].wA, s.v[2].a, s.v[2].wA)
		// The original notes pointB should coincide with pointA here but
		// computes it independently and finds they are not always equal;
		// it uses pointA for both, which this follows.
		return a, a
	default:
		return a, b
	}
}

// solve2 reduces a 2-vertex simplex (a line segment) to the sub-simplex
// closest to the origin via the Voronoi regions of its endpoints and
// interior.
func (s *simplex[T]) solve2() {
	w1 := s.v[0].w
	w2 := s.v[1].w
	e12 := vecmath.Sub(w2, w1)

	d12_2 := -vecmath.Dot(w1, e12)
	if d12_2 <= 0 {
		s.v[0].a = 1
		s.count = 1
		return
	}

	d12_1 := vecmath.Dot(w2, e12)
	if d12_1 <= 0 {
		s.v[1].a = 1
		s.count = 1
		s.v[0] = s.v[1]
		return
	}

	invD12 := 1 / (d12_1 + d12_2)
	s.v[0].a = d12_1 * invD12
	s.v[1].a = d12_2 * invD12
	s.count = 2
}

// solve3 reduces a 3-vertex simplex (a triangle) to whichever of its
// seven Voronoi regions (3 vertices, 3 edges, interior) contains the
// origin.
func (s *simplex[T]) solve3() {
	w1, w2, w3 := s.v[0].w, s.v[1].w, s.v[2].w

	e12 := vecmath.Sub(w2, w1)
	w1e12 := vecmath.Dot(w1, e12)
	w2e12 := vecmath.Dot(w2, e12)
	d12_1 := w2e12
	d12_2 := -w1e12

	e13 := vecmath.Sub(w3, w1)
	w1e13 := vecmath.Dot(w1, e13)
	w3e13 := vecmath.Dot(w3, e13)
	d13_1 := w3e13
	d13_2 := -w1e13

	e23 := vecmath.Sub(w3, w2)
	w2e23 := vecmath.Dot(w2, e23)
	w3e23 := vecmath.Dot(w3, e23)
	d23_1 := w3e23
	d23_2 := -w2e23

	n123 := vecmath.Cross(e12, e13)
	d123_1 := n123 * vecmath.Cross(w2, w3)
	d123_2 := n123 * vecmath.Cross(w3, w1)
	d123_3 := n123 * vecmath.Cross(w1, w2)

	if d12_2 <= 0 && d13_2 <= 0 {
		s.v[0].a = 1
		s.count = 1
		return
	}

	if d12_1 > 0 && d12_2 > 0 && d123_3 <= 0 {
		invD12 := 1 / (d12_1 + d12_2)
		s.v[0].a = d12_1 * invD12
		s.v[1].a = d12_2 * invD12
		s.count = 2
		return
	}

	if d13_1 > 0 && d13_2 > 0 && d123_2 <= 0 {
		invD13 := 1 / (d13_1 + d13_2)
		s.v[0].a = d13_1 * invD13
		s.v[2].a = d13_2 * invD13
		s.count = 2
		s.v[1] = s.v[2]
		return
	}

	if d12_1 <= 0 && d23_2 <= 0 {
		s.v[1].a = 1
		s.count = 1
		s.v[0] = s.v[1]
		return
	}

	if d13_1 <= 0 && d23_1 <= 0 {
		s.v[2].a = 1
		s.count = 1
		s.v[0] = s.v[2]
		return
	}

	if d23_1 > 0 && d23_2 > 0 && d123_1 <= 0 {
		invD23 := 1 / (d23_1 + d23_2)
		s.v[1].a = d23_1 * invD23
		s.v[2].a = d23_2 * invD23
		s.count = 2
		s.v[0] = s.v[2]
		return
	}

	invD123 := 1 / (d123_1 + d123_2 + d123_3)
	s.v[0].a = d123_1 * invD123
	s.v[1].a = d123_2 * invD123
	s.v[2].a = d123_3 * invD123
	s.count = 3
}
