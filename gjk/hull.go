package gjk

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/vecmath"
)

// Hull is a convex polygon's vertices in CCW winding order, as produced
// by ComputeHull.
type Hull[T constraints.Float] struct {
	Points [MaxPolyVerts]vecmath.Vec2[T]
	Count  int
}

// ComputeHull builds the convex hull of points via a quickhull variant:
// it welds points within 4*LinearSlop of each other, picks the two most
// extreme points as a starting diameter, partitions the rest by side,
// and recursively finds the furthest point on each side until no point
// lies more than 2*LinearSlop outside the current hull edge. A final
// pass drops any vertex that turns out collinear with its neighbors.
// Returns an empty hull (Count==0) if points number fewer than 3 or more
// than MaxPolyVerts, or if fewer than 3 distinct points survive welding.
func ComputeHull[T constraints.Float](points []vecmath.Vec2[T]) Hull[T] {
	var hull Hull[T]
	count := len(points)
	if count < 3 || count > MaxPolyVerts {
		return hull
	}

	box := aabb.Empty[T]()
	ps := make([]vecmath.Vec2[T], 0, count)
	tolSqr := T(16) * T(LinearSlop) * T(LinearSlop)
	for i := 0; i < count; i++ {
		box.Extend(points[i])

		unique := true
		for j := 0; j < len(ps); j++ {
			if vecmath.DistanceSquared(points[i], ps[j]) < tolSqr {
				unique = false
				break
			}
		}
		if unique {
			ps = append(ps, points[i])
		}
	}
	if len(ps) < 3 {
		return hull
	}

	center := box.Center()
	f1 := 0
	dsq1 := vecmath.DistanceSquared(center, ps[f1])
	for i := 1; i < len(ps); i++ {
		if dsq := vecmath.DistanceSquared(center, ps[i]); dsq > dsq1 {
			f1, dsq1 = i, dsq
		}
	}
	p1 := ps[f1]
	ps[f1] = ps[len(ps)-1]
	ps = ps[:len(ps)-1]

	f2 := 0
	dsq2 := vecmath.DistanceSquared(p1, ps[f2])
	for i := 1; i < len(ps); i++ {
		if dsq := vecmath.DistanceSquared(p1, ps[i]); dsq > dsq2 {
			f2, dsq2 = i, dsq
		}
	}
	p2 := ps[f2]
	ps[f2] = ps[len(ps)-1]
	ps = ps[:len(ps)-1]

	e := vecmath.Normalize(vecmath.Sub(p2, p1))
	var rightPoints, leftPoints []vecmath.Vec2[T]
	for _, p := range ps {
		d := vecmath.Cross(vecmath.Sub(p, p1), e)
		switch {
		case d >= 2*T(LinearSlop):
			rightPoints = append(rightPoints, p)
		case d <= -2*T(LinearSlop):
			leftPoints = append(leftPoints, p)
		}
	}

	hull1 := recurseHull(p1, p2, rightPoints)
	hull2 := recurseHull(p2, p1, leftPoints)
	if hull1.Count == 0 && hull2.Count == 0 {
		return Hull[T]{}
	}

	hull.Points[hull.Count] = p1
	hull.Count++
	for i := 0; i < hull1.Count; i++ {
		hull.Points[hull.Count] = hull1.Points[i]
		hull.Count++
	}
	hull.Points[hull.Count] = p2
	hull.Count++
	for i := 0; i < hull2.Count; i++ {
		hull.Points[hull.Count] = hull2.Points[i]
		hull.Count++
	}

	for searching := true; searching && hull.Count > 2; {
		searching = false
		for i := 0; i < hull.Count; i++ {
			i2 := (i + 1) % hull.Count
			i3 := (i + 2) % hull.Count
			s1, s2, s3 := hull.Points[i], hull.Points[i2], hull.Points[i3]
			r := vecmath.Normalize(vecmath.Sub(s3, s1))
			if vecmath.Cross(vecmath.Sub(s2, s1), r) <= 2*T(LinearSlop) {
				for j := i2; j < hull.Count-1; j++ {
					hull.Points[j] = hull.Points[j+1]
				}
				hull.Count--
				searching = true
				break
			}
		}
	}

	if hull.Count < 3 {
		return Hull[T]{}
	}
	return hull
}

// recurseHull finds, among ps, the point furthest to the right of the
// directed edge p1->p2, splits the remainder by side of the two new
// edges to that point, and recurses. Points not strictly more than
// 2*LinearSlop to the right of p1->p2 terminate the recursion.
func recurseHull[T constraints.Float](p1, p2 vecmath.Vec2[T], ps []vecmath.Vec2[T]) Hull[T] {
	var hull Hull[T]
	if len(ps) == 0 {
		return hull
	}

	e := vecmath.Normalize(vecmath.Sub(p2, p1))

	var rightPoints []vecmath.Vec2[T]
	bestIndex := 0
	bestDistance := vecmath.Cross(vecmath.Sub(ps[0], p1), e)
	if bestDistance > 0 {
		rightPoints = append(rightPoints, ps[0])
	}
	for i := 1; i < len(ps); i++ {
		d := vecmath.Cross(vecmath.Sub(ps[i], p1), e)
		if d > bestDistance {
			bestIndex, bestDistance = i, d
		}
		if d > 0 {
			rightPoints = append(rightPoints, ps[i])
		}
	}

	if bestDistance < 2*T(LinearSlop) {
		return hull
	}
	bestPoint := ps[bestIndex]

	hull1 := recurseHull(p1, bestPoint, rightPoints)
	hull2 := recurseHull(bestPoint, p2, rightPoints)

	for i := 0; i < hull1.Count; i++ {
		hull.Points[hull.Count] = hull1.Points[i]
		hull.Count++
	}
	hull.Points[hull.Count] = bestPoint
	hull.Count++
	for i := 0; i < hull2.Count; i++ {
		hull.Points[hull.Count] = hull2.Points[i]
		hull.Count++
	}
	return hull
}

// ValidateHull reports whether hull is a valid convex polygon: every
// vertex lies strictly behind every edge, and no three consecutive
// vertices are collinear. Expensive; intended for debugging/tests, not
// runtime use.
func ValidateHull[T constraints.Float](hull Hull[T]) bool {
	if hull.Count < 3 || hull.Count > MaxPolyVerts {
		return false
	}

	for i := 0; i < hull.Count; i++ {
		i2 := i + 1
		if i == hull.Count-1 {
			i2 = 0
		}
		p := hull.Points[i]
		e := vecmath.Normalize(vecmath.Sub(hull.Points[i2], p))

		for j := 0; j < hull.Count; j++ {
			if j == i || j == i2 {
				continue
			}
			if vecmath.Cross(vecmath.Sub(hull.Points[j], p), e) >= 0 {
				return false
			}
		}
	}

	for i := 0; i < hull.Count; i++ {
		i2 := (i + 1) % hull.Count
		i3 := (i + 2) % hull.Count
		p1, p2, p3 := hull.Points[i], hull.Points[i2], hull.Points[i3]
		e := vecmath.Normalize(vecmath.Sub(p3, p1))
		if vecmath.Cross(vecmath.Sub(p2, p1), e) <= T(LinearSlop) {
			return false
		}
	}
	return true
}
