package gjk

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/vecmath"
)

// Circle is a disc of the given radius centered at Center, in the
// owning body's local frame.
type Circle[T constraints.Float] struct {
	Center vecmath.Vec2[T]
	Radius T
}

// Capsule is the Minkowski sum of a segment (Point1, Point2) and a disc
// of the given radius, in the owning body's local frame.
type Capsule[T constraints.Float] struct {
	Point1, Point2 vecmath.Vec2[T]
	Radius         T
}

// Segment is a single line segment with zero thickness.
type Segment[T constraints.Float] struct {
	Point1, Point2 vecmath.Vec2[T]
}

// Polygon is a convex polygon, optionally rounded by Radius, in the
// owning body's local frame. Vertices must be in CCW winding order;
// Normals[i] is the outward normal of the edge from Vertices[i] to
// Vertices[(i+1)%Count].
type Polygon[T constraints.Float] struct {
	Vertices [MaxPolyVerts]vecmath.Vec2[T]
	Normals  [MaxPolyVerts]vecmath.Vec2[T]
	Centroid vecmath.Vec2[T]
	Count    int
	Radius   T
}

// MakeSquare returns a centered square with the given half-width.
func MakeSquare[T constraints.Float](halfWidth T) Polygon[T] {
	return MakeBox(halfWidth, halfWidth)
}

// MakeBox returns a centered, axis-aligned rectangle with the given
// half-extents.
func MakeBox[T constraints.Float](halfWidth, halfHeight T) Polygon[T] {
	return MakeOffsetBox(halfWidth, halfHeight, vecmath.Vec2[T]{}, vecmath.Identity[T]())
}

// MakeRoundedBox is MakeBox with a positive corner radius, giving a
// stadium-cornered rectangle under GJK's rounded-polygon semantics.
func MakeRoundedBox[T constraints.Float](halfWidth, halfHeight, radius T) Polygon[T] {
	p := MakeOffsetBox(halfWidth, halfHeight, vecmath.Vec2[T]{}, vecmath.Identity[T]())
	p.Radius = radius
	return p
}

// MakeOffsetBox returns a rectangle with the given half-extents, whose
// local frame is additionally shifted by center and rotated by rot.
func MakeOffsetBox[T constraints.Float](halfWidth, halfHeight T, center vecmath.Vec2[T], rot vecmath.Rot[T]) Polygon[T] {
	var p Polygon[T]
	p.Count = 4
	p.Vertices[0] = vecmath.Vec2[T]{X: -halfWidth, Y: -halfHeight}
	p.Vertices[1] = vecmath.Vec2[T]{X: halfWidth, Y: -halfHeight}
	p.Vertices[2] = vecmath.Vec2[T]{X: halfWidth, Y: halfHeight}
	p.Vertices[3] = vecmath.Vec2[T]{X: -halfWidth, Y: halfHeight}
	p.Normals[0] = vecmath.Vec2[T]{X: 0, Y: -1}
	p.Normals[1] = vecmath.Vec2[T]{X: 1, Y: 0}
	p.Normals[2] = vecmath.Vec2[T]{X: 0, Y: 1}
	p.Normals[3] = vecmath.Vec2[T]{X: -1, Y: 0}
	p.Centroid = center

	xf := vecmath.Xf[T]{P: center, Q: rot}
	for i := 0; i < p.Count; i++ {
		p.Vertices[i] = vecmath.TransformPoint(xf, p.Vertices[i])
		p.Normals[i] = vecmath.RotateVec(rot, p.Normals[i])
	}
	return p
}

// MakeAABB returns the axis-aligned rectangle matching box, centered at
// box's own center.
func MakeAABB[T constraints.Float](box aabb.Box[T]) Polygon[T] {
	center := box.Center()
	halfWidth := (box.Upper.X - box.Lower.X) / 2
	halfHeight := (box.Upper.Y - box.Lower.Y) / 2
	return MakeOffsetBox(halfWidth, halfHeight, center, vecmath.Identity[T]())
}

// MakeCapsule returns a Capsule between the two given points.
func MakeCapsule[T constraints.Float](p1, p2 vecmath.Vec2[T], radius T) Capsule[T] {
	return Capsule[T]{Point1: p1, Point2: p2, Radius: radius}
}

// MakePolygonFromHull builds a Polygon from a convex hull's points, in
// the order ComputeHull produced them, computing outward normals and
// centroid. Returns an error if the hull is degenerate (fewer than 3
// points).
func MakePolygonFromHull[T constraints.Float](hull Hull[T]) (Polygon[T], error) {
	if hull.Count < 3 {
		return Polygon[T]{}, fmt.Errorf("gjk: MakePolygonFromHull: %w", ErrTooFewPoints)
	}
	return makePolygon(hull.Points[:hull.Count]), nil
}

// MakePolygon builds a Polygon from the convex hull of vertices, as
// computed by ComputeHull. Non-convex input is not rejected: vertices
// that are not on the hull are dropped. Returns ErrTooFewPoints if the
// hull is degenerate (fewer than 3 points).
func MakePolygon[T constraints.Float](vertices []vecmath.Vec2[T]) (Polygon[T], error) {
	hull := ComputeHull(vertices)
	if hull.Count < 3 {
		return Polygon[T]{}, fmt.Errorf("gjk: MakePolygon: %w", ErrTooFewPoints)
	}
	return makePolygon(hull.Points[:hull.Count]), nil
}

func makePolygon[T constraints.Float](vertices []vecmath.Vec2[T]) Polygon[T] {
	var p Polygon[T]
	p.Count = len(vertices)
	for i := 0; i < p.Count; i++ {
		p.Vertices[i] = vertices[i]
	}
	for i := 0; i < p.Count; i++ {
		i2 := (i + 1) % p.Count
		edge := vecmath.Sub(p.Vertices[i2], p.Vertices[i])
		p.Normals[i] = vecmath.Normalize(vecmath.CrossVS(edge, 1))
	}

	var centroid vecmath.Vec2[T]
	for i := 0; i < p.Count; i++ {
		centroid = vecmath.Add(centroid, p.Vertices[i])
	}
	p.Centroid = vecmath.Scale(centroid, 1/T(p.Count))
	return p
}

// proxyOfCircle builds a 1-vertex DistanceProxy for a circle.
func proxyOfCircle[T constraints.Float](c Circle[T]) DistanceProxy[T] {
	var proxy DistanceProxy[T]
	proxy.Vertices[0] = c.Center
	proxy.Count = 1
	proxy.Radius = c.Radius
	return proxy
}

// proxyOfCapsule builds a 2-vertex DistanceProxy for a capsule.
func proxyOfCapsule[T constraints.Float](c Capsule[T]) DistanceProxy[T] {
	var proxy DistanceProxy[T]
	proxy.Vertices[0] = c.Point1
	proxy.Vertices[1] = c.Point2
	proxy.Count = 2
	proxy.Radius = c.Radius
	return proxy
}

// proxyOfSegment builds a 2-vertex, zero-radius DistanceProxy for a
// segment.
func proxyOfSegment[T constraints.Float](s Segment[T]) DistanceProxy[T] {
	var proxy DistanceProxy[T]
	proxy.Vertices[0] = s.Point1
	proxy.Vertices[1] = s.Point2
	proxy.Count = 2
	return proxy
}

// proxyOfPolygon builds a DistanceProxy matching p's vertices.
func proxyOfPolygon[T constraints.Float](p Polygon[T]) DistanceProxy[T] {
	var proxy DistanceProxy[T]
	for i := 0; i < p.Count; i++ {
		proxy.Vertices[i] = p.Vertices[i]
	}
	proxy.Count = p.Count
	proxy.Radius = p.Radius
	return proxy
}

// proxyOfPoint builds a degenerate 1-vertex, zero-radius DistanceProxy
// for a single query point, the trick PointInPolygon and friends use to
// reduce point-containment to a ShapeDistance call.
func proxyOfPoint[T constraints.Float](p vecmath.Vec2[T]) DistanceProxy[T] {
	var proxy DistanceProxy[T]
	proxy.Vertices[0] = p
	proxy.Count = 1
	return proxy
}

// PointInCircle reports whether the world-space point lies within
// circle c, placed under transform xf.
func PointInCircle[T constraints.Float](xf vecmath.Xf[T], c Circle[T], point vecmath.Vec2[T]) bool {
	center := vecmath.TransformPoint(xf, c.Center)
	return vecmath.DistanceSquared(point, center) <= c.Radius*c.Radius
}

// PointInCapsule reports whether the world-space point lies within
// capsule c, placed under transform xf.
func PointInCapsule[T constraints.Float](xf vecmath.Xf[T], c Capsule[T], point vecmath.Vec2[T]) bool {
	proxyA := proxyOfCapsule(c)
	proxyB := proxyOfPoint(point)
	var cache DistanceCache
	input := DistanceInput[T]{
		ProxyA: proxyA, ProxyB: proxyB,
		TransformA: xf, TransformB: vecmath.IdentityXf[T](),
		UseRadii: false,
	}
	output := ShapeDistance(&cache, &input)
	return output.Distance <= c.Radius
}

// PointInPolygon reports whether the world-space point lies within
// polygon p, placed under transform xf. Reduces to a ShapeDistance call
// against a degenerate 1-vertex proxy for point, exactly as the
// original does, rather than a direct half-plane test, so it handles
// rounded polygons for free.
func PointInPolygon[T constraints.Float](xf vecmath.Xf[T], p Polygon[T], point vecmath.Vec2[T]) bool {
	proxyA := proxyOfPolygon(p)
	proxyB := proxyOfPoint(point)
	var cache DistanceCache
	input := DistanceInput[T]{
		ProxyA: proxyA, ProxyB: proxyB,
		TransformA: xf, TransformB: vecmath.IdentityXf[T](),
		UseRadii: false,
	}
	output := ShapeDistance(&cache, &input)
	return output.Distance <= p.Radius
}

// ComputeCircleAABB returns the world-space AABB of circle c under xf.
func ComputeCircleAABB[T constraints.Float](xf vecmath.Xf[T], c Circle[T]) aabb.Box[T] {
	center := vecmath.TransformPoint(xf, c.Center)
	r := vecmath.Vec2[T]{X: c.Radius, Y: c.Radius}
	return aabb.New(vecmath.Sub(center, r), vecmath.Add(center, r))
}

// ComputeCapsuleAABB returns the world-space AABB of capsule c under xf.
func ComputeCapsuleAABB[T constraints.Float](xf vecmath.Xf[T], c Capsule[T]) aabb.Box[T] {
	p1 := vecmath.TransformPoint(xf, c.Point1)
	p2 := vecmath.TransformPoint(xf, c.Point2)
	lower := vecmath.Min(p1, p2)
	upper := vecmath.Max(p1, p2)
	r := vecmath.Vec2[T]{X: c.Radius, Y: c.Radius}
	return aabb.New(vecmath.Sub(lower, r), vecmath.Add(upper, r))
}

// ComputePolygonAABB returns the world-space AABB of polygon p under xf.
func ComputePolygonAABB[T constraints.Float](xf vecmath.Xf[T], p Polygon[T]) aabb.Box[T] {
	box := aabb.Empty[T]()
	for i := 0; i < p.Count; i++ {
		box.Extend(vecmath.TransformPoint(xf, p.Vertices[i]))
	}
	r := vecmath.Vec2[T]{X: p.Radius, Y: p.Radius}
	box.Lower = vecmath.Sub(box.Lower, r)
	box.Upper = vecmath.Add(box.Upper, r)
	return box
}

// ComputeSegmentAABB returns the world-space AABB of segment s under xf.
func ComputeSegmentAABB[T constraints.Float](xf vecmath.Xf[T], s Segment[T]) aabb.Box[T] {
	p1 := vecmath.TransformPoint(xf, s.Point1)
	p2 := vecmath.TransformPoint(xf, s.Point2)
	return aabb.New(vecmath.Min(p1, p2), vecmath.Max(p1, p2))
}
