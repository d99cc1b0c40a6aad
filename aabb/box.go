package aabb

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/vecmath"
)

// Region names a quadrant produced by Quad2D.
type Region int

const (
	NW Region = iota
	NE
	SW
	SE
)

// Box is a 2D axis-aligned bounding box.
type Box[T constraints.Float] struct {
	Lower, Upper vecmath.Vec2[T]
}

// New builds a box from explicit bounds. It does not validate lower<=upper;
// use Valid to check an box built this way.
func New[T constraints.Float](lower, upper vecmath.Vec2[T]) Box[T] {
	return Box[T]{Lower: lower, Upper: upper}
}

// Empty returns the identity element for Union: lower=+Inf, upper=-Inf on
// both axes, so Union(Empty(), b) == b for any b.
func Empty[T constraints.Float]() Box[T] {
	var inf T = T(math.Inf(1))
	return Box[T]{
		Lower: vecmath.Vec2[T]{X: inf, Y: inf},
		Upper: vecmath.Vec2[T]{X: -inf, Y: -inf},
	}
}

// Valid reports whether lower<=upper holds on both axes.
func (b Box[T]) Valid() bool {
	return b.Lower.X <= b.Upper.X && b.Lower.Y <= b.Upper.Y
}

// Union returns the smallest box containing both a and b: componentwise
// min of lowers, max of uppers. Commutative, associative, idempotent.
func Union[T constraints.Float](a, b Box[T]) Box[T] {
	return Box[T]{
		Lower: vecmath.Min(a.Lower, b.Lower),
		Upper: vecmath.Max(a.Upper, b.Upper),
	}
}

// Combine is an alias for Union, matching the original "combine" naming.
func Combine[T constraints.Float](a, b Box[T]) Box[T] { return Union(a, b) }

// Contains reports whether self fully contains other (boundary touching
// counts as containment).
func (b Box[T]) Contains(other Box[T]) bool {
	return b.Lower.X <= other.Lower.X && b.Lower.Y <= other.Lower.Y &&
		b.Upper.X >= other.Upper.X && b.Upper.Y >= other.Upper.Y
}

// ContainsPoint reports whether p lies within b, boundary inclusive.
//
// The original TBox<T,D> template computed this with inverted
// inequalities that could never succeed for a non-empty box; this is the
// corrected, obvious containment test (lower<=p<=upper on every axis).
func (b Box[T]) ContainsPoint(p vecmath.Vec2[T]) bool {
	return b.Lower.X <= p.X && p.X <= b.Upper.X &&
		b.Lower.Y <= p.Y && p.Y <= b.Upper.Y
}

// Overlaps reports whether b and other share any point.
func (b Box[T]) Overlaps(other Box[T]) bool {
	if b.Lower.X > other.Upper.X || other.Lower.X > b.Upper.X {
		return false
	}
	if b.Lower.Y > other.Upper.Y || other.Lower.Y > b.Upper.Y {
		return false
	}
	return true
}

// OverlapsCircle reports whether the circle at center with the given
// radius intersects b, by clamping center onto b and comparing the
// squared distance to radius^2 (no square root needed).
func (b Box[T]) OverlapsCircle(center vecmath.Vec2[T], radius T) bool {
	clamped := vecmath.Min(vecmath.Max(center, b.Lower), b.Upper)
	d := vecmath.DistanceSquared(clamped, center)
	return d < radius*radius
}

// Extend grows b in place to cover p.
func (b *Box[T]) Extend(p vecmath.Vec2[T]) {
	if p.X < b.Lower.X {
		b.Lower.X = p.X
	}
	if p.X > b.Upper.X {
		b.Upper.X = p.X
	}
	if p.Y < b.Lower.Y {
		b.Lower.Y = p.Y
	}
	if p.Y > b.Upper.Y {
		b.Upper.Y = p.Y
	}
}

// ExtendBox grows b in place to cover other.
func (b *Box[T]) ExtendBox(other Box[T]) {
	if other.Lower.X < b.Lower.X {
		b.Lower.X = other.Lower.X
	}
	if other.Lower.Y < b.Lower.Y {
		b.Lower.Y = other.Lower.Y
	}
	if other.Upper.X > b.Upper.X {
		b.Upper.X = other.Upper.X
	}
	if other.Upper.Y > b.Upper.Y {
		b.Upper.Y = other.Upper.Y
	}
}

// Translate shifts b in place by t.
func (b *Box[T]) Translate(t vecmath.Vec2[T]) {
	b.Lower = vecmath.Add(b.Lower, t)
	b.Upper = vecmath.Add(b.Upper, t)
}

// Perimeter returns 2*(width+height).
func (b Box[T]) Perimeter() T {
	return 2 * ((b.Upper.X - b.Lower.X) + (b.Upper.Y - b.Lower.Y))
}

// Center returns the box's midpoint.
func (b Box[T]) Center() vecmath.Vec2[T] {
	return vecmath.Scale(vecmath.Add(b.Lower, b.Upper), T(0.5))
}

// Extents returns the half-dimensions (center to edge) on each axis.
func (b Box[T]) Extents() vecmath.Vec2[T] {
	return vecmath.Scale(vecmath.Sub(b.Upper, b.Lower), T(0.5))
}

// Dimensions returns the full width/height.
func (b Box[T]) Dimensions() vecmath.Vec2[T] {
	return vecmath.Sub(b.Upper, b.Lower)
}

// DistanceSquared returns the squared distance from p to the nearest
// point on b (0 if p is inside b).
func (b Box[T]) DistanceSquared(p vecmath.Vec2[T]) T {
	dx := maxT(maxT(b.Lower.X-p.X, 0), p.X-b.Upper.X)
	dy := maxT(maxT(b.Lower.Y-p.Y, 0), p.Y-b.Upper.Y)
	return dx*dx + dy*dy
}

// Distance returns the distance from p to the nearest point on b.
func (b Box[T]) Distance(p vecmath.Vec2[T]) T {
	return T(math.Sqrt(float64(b.DistanceSquared(p))))
}

// IntersectsRay reports whether the ray from origin in direction dir
// intersects b, via the slab method. An axis-parallel ray (dir[i]==0)
// requires origin[i] to already lie within [lower[i],upper[i]]. Only the
// forward half-line (origin + t*dir, t >= 0) counts.
func (b Box[T]) IntersectsRay(origin, dir vecmath.Vec2[T]) bool {
	tMin := T(math.Inf(-1))
	tMax := T(math.Inf(1))

	axes := [2]struct{ o, d, lo, hi T }{
		{origin.X, dir.X, b.Lower.X, b.Upper.X},
		{origin.Y, dir.Y, b.Lower.Y, b.Upper.Y},
	}
	for _, ax := range axes {
		if ax.d == 0 {
			if ax.o < ax.lo || ax.o > ax.hi {
				return false
			}
			continue
		}
		invDir := 1 / ax.d
		dMin := (ax.lo - ax.o) * invDir
		dMax := (ax.hi - ax.o) * invDir
		if dMin > dMax {
			dMin, dMax = dMax, dMin
		}
		if tMin > dMax || dMin > tMax {
			return false
		}
		if dMin > tMin {
			tMin = dMin
		}
		if dMax < tMax {
			tMax = dMax
		}
	}
	return tMax >= 0
}

// Quad2D splits b into the requested quadrant.
func (b Box[T]) Quad2D(region Region) Box[T] {
	halfW := (b.Upper.X - b.Lower.X) / 2
	halfH := (b.Upper.Y - b.Lower.Y) / 2

	switch region {
	case NW:
		return Box[T]{
			Lower: vecmath.Vec2[T]{X: b.Lower.X, Y: b.Lower.Y + halfH},
			Upper: vecmath.Vec2[T]{X: b.Lower.X + halfW, Y: b.Upper.Y},
		}
	case NE:
		return Box[T]{
			Lower: vecmath.Vec2[T]{X: b.Lower.X + halfW, Y: b.Lower.Y + halfH},
			Upper: b.Upper,
		}
	case SW:
		return Box[T]{
			Lower: b.Lower,
			Upper: vecmath.Vec2[T]{X: b.Lower.X + halfW, Y: b.Lower.Y + halfH},
		}
	case SE:
		return Box[T]{
			Lower: vecmath.Vec2[T]{X: b.Lower.X + halfW, Y: b.Lower.Y},
			Upper: vecmath.Vec2[T]{X: b.Upper.X, Y: b.Lower.Y + halfH},
		}
	default:
		panic("aabb: invalid quadrant region")
	}
}

// NormalVolume returns the D-product of side lengths (here: area).
func (b Box[T]) NormalVolume() T {
	dim := b.Dimensions()
	return dim.X * dim.Y
}

// SphericalVolume returns the volume of the bounding circle of b: slower
// than NormalVolume but gives better merge decisions in some tree split
// heuristics.
func (b Box[T]) SphericalVolume() T {
	ext := b.Extents()
	sumSq := ext.X*ext.X + ext.Y*ext.Y
	radius := T(math.Sqrt(float64(sumSq)))
	return radius * radius * unitBallVolume[T](2)
}

// GetRotated returns the AABB of b rotated by rad radians about its own
// center: a conservative re-bound, not an exact rotated rectangle.
func (b Box[T]) GetRotated(rad T) Box[T] {
	c := T(math.Abs(math.Cos(float64(rad))))
	s := T(math.Abs(math.Sin(float64(rad))))
	ext := b.Extents()
	newExt := vecmath.Vec2[T]{
		X: ext.Y*s + ext.X*c,
		Y: ext.X*s + ext.Y*c,
	}
	center := b.Center()
	return Box[T]{
		Lower: vecmath.Sub(center, newExt),
		Upper: vecmath.Add(center, newExt),
	}
}

func maxT[T constraints.Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// unitBallVolumes holds the precomputed volume of the unit ball in
// dimensions 0 through 20, used by SphericalVolume/BoxN's spherical
// volume so the common 2D/3D cases avoid a Pow call.
var unitBallVolumes = [21]float64{
	0.000000, 2.000000, 3.141593,
	4.188790, 4.934802, 5.263789,
	5.167713, 4.724766, 4.058712,
	3.298509, 2.550164, 1.884104,
	1.335263, 0.910629, 0.599265,
	0.381443, 0.235331, 0.140981,
	0.082146, 0.046622, 0.025807,
}

func unitBallVolume[T constraints.Float](d int) T {
	if d < 0 || d >= len(unitBallVolumes) {
		panic("aabb: unit ball volume only tabulated for dimensions 0..20")
	}
	return T(unitBallVolumes[d])
}
