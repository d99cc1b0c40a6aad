package aabb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/vecmath"
)

func box(lx, ly, ux, uy float64) aabb.Box[float64] {
	return aabb.New(vecmath.Vec2[float64]{X: lx, Y: ly}, vecmath.Vec2[float64]{X: ux, Y: uy})
}

func TestUnion(t *testing.T) {
	a := box(0, 0, 2, 2)
	b := box(1, 1, 3, 3)

	u := aabb.Union(a, b)
	assert.Equal(t, box(0, 0, 3, 3), u)
	// idempotent
	assert.Equal(t, u, aabb.Union(u, u))
	// commutative
	assert.Equal(t, aabb.Union(a, b), aabb.Union(b, a))
}

func TestEmptyIsUnionIdentity(t *testing.T) {
	e := aabb.Empty[float64]()
	b := box(1, 1, 5, 5)

	assert.Equal(t, b, aabb.Union(e, b))
	assert.Equal(t, b, aabb.Union(b, e))
}

func TestContains(t *testing.T) {
	outer := box(0, 0, 10, 10)
	inner := box(2, 2, 8, 8)

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	// boundary-touching counts as containment
	assert.True(t, outer.Contains(box(0, 0, 10, 10)))
}

// TestContainsPointCorrectedSemantics pins down the fixed (non-inverted)
// point-containment test: boundary points are inside.
func TestContainsPointCorrectedSemantics(t *testing.T) {
	b := box(0, 0, 10, 10)

	assert.True(t, b.ContainsPoint(vecmath.Vec2[float64]{X: 5, Y: 5}))
	assert.True(t, b.ContainsPoint(vecmath.Vec2[float64]{X: 0, Y: 0}))
	assert.True(t, b.ContainsPoint(vecmath.Vec2[float64]{X: 10, Y: 10}))
	assert.False(t, b.ContainsPoint(vecmath.Vec2[float64]{X: 10.1, Y: 5}))
	assert.False(t, b.ContainsPoint(vecmath.Vec2[float64]{X: -0.1, Y: 5}))
}

func TestOverlaps(t *testing.T) {
	a := box(0, 0, 5, 5)
	b := box(4, 4, 9, 9)
	c := box(6, 6, 9, 9)

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c))
}

func TestOverlapsCircle(t *testing.T) {
	b := box(0, 0, 10, 10)

	assert.True(t, b.OverlapsCircle(vecmath.Vec2[float64]{X: 5, Y: 5}, 1))
	assert.True(t, b.OverlapsCircle(vecmath.Vec2[float64]{X: 12, Y: 5}, 3))
	assert.False(t, b.OverlapsCircle(vecmath.Vec2[float64]{X: 20, Y: 20}, 1))
}

func TestExtend(t *testing.T) {
	b := box(0, 0, 1, 1)
	b.Extend(vecmath.Vec2[float64]{X: 5, Y: -2})

	assert.Equal(t, box(0, -2, 5, 1), b)
}

func TestExtendBox(t *testing.T) {
	a := box(0, 0, 1, 1)
	b := box(-1, 2, 3, 3)
	a.ExtendBox(b)

	assert.Equal(t, box(-1, 0, 3, 3), a)
}

func TestTranslate(t *testing.T) {
	b := box(0, 0, 1, 1)
	b.Translate(vecmath.Vec2[float64]{X: 2, Y: 3})

	assert.Equal(t, box(2, 3, 3, 4), b)
}

func TestPerimeterCenterExtents(t *testing.T) {
	b := box(0, 0, 4, 2)

	assert.Equal(t, 12.0, b.Perimeter())
	assert.Equal(t, vecmath.Vec2[float64]{X: 2, Y: 1}, b.Center())
	assert.Equal(t, vecmath.Vec2[float64]{X: 2, Y: 1}, b.Extents())
	assert.Equal(t, vecmath.Vec2[float64]{X: 4, Y: 2}, b.Dimensions())
}

func TestDistanceSquared(t *testing.T) {
	b := box(0, 0, 10, 10)

	// inside: 0
	assert.Equal(t, 0.0, b.DistanceSquared(vecmath.Vec2[float64]{X: 5, Y: 5}))
	// outside on one axis
	assert.Equal(t, 25.0, b.DistanceSquared(vecmath.Vec2[float64]{X: 15, Y: 5}))
	// outside on both axes (corner)
	assert.Equal(t, 50.0, b.DistanceSquared(vecmath.Vec2[float64]{X: 15, Y: 15}))
}

func TestIntersectsRay(t *testing.T) {
	b := box(0, 0, 10, 10)

	assert.True(t, b.IntersectsRay(
		vecmath.Vec2[float64]{X: -5, Y: 5},
		vecmath.Vec2[float64]{X: 1, Y: 0},
	))
	assert.False(t, b.IntersectsRay(
		vecmath.Vec2[float64]{X: -5, Y: 5},
		vecmath.Vec2[float64]{X: -1, Y: 0},
	))
	// axis-parallel ray starting inside on the perpendicular axis
	assert.True(t, b.IntersectsRay(
		vecmath.Vec2[float64]{X: 5, Y: 5},
		vecmath.Vec2[float64]{X: 0, Y: 1},
	))
	// axis-parallel ray starting outside the slab
	assert.False(t, b.IntersectsRay(
		vecmath.Vec2[float64]{X: 20, Y: 5},
		vecmath.Vec2[float64]{X: 0, Y: 1},
	))
}

func TestQuad2D(t *testing.T) {
	b := box(0, 0, 10, 10)

	require.Equal(t, box(0, 5, 5, 10), b.Quad2D(aabb.NW))
	require.Equal(t, box(5, 5, 10, 10), b.Quad2D(aabb.NE))
	require.Equal(t, box(0, 0, 5, 5), b.Quad2D(aabb.SW))
	require.Equal(t, box(5, 0, 10, 5), b.Quad2D(aabb.SE))
}

func TestQuad2DInvalidPanics(t *testing.T) {
	b := box(0, 0, 10, 10)
	assert.Panics(t, func() { b.Quad2D(aabb.Region(99)) })
}

func TestVolumes(t *testing.T) {
	b := box(0, 0, 4, 4)
	assert.Equal(t, 16.0, b.NormalVolume())
	assert.InDelta(t, 3.141593*8, b.SphericalVolume(), 1e-3)
}

func TestGetRotatedPreservesCenter(t *testing.T) {
	b := box(0, 0, 2, 2)
	r := b.GetRotated(0.3)

	assert.InDelta(t, b.Center().X, r.Center().X, 1e-9)
	assert.InDelta(t, b.Center().Y, r.Center().Y, 1e-9)
}
