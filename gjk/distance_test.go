package gjk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geo2d/gjk"
	"github.com/katalvlaran/geo2d/vecmath"
)

func v(x, y float64) vecmath.Vec2[float64] { return vecmath.Vec2[float64]{X: x, Y: y} }

func unitSquareProxy(t *testing.T, radius float64) gjk.DistanceProxy[float64] {
	t.Helper()
	proxy, err := gjk.MakeProxy([]vecmath.Vec2[float64]{
		v(-1, -1), v(1, -1), v(1, 1), v(-1, 1),
	}, radius)
	require.NoError(t, err)
	return proxy
}

// Two unit squares (half-width 1) centered 5 units apart on the x axis
// leave a 3-unit gap between their nearest faces.
func TestShapeDistanceBetweenSeparatedSquares(t *testing.T) {
	proxyA := unitSquareProxy(t, 0)
	proxyB := unitSquareProxy(t, 0)

	var cache gjk.DistanceCache
	input := gjk.DistanceInput[float64]{
		ProxyA:     proxyA,
		ProxyB:     proxyB,
		TransformA: vecmath.IdentityXf[float64](),
		TransformB: vecmath.Xf[float64]{P: v(5, 0), Q: vecmath.Identity[float64]()},
		UseRadii:   false,
	}
	output := gjk.ShapeDistance(&cache, &input)
	assert.InDelta(t, 3, output.Distance, 1e-6)
}

// With a 0.5 rounding radius on each square, the gap between the rounded
// hulls shrinks by the sum of the radii.
func TestShapeDistanceWithRadiiShrinksGap(t *testing.T) {
	proxyA := unitSquareProxy(t, 0.5)
	proxyB := unitSquareProxy(t, 0.5)

	var cache gjk.DistanceCache
	input := gjk.DistanceInput[float64]{
		ProxyA:     proxyA,
		ProxyB:     proxyB,
		TransformA: vecmath.IdentityXf[float64](),
		TransformB: vecmath.Xf[float64]{P: v(5, 0), Q: vecmath.Identity[float64]()},
		UseRadii:   true,
	}
	output := gjk.ShapeDistance(&cache, &input)
	assert.InDelta(t, 2, output.Distance, 1e-6)
}

func TestShapeDistanceOverlappingShapesIsZero(t *testing.T) {
	proxyA := unitSquareProxy(t, 0)
	proxyB := unitSquareProxy(t, 0)

	var cache gjk.DistanceCache
	input := gjk.DistanceInput[float64]{
		ProxyA:     proxyA,
		ProxyB:     proxyB,
		TransformA: vecmath.IdentityXf[float64](),
		TransformB: vecmath.IdentityXf[float64](),
		UseRadii:   false,
	}
	output := gjk.ShapeDistance(&cache, &input)
	assert.InDelta(t, 0, output.Distance, 1e-6)
}

func TestMakeProxyRejectsTooManyVertices(t *testing.T) {
	verts := make([]vecmath.Vec2[float64], gjk.MaxPolyVerts+1)
	_, err := gjk.MakeProxy(verts, 0)
	assert.ErrorIs(t, err, gjk.ErrTooManyPoints)
}
