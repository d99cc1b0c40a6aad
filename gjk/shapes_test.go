package gjk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geo2d/gjk"
	"github.com/katalvlaran/geo2d/vecmath"
)

func TestPointInCircle(t *testing.T) {
	c := gjk.Circle[float64]{Center: v(0, 0), Radius: 2}
	xf := vecmath.IdentityXf[float64]()
	assert.True(t, gjk.PointInCircle(xf, c, v(1, 1)))
	assert.False(t, gjk.PointInCircle(xf, c, v(5, 5)))
}

func TestPointInCapsule(t *testing.T) {
	c := gjk.MakeCapsule(v(-2, 0), v(2, 0), 0.5)
	xf := vecmath.IdentityXf[float64]()
	assert.True(t, gjk.PointInCapsule(xf, c, v(0, 0.3)))
	assert.False(t, gjk.PointInCapsule(xf, c, v(0, 1)))
}

func TestPointInPolygonBox(t *testing.T) {
	p := gjk.MakeBox(1, 1)
	xf := vecmath.IdentityXf[float64]()
	assert.True(t, gjk.PointInPolygon(xf, p, v(0, 0)))
	assert.False(t, gjk.PointInPolygon(xf, p, v(5, 5)))
}

func TestMakePolygonFromVertices(t *testing.T) {
	p, err := gjk.MakePolygon([]vecmath.Vec2[float64]{v(0, 0), v(4, 0), v(4, 4), v(0, 4)})
	require.NoError(t, err)
	assert.Equal(t, 4, p.Count)
}

func TestComputeCircleAABB(t *testing.T) {
	c := gjk.Circle[float64]{Center: v(1, 1), Radius: 2}
	box := gjk.ComputeCircleAABB(vecmath.IdentityXf[float64](), c)
	assert.Equal(t, v(-1, -1), box.Lower)
	assert.Equal(t, v(3, 3), box.Upper)
}

func TestComputePolygonAABB(t *testing.T) {
	p := gjk.MakeBox(1, 1)
	box := gjk.ComputePolygonAABB(vecmath.IdentityXf[float64](), p)
	assert.Equal(t, v(-1, -1), box.Lower)
	assert.Equal(t, v(1, 1), box.Upper)
}
