package vecmath_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geo2d/vecmath"
)

func TestTransformPointRoundTrip(t *testing.T) {
	xf := vecmath.Xf[float64]{
		P: vecmath.Vec2[float64]{X: 5, Y: -2},
		Q: vecmath.NewRot[float64](0.7),
	}
	p := vecmath.Vec2[float64]{X: 1, Y: 1}

	world := vecmath.TransformPoint(xf, p)
	local := vecmath.InvTransformPoint(xf, world)

	assert.InDelta(t, p.X, local.X, 1e-9)
	assert.InDelta(t, p.Y, local.Y, 1e-9)
}

func TestIdentityXfIsNoOp(t *testing.T) {
	xf := vecmath.IdentityXf[float64]()
	p := vecmath.Vec2[float64]{X: 3, Y: 4}

	assert.Equal(t, p, vecmath.TransformPoint(xf, p))
}

func TestMulXfComposesTransforms(t *testing.T) {
	a := vecmath.Xf[float64]{P: vecmath.Vec2[float64]{X: 1, Y: 0}, Q: vecmath.NewRot[float64](math.Pi / 2)}
	b := vecmath.Xf[float64]{P: vecmath.Vec2[float64]{X: 0, Y: 1}, Q: vecmath.Identity[float64]()}

	combined := vecmath.MulXf(a, b)
	p := vecmath.Vec2[float64]{X: 0, Y: 0}

	viaCombined := vecmath.TransformPoint(combined, p)
	viaSequential := vecmath.TransformPoint(a, vecmath.TransformPoint(b, p))

	assert.InDelta(t, viaSequential.X, viaCombined.X, 1e-9)
	assert.InDelta(t, viaSequential.Y, viaCombined.Y, 1e-9)
}

func TestSweepGetTransformEndpoints(t *testing.T) {
	sweep := vecmath.Sweep[float64]{
		LocalCenter: vecmath.Vec2[float64]{},
		C1:          vecmath.Vec2[float64]{X: 0, Y: 0},
		C2:          vecmath.Vec2[float64]{X: 10, Y: 0},
		A1:          0,
		A2:          math.Pi,
	}

	xf0 := sweep.GetTransform(0)
	assert.InDelta(t, 0, xf0.P.X, 1e-9)
	assert.InDelta(t, 0, float64(xf0.Q.Angle()), 1e-9)

	xf1 := sweep.GetTransform(1)
	assert.InDelta(t, 10, xf1.P.X, 1e-9)
	assert.InDelta(t, math.Pi, math.Abs(float64(xf1.Q.Angle())), 1e-9)
}

func TestSweepAdvance(t *testing.T) {
	sweep := vecmath.Sweep[float64]{
		C1: vecmath.Vec2[float64]{X: 0, Y: 0},
		C2: vecmath.Vec2[float64]{X: 4, Y: 0},
		A1: 0,
		A2: 2,
	}
	sweep.Advance(0.5)

	assert.InDelta(t, 2, sweep.C1.X, 1e-9)
	assert.InDelta(t, 1, sweep.A1, 1e-9)
}
