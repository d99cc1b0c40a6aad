package aabb_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geo2d/aabb"
)

func TestNewNDimensionMismatch(t *testing.T) {
	_, err := aabb.NewN([]float64{0, 0}, []float64{1, 1, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, aabb.ErrDimensionMismatch))
}

func TestUnionN(t *testing.T) {
	a, err := aabb.NewN([]float64{0, 0, 0}, []float64{1, 1, 1})
	require.NoError(t, err)
	b, err := aabb.NewN([]float64{-1, 0, 2}, []float64{0.5, 2, 3})
	require.NoError(t, err)

	u, err := aabb.UnionN(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 0, 0}, u.Lower)
	assert.Equal(t, []float64{1, 2, 3}, u.Upper)
}

func TestEmptyNIsUnionIdentity(t *testing.T) {
	e := aabb.EmptyN[float64](2)
	b, err := aabb.NewN([]float64{1, 1}, []float64{5, 5})
	require.NoError(t, err)

	u, err := aabb.UnionN(e, b)
	require.NoError(t, err)
	assert.Equal(t, b.Lower, u.Lower)
	assert.Equal(t, b.Upper, u.Upper)
}

func TestBoxNContainsAndOverlaps(t *testing.T) {
	outer, _ := aabb.NewN([]float64{0, 0, 0}, []float64{10, 10, 10})
	inner, _ := aabb.NewN([]float64{1, 1, 1}, []float64{9, 9, 9})
	disjoint, _ := aabb.NewN([]float64{20, 20, 20}, []float64{21, 21, 21})

	assert.True(t, outer.Contains(inner))
	assert.False(t, inner.Contains(outer))
	assert.True(t, outer.Overlaps(inner))
	assert.False(t, outer.Overlaps(disjoint))
}

func TestBoxNVolumes(t *testing.T) {
	b, _ := aabb.NewN([]float64{0, 0, 0}, []float64{2, 2, 2})
	assert.Equal(t, 8.0, b.NormalVolume())
	assert.Greater(t, b.SphericalVolume(), 0.0)
}
