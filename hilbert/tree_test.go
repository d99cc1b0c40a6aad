package hilbert_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/hilbert"
	"github.com/katalvlaran/geo2d/vecmath"
)

func v(x, y float64) vecmath.Vec2[float64] { return vecmath.Vec2[float64]{X: x, Y: y} }

// TestSearchSixteenBoxes reproduces the canonical packed Hilbert
// R-tree example: 16 boxes inserted in a fixed order, finished, and
// queried against (0,0)-(8,31).
func TestSearchSixteenBoxes(t *testing.T) {
	type pair struct{ lx, ly, ux, uy float64 }
	boxes := []pair{
		{5, 2, 16, 7},
		{1, 1, 2, 2},
		{26, 24, 44, 28},
		{22, 21, 23, 24},
		{16, 0, 32, 16},
		{0, 0, 8, 8},
		{4, 4, 6, 8},
		{2, 1, 2, 3},
		{4, 2, 8, 4},
		{3, 3, 12, 16},
		{0, 0, 64, 32},
		{3, 2, 32, 35},
		{32, 32, 64, 128},
		{128, 0, 256, 64},
		{120, 64, 250, 128},
		{123, 84, 230, 122},
	}

	tree, err := hilbert.New[float64](len(boxes))
	require.NoError(t, err)
	for _, b := range boxes {
		_, err := tree.Add(v(b.lx, b.ly), v(b.ux, b.uy))
		require.NoError(t, err)
	}
	require.NoError(t, tree.Finish())

	got, err := tree.Search(aabb.New(v(0, 0), v(8, 31)))
	require.NoError(t, err)

	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	assert.Equal(t, []uint32{0, 1, 5, 6, 7, 8, 9, 10, 11}, got)
}

func TestAddBeyondDeclaredCountErrors(t *testing.T) {
	tree, err := hilbert.New[float64](1)
	require.NoError(t, err)
	_, err = tree.Add(v(0, 0), v(1, 1))
	require.NoError(t, err)

	_, err = tree.Add(v(0, 0), v(1, 1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, hilbert.ErrTooManyItems))
}

func TestFinishBeforeAllItemsErrors(t *testing.T) {
	tree, err := hilbert.New[float64](2)
	require.NoError(t, err)
	_, err = tree.Add(v(0, 0), v(1, 1))
	require.NoError(t, err)

	err = tree.Finish()
	require.Error(t, err)
	assert.True(t, errors.Is(err, hilbert.ErrIncompleteInsert))
}

func TestSearchBeforeFinishErrors(t *testing.T) {
	tree, err := hilbert.New[float64](1)
	require.NoError(t, err)
	_, err = tree.Add(v(0, 0), v(1, 1))
	require.NoError(t, err)

	_, err = tree.Search(aabb.New(v(0, 0), v(1, 1)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, hilbert.ErrNotFinished))
}

func TestSingleNodeTree(t *testing.T) {
	tree, err := hilbert.New[float64](3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err := tree.Add(v(float64(i), float64(i)), v(float64(i)+1, float64(i)+1))
		require.NoError(t, err)
	}
	require.NoError(t, tree.Finish())

	got, err := tree.Search(aabb.New(v(-10, -10), v(10, 10)))
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint32{0, 1, 2}, got)
}

func TestNeighborsNearestFirst(t *testing.T) {
	tree, err := hilbert.New[float64](4)
	require.NoError(t, err)
	points := []vecmath.Vec2[float64]{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 1, Y: 1}, {X: 100, Y: 100},
	}
	for _, p := range points {
		_, err := tree.Add(p, p)
		require.NoError(t, err)
	}
	require.NoError(t, tree.Finish())

	got, err := tree.Neighbors(v(0, 0), 1000, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint32(0), got[0])
	assert.Equal(t, uint32(2), got[1])
}

func TestNeighborsRespectsMaxDist(t *testing.T) {
	tree, err := hilbert.New[float64](2)
	require.NoError(t, err)
	_, err = tree.Add(v(0, 0), v(0, 0))
	require.NoError(t, err)
	_, err = tree.Add(v(100, 100), v(100, 100))
	require.NoError(t, err)
	require.NoError(t, tree.Finish())

	got, err := tree.Neighbors(v(0, 0), 5, 10)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0}, got)
}
