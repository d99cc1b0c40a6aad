package bvh_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/bvh"
	"github.com/katalvlaran/geo2d/vecmath"
)

func v(x, y float64) vecmath.Vec2[float64] { return vecmath.Vec2[float64]{X: x, Y: y} }
func box(lx, ly, ux, uy float64) aabb.Box[float64] { return aabb.New(v(lx, ly), v(ux, uy)) }

// TestMoveSmallDisplacementStaysWithinFatAABB reproduces the canonical
// scenario: a proxy inserted with extension 0.1, moved a small amount
// that a 5x-fattened slack box still swallows, must not trigger
// reinsertion; moved far enough that it escapes that slack, it must.
func TestMoveSmallDisplacementStaysWithinFatAABB(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)

	proxy := tree.Add(box(0, 0, 1, 1), 1, "a")
	assert.Equal(t, 1, tree.ProxyCount())

	reinserted, err := tree.Move(proxy, box(0.05, 0.05, 1.05, 1.05))
	require.NoError(t, err)
	assert.False(t, reinserted)
	assert.Equal(t, 1, tree.ProxyCount())

	reinserted, err = tree.Move(proxy, box(2, 2, 3, 3))
	require.NoError(t, err)
	assert.True(t, reinserted)
	assert.Equal(t, 1, tree.ProxyCount())
}

func TestAddRemoveProxyCount(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)

	p1 := tree.Add(box(0, 0, 1, 1), 1, "a")
	p2 := tree.Add(box(5, 5, 6, 6), 1, "b")
	p3 := tree.Add(box(10, 10, 11, 11), 1, "c")
	assert.Equal(t, 3, tree.ProxyCount())

	require.NoError(t, tree.Remove(p2))
	assert.Equal(t, 2, tree.ProxyCount())

	ud1, err := tree.GetUserData(p1)
	require.NoError(t, err)
	assert.Equal(t, "a", ud1)

	ud3, err := tree.GetUserData(p3)
	require.NoError(t, err)
	assert.Equal(t, "c", ud3)

	_, err = tree.GetUserData(p2)
	assert.ErrorIs(t, err, bvh.ErrUnknownProxy)
}

func TestQueryFindsOverlappingProxies(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)

	tree.Add(box(0, 0, 1, 1), 1, "a")
	tree.Add(box(5, 5, 6, 6), 1, "b")
	tree.Add(box(0.5, 0.5, 1.5, 1.5), 1, "c")

	var hits []string
	tree.Query(box(-1, -1, 2, 2), func(proxyID int32) bool {
		ud, _ := tree.GetUserData(proxyID)
		hits = append(hits, ud.(string))
		return true
	})
	assert.ElementsMatch(t, []string{"a", "c"}, hits)
}

func TestQueryFilteredRespectsCategoryMask(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)

	tree.Add(box(0, 0, 1, 1), 0b01, "a")
	tree.Add(box(0, 0, 1, 1), 0b10, "b")

	var hits []string
	tree.QueryFiltered(box(-1, -1, 2, 2), 0b01, func(proxyID int32) bool {
		ud, _ := tree.GetUserData(proxyID)
		hits = append(hits, ud.(string))
		return true
	})
	assert.Equal(t, []string{"a"}, hits)
}

func TestQueryEarlyStop(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		x := float64(i)
		tree.Add(box(x, x, x+1, x+1), 1, i)
	}

	count := 0
	tree.Query(box(-100, -100, 100, 100), func(proxyID int32) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}

func TestRayCastHitsAlignedProxy(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)

	target := tree.Add(box(5, -1, 6, 1), 1, "target")
	tree.Add(box(20, 20, 21, 21), 1, "far-away")

	var hitIDs []int32
	input := bvh.RayCastInput[float64]{Origin: v(0, 0), Translation: v(10, 0), MaxFraction: 1}
	tree.RayCast(input, ^uint32(0), func(sub bvh.RayCastInput[float64], proxyID int32) float64 {
		hitIDs = append(hitIDs, proxyID)
		return sub.MaxFraction
	})
	assert.Contains(t, hitIDs, target)
	assert.NotContains(t, hitIDs, int32(1))
}

func TestRayCastMissesPerpendicularProxy(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)
	tree.Add(box(-1, 50, 1, 51), 1, "off-axis")

	var hit bool
	input := bvh.RayCastInput[float64]{Origin: v(0, 0), Translation: v(10, 0), MaxFraction: 1}
	tree.RayCast(input, ^uint32(0), func(sub bvh.RayCastInput[float64], proxyID int32) float64 {
		hit = true
		return sub.MaxFraction
	})
	assert.False(t, hit)
}

func TestRebuildBottomUpPreservesProxiesAndQueries(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		x := float64(i) * 3
		tree.Add(box(x, x, x+1, x+1), 1, i)
	}

	tree.RebuildBottomUp()
	assert.Equal(t, 20, tree.ProxyCount())

	var hits int
	tree.Query(box(-1000, -1000, 1000, 1000), func(proxyID int32) bool {
		hits++
		return true
	})
	assert.Equal(t, 20, hits)
}

func TestRebuildTopDownSAHPreservesProxiesAndQueries(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)
	for i := 0; i < 64; i++ {
		x := float64(i%8) * 10
		y := float64(i/8) * 10
		tree.Add(box(x, y, x+1, y+1), 1, i)
	}

	tree.RebuildTopDownSAH()
	assert.Equal(t, 64, tree.ProxyCount())

	var hits int
	tree.Query(box(-1000, -1000, 1000, 1000), func(proxyID int32) bool {
		hits++
		return true
	})
	assert.Equal(t, 64, hits)
	assert.LessOrEqual(t, tree.GetMaxBalance(), tree.GetHeight())
}

func TestWasMovedClearMoved(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)
	p := tree.Add(box(0, 0, 1, 1), 1, "a")

	moved, err := tree.WasMoved(p)
	require.NoError(t, err)
	assert.True(t, moved)

	require.NoError(t, tree.ClearMoved(p))
	moved, err = tree.WasMoved(p)
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestNewRejectsNegativeExtension(t *testing.T) {
	_, err := bvh.New[float64](-1)
	assert.ErrorIs(t, err, bvh.ErrBadExtension)
}

func TestEmptyTreeQueryIsNoop(t *testing.T) {
	tree, err := bvh.New[float64](0.1)
	require.NoError(t, err)

	called := false
	tree.Query(box(-1, -1, 1, 1), func(proxyID int32) bool {
		called = true
		return true
	})
	assert.False(t, called)
	assert.Equal(t, 0, tree.GetHeight())
}
