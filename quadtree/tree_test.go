package quadtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/quadtree"
	"github.com/katalvlaran/geo2d/vecmath"
)

func v(x, y float64) vecmath.Vec2[float64] { return vecmath.Vec2[float64]{X: x, Y: y} }
func box(lx, ly, ux, uy float64) aabb.Box[float64] { return aabb.New(v(lx, ly), v(ux, uy)) }

func outerBox() aabb.Box[float64] { return box(0, 0, 256, 256) }

func TestNewRejectsBadMaxChildItems(t *testing.T) {
	_, err := quadtree.New[float64, string](outerBox(), 0)
	assert.ErrorIs(t, err, quadtree.ErrBadMaxChildItems)
}

func TestInsertRejectsOutOfBounds(t *testing.T) {
	tree, err := quadtree.New[float64, string](outerBox(), 2)
	require.NoError(t, err)

	err = tree.Insert(box(-1, -1, 0, 0), "oops")
	assert.ErrorIs(t, err, quadtree.ErrOutOfBounds)
}

func TestInsertSubdividesOnOverflow(t *testing.T) {
	tree, err := quadtree.New[float64, string](outerBox(), 2)
	require.NoError(t, err)

	require.NoError(t, tree.Insert(box(0, 0, 1, 1), "a"))
	require.NoError(t, tree.Insert(box(2, 2, 3, 3), "b"))
	assert.Equal(t, 1, tree.Levels())

	require.NoError(t, tree.Insert(box(4, 4, 5, 5), "c"))
	assert.Greater(t, tree.Levels(), 1)
	assert.Equal(t, 3, tree.Count())
}

func TestQueryFindsOverlappingObjects(t *testing.T) {
	tree, err := quadtree.New[float64, string](outerBox(), 4)
	require.NoError(t, err)

	require.NoError(t, tree.Insert(box(0, 0, 1, 1), "near"))
	require.NoError(t, tree.Insert(box(200, 200, 201, 201), "far"))

	var hits []string
	tree.Query(quadtree.Overlapping(box(-1, -1, 10, 10)), func(value string) bool {
		hits = append(hits, value)
		return true
	})
	assert.Equal(t, []string{"near"}, hits)
}

func TestQueryAcrossManyObjectsFindsAll(t *testing.T) {
	tree, err := quadtree.New[float64, int](outerBox(), 2)
	require.NoError(t, err)

	for i := 0; i < 40; i++ {
		x := float64(i % 20)
		y := float64(i / 20)
		require.NoError(t, tree.Insert(box(x, y, x+0.5, y+0.5), i))
	}

	var hits []int
	tree.Query(quadtree.Overlapping(box(-1000, -1000, 1000, 1000)), func(value int) bool {
		hits = append(hits, value)
		return true
	})
	assert.Len(t, hits, 40)
}

func TestQueryStopsEarlyOnFalseReturn(t *testing.T) {
	tree, err := quadtree.New[float64, int](outerBox(), 2)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		x := float64(i)
		require.NoError(t, tree.Insert(box(x, x, x+0.5, x+0.5), i))
	}

	count := 0
	tree.Query(quadtree.Overlapping(box(-1000, -1000, 1000, 1000)), func(value int) bool {
		count++
		return count < 3
	})
	assert.Equal(t, 3, count)
}

func sumInts(values []int) int {
	total := 0
	for _, val := range values {
		total += val
	}
	return total
}

// A low containmentFactor makes the "found exceeds factor*count" collapse
// condition easy to satisfy, so the two leaf objects (held directly on
// the unsubdivided root) fold into one aggregate unit.
func TestHierarchicalQueryLowFactorCollapsesToAggregate(t *testing.T) {
	tree, err := quadtree.New[float64, int](outerBox(), 4)
	require.NoError(t, err)
	require.NoError(t, tree.Insert(box(0, 0, 1, 1), 1))
	require.NoError(t, tree.Insert(box(200, 200, 201, 201), 1))
	tree.SetContainmentFactor(0)

	var units, totalCount int
	tree.HierarchicalQuery(quadtree.Overlapping(outerBox()), sumInts, func(value int, count int) bool {
		units++
		totalCount += count
		return true
	})
	assert.Equal(t, 1, units)
	assert.Equal(t, 2, totalCount)
}

// A containmentFactor above 1 can never be exceeded by a found-count no
// larger than the node's own total, so the two leaf objects stay as
// separate units.
func TestHierarchicalQueryHighFactorEmitsIndividualObjects(t *testing.T) {
	tree, err := quadtree.New[float64, int](outerBox(), 4)
	require.NoError(t, err)
	require.NoError(t, tree.Insert(box(0, 0, 1, 1), 1))
	require.NoError(t, tree.Insert(box(200, 200, 201, 201), 1))
	tree.SetContainmentFactor(1.5)

	var units, totalCount int
	tree.HierarchicalQuery(quadtree.Overlapping(outerBox()), sumInts, func(value int, count int) bool {
		units++
		totalCount += count
		return true
	})
	assert.Equal(t, 2, units)
	assert.Equal(t, 2, totalCount)
}

func TestTranslateShiftsStoredBoxes(t *testing.T) {
	tree, err := quadtree.New[float64, string](outerBox(), 4)
	require.NoError(t, err)
	require.NoError(t, tree.Insert(box(0, 0, 1, 1), "a"))

	tree.Translate(v(100, 100))

	var hits []string
	tree.Query(quadtree.Overlapping(box(99, 99, 102, 102)), func(value string) bool {
		hits = append(hits, value)
		return true
	})
	assert.Equal(t, []string{"a"}, hits)

	hits = nil
	tree.Query(quadtree.Overlapping(box(0, 0, 2, 2)), func(value string) bool {
		hits = append(hits, value)
		return true
	})
	assert.Empty(t, hits)
}
