package hilbert

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/mheap"
	"github.com/katalvlaran/geo2d/vecmath"
)

const defaultNodeSize = 16

// hilbertOrder is the bit depth used to map item centers into Hilbert
// space: 16 bits gives 65536 buckets per axis, matching the original's
// 16-bit packed Hilbert index.
const hilbertOrder = 16

// Tree is a packed, bulk-load-only Hilbert R-tree. Call New, then Add
// exactly n times, then Finish; afterward the tree is read-only.
type Tree[T constraints.Float] struct {
	nodeSize    uint32
	numItems    uint32
	levelBounds []uint32 // cumulative node-count bound per level

	boxes      []aabb.Box[T]
	indices    []uint32 // leaf: original insertion index. internal: first child's node index.
	pos        uint32
	finished   bool
	globalBox  aabb.Box[T]
	hasAnyItem bool
}

// New preallocates a tree sized for exactly n items, using the default
// node fanout of 16.
func New[T constraints.Float](n int) (*Tree[T], error) {
	return NewWithNodeSize[T](n, defaultNodeSize)
}

// NewWithNodeSize is New with an explicit node fanout in [2, 65535].
func NewWithNodeSize[T constraints.Float](n int, nodeSize uint32) (*Tree[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("hilbert: %w: got %d", ErrBadItemCount, n)
	}
	if nodeSize < 2 || nodeSize > 65535 {
		return nil, fmt.Errorf("hilbert: node size must be in [2,65535], got %d", nodeSize)
	}

	numItems := uint32(n)
	numNodes := numItems
	levelBounds := []uint32{numNodes}

	level := numItems
	for {
		level = uint32(math.Ceil(float64(level) / float64(nodeSize)))
		numNodes += level
		levelBounds = append(levelBounds, numNodes)
		if level == 1 {
			break
		}
	}

	t := &Tree[T]{
		nodeSize:    nodeSize,
		numItems:    numItems,
		levelBounds: levelBounds,
		boxes:       make([]aabb.Box[T], numNodes),
		indices:     make([]uint32, numNodes),
		globalBox:   aabb.Empty[T](),
	}
	return t, nil
}

// Add inserts one item's box. It must be called exactly n times, in any
// order; the returned index identifies this item in Search/Neighbors
// results and is stable regardless of Finish's internal reordering.
func (t *Tree[T]) Add(lower, upper vecmath.Vec2[T]) (uint32, error) {
	if t.pos >= t.numItems {
		return 0, fmt.Errorf("hilbert: %w", ErrTooManyItems)
	}
	index := t.pos
	box := aabb.New(lower, upper)
	t.boxes[index] = box
	t.indices[index] = index
	t.pos++

	t.globalBox.ExtendBox(box)
	t.hasAnyItem = true
	return index, nil
}

// Finish packs the tree: for numItems<=nodeSize it writes a single root
// over the global bounds; otherwise it sorts items by the Hilbert value
// of their box centers (using a whole-node-block quicksort cutoff) and
// then builds each parent level bottom-up in groups of nodeSize.
func (t *Tree[T]) Finish() error {
	if t.pos != t.numItems {
		return fmt.Errorf("hilbert: %w: added %d of %d", ErrIncompleteInsert, t.pos, t.numItems)
	}

	if t.numItems <= t.nodeSize {
		t.boxes[t.pos] = t.globalBox
		t.pos++
		t.finished = true
		return nil
	}

	width := t.globalBox.Upper.X - t.globalBox.Lower.X
	if !t.hasAnyItem || width == 0 {
		width = 1
	}
	height := t.globalBox.Upper.Y - t.globalBox.Lower.Y
	if !t.hasAnyItem || height == 0 {
		height = 1
	}

	hilbertMax := uint32(1)<<hilbertOrder - 1
	values := make([]uint32, t.numItems)
	for i := uint32(0); i < t.numItems; i++ {
		b := t.boxes[i]
		cx := (b.Lower.X + b.Upper.X) / 2
		cy := (b.Lower.Y + b.Upper.Y) / 2
		x := uint32(math.Floor(float64(T(hilbertMax) * (cx - t.globalBox.Lower.X) / width)))
		y := uint32(math.Floor(float64(T(hilbertMax) * (cy - t.globalBox.Lower.Y) / height)))
		values[i] = xyToIndex(hilbertOrder, x, y)
	}

	sortByHilbert(values, t.boxes, t.indices, 0, int(t.numItems)-1, int(t.nodeSize))

	// readPos walks the children just written (starting from the leaf
	// level at 0); t.pos is the separate write cursor for new parent
	// nodes, already sitting just past the leaves after the Add calls.
	// New sized boxes/indices to hold every level, so appending parents
	// here never reallocates.
	readPos := uint32(0)
	for level := 0; level < len(t.levelBounds)-1; level++ {
		end := t.levelBounds[level]
		for readPos < end {
			nodeIndex := readPos

			group := aabb.Empty[T]()
			count := uint32(0)
			for count < t.nodeSize && readPos < end {
				group.ExtendBox(t.boxes[readPos])
				readPos++
				count++
			}

			t.boxes[t.pos] = group
			t.indices[t.pos] = nodeIndex
			t.pos++
		}
	}

	t.finished = true
	return nil
}

// sortByHilbert quicksorts values (and the parallel boxes/indices)
// in place by Hilbert value, but only down to whole-node-block
// granularity: within a block of nodeSize consecutive slots, relative
// order doesn't matter (they all roll up into the same parent), so the
// recursion cuts off once left and right fall in the same block.
func sortByHilbert[T constraints.Float](values []uint32, boxes []aabb.Box[T], indices []uint32, left, right, nodeSize int) {
	if left/nodeSize >= right/nodeSize {
		return
	}

	pivot := values[(left+right)>>1]
	i, j := left-1, right+1
	for {
		for {
			i++
			if values[i] >= pivot {
				break
			}
		}
		for {
			j--
			if values[j] <= pivot {
				break
			}
		}
		if i >= j {
			break
		}
		values[i], values[j] = values[j], values[i]
		boxes[i], boxes[j] = boxes[j], boxes[i]
		indices[i], indices[j] = indices[j], indices[i]
	}

	sortByHilbert(values, boxes, indices, left, j, nodeSize)
	sortByHilbert(values, boxes, indices, j+1, right, nodeSize)
}

// upperBoundLevel returns the smallest entry of t.levelBounds strictly
// greater than value, mirroring the original's binary-search upperBound.
func (t *Tree[T]) upperBoundLevel(value uint32) uint32 {
	i, j := 0, len(t.levelBounds)-1
	for i < j {
		m := (i + j) >> 1
		if t.levelBounds[m] > value {
			j = m
		} else {
			i = m + 1
		}
	}
	return t.levelBounds[i]
}

// Search returns the original insertion indices of every item whose box
// overlaps the query box, via an iterative DFS bounded by a fixed stack.
func (t *Tree[T]) Search(query aabb.Box[T]) ([]uint32, error) {
	if !t.finished {
		return nil, fmt.Errorf("hilbert: %w", ErrNotFinished)
	}
	var results []uint32
	if len(t.boxes) == 0 {
		return results, nil
	}

	nodeIndex := t.pos - 1
	var stack [512]uint32
	nStack := 0

	for {
		bound := t.upperBoundLevel(nodeIndex)
		end := nodeIndex + t.nodeSize
		if bound < end {
			end = bound
		}

		for pos := nodeIndex; pos < end; pos++ {
			b := t.boxes[pos]
			if query.Upper.X < b.Lower.X || query.Upper.Y < b.Lower.Y ||
				query.Lower.X > b.Upper.X || query.Lower.Y > b.Upper.Y {
				continue
			}

			index := t.indices[pos]
			if nodeIndex >= t.numItems {
				stack[nStack] = index
				nStack++
			} else {
				results = append(results, index)
			}
		}

		if nStack == 0 {
			break
		}
		nStack--
		nodeIndex = stack[nStack]
	}
	return results, nil
}

// axisDist returns the distance from k to the [lo,hi] interval along one
// axis (0 if k falls inside it).
func axisDist[T constraints.Float](k, lo, hi T) T {
	switch {
	case k < lo:
		return lo - k
	case k <= hi:
		return 0
	default:
		return k - hi
	}
}

type neighborEntry struct {
	dist  float64
	tag   uint32 // (nodeIndex<<1) | isLeaf
}

// Neighbors returns up to maxNeighbors original item indices within
// maxDist of point, nearest first, via incremental best-first search
// over a min-heap of candidate nodes/leaves.
func (t *Tree[T]) Neighbors(point vecmath.Vec2[T], maxDist T, maxNeighbors int) ([]uint32, error) {
	if !t.finished {
		return nil, fmt.Errorf("hilbert: %w", ErrNotFinished)
	}
	var results []uint32
	if len(t.boxes) == 0 {
		return results, nil
	}

	maxDistSq := float64(maxDist) * float64(maxDist)
	nodeIndex := t.pos - 1

	h := mheap.New([]neighborEntry(nil), func(a, b neighborEntry) bool { return a.dist < b.dist })

	for {
		lBound := nodeIndex + t.nodeSize
		uBound := t.upperBoundLevel(nodeIndex)
		end := lBound
		if uBound < end {
			end = uBound
		}

		for pos := nodeIndex; pos < end; pos++ {
			index := t.indices[pos]
			b := t.boxes[pos]
			dx := axisDist(point.X, b.Lower.X, b.Upper.X)
			dy := axisDist(point.Y, b.Lower.Y, b.Upper.Y)
			dist := float64(dx)*float64(dx) + float64(dy)*float64(dy)
			if dist > maxDistSq {
				continue
			}

			if nodeIndex >= t.numItems {
				h.Push(neighborEntry{dist: dist, tag: index << 1})
			} else {
				h.Push(neighborEntry{dist: dist, tag: (index << 1) | 1})
			}
		}

		for h.Len() > 0 {
			top, _ := h.Min()
			if top.tag&1 == 0 {
				break
			}
			if top.dist > maxDistSq {
				return results, nil
			}
			results = append(results, top.tag>>1)
			h.Pop()
			if len(results) == maxNeighbors {
				return results, nil
			}
		}

		if h.Len() == 0 {
			break
		}
		top, _ := h.Min()
		nodeIndex = top.tag >> 1
		h.Pop()
	}
	return results, nil
}
