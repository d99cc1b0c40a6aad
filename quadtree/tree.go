package quadtree

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/vecmath"
)

// defaultContainmentFactor is the tunable percentage HierarchicalQuery
// uses until SetContainmentFactor overrides it: a node's emitted set
// collapses to a single aggregate once found objects exceed 60% of the
// node's subtree count.
const defaultContainmentFactor = 0.6

// Tree is a hierarchical quadtree over a fixed outer box: each node
// holds the objects that don't fully fit into one of its four
// quadrants, and subdivides once a leaf exceeds maxChildItems.
type Tree[T constraints.Float, V any] struct {
	root              *qnode[T, V]
	maxChildItems     int
	containmentFactor float64
	levels            int
}

// New builds an empty tree over outer, splitting a leaf once it holds
// more than maxChildItems objects.
func New[T constraints.Float, V any](outer aabb.Box[T], maxChildItems int) (*Tree[T, V], error) {
	if maxChildItems < 1 {
		return nil, fmt.Errorf("quadtree: New: %w", ErrBadMaxChildItems)
	}
	return &Tree[T, V]{
		root:              &qnode[T, V]{box: outer},
		maxChildItems:     maxChildItems,
		containmentFactor: defaultContainmentFactor,
		levels:            1,
	}, nil
}

// SetContainmentFactor overrides the default 60% threshold used by
// HierarchicalQuery.
func (t *Tree[T, V]) SetContainmentFactor(factor float64) { t.containmentFactor = factor }

// Levels reports the number of levels the tree has subdivided into so
// far (1 for an unsubdivided root).
func (t *Tree[T, V]) Levels() int { return t.levels }

// Count reports the total number of stored objects.
func (t *Tree[T, V]) Count() int { return t.root.count }

// Bounds returns the tree's fixed outer box.
func (t *Tree[T, V]) Bounds() aabb.Box[T] { return t.root.box }

// Insert places value under box at the deepest node whose region fully
// contains it, subdividing a leaf that overflows maxChildItems.
func (t *Tree[T, V]) Insert(box aabb.Box[T], value V) error {
	if !t.root.box.Contains(box) {
		return fmt.Errorf("quadtree: Insert: %w", ErrOutOfBounds)
	}
	t.insert(t.root, object[T, V]{box: box, value: value})
	return nil
}

func (t *Tree[T, V]) insert(n *qnode[T, V], obj object[T, V]) {
	n.count++

	if n.isLeaf() {
		n.objects = append(n.objects, obj)
		if len(n.objects) > t.maxChildItems {
			t.subdivide(n)
		}
		return
	}

	for _, child := range n.children {
		if child.box.Contains(obj.box) {
			t.insert(child, obj)
			return
		}
	}
	n.objects = append(n.objects, obj)
}

// subdivide partitions a leaf into four equal quadrants and migrates
// every object that fully fits one of them; objects spanning more than
// one quadrant stay on n.
func (t *Tree[T, V]) subdivide(n *qnode[T, V]) {
	for i, region := range regions {
		n.children[i] = &qnode[T, V]{box: n.box.Quad2D(region), level: n.level + 1}
	}
	if n.level+1 >= t.levels {
		t.levels = n.level + 2
	}

	pending := n.objects
	n.objects = nil
	for _, obj := range pending {
		moved := false
		for _, child := range n.children {
			if child.box.Contains(obj.box) {
				t.insert(child, obj)
				moved = true
				break
			}
		}
		if !moved {
			n.objects = append(n.objects, obj)
		}
	}
}

// Translate shifts every stored box, and the tree's own outer box, by
// offset. Relative containment is preserved under a uniform shift, so
// no object needs to migrate between nodes.
func (t *Tree[T, V]) Translate(offset vecmath.Vec2[T]) {
	translateNode(t.root, offset)
}

func translateNode[T constraints.Float, V any](n *qnode[T, V], offset vecmath.Vec2[T]) {
	n.box.Translate(offset)
	for i := range n.objects {
		n.objects[i].box.Translate(offset)
	}
	if n.isLeaf() {
		return
	}
	for _, child := range n.children {
		translateNode(child, offset)
	}
}
