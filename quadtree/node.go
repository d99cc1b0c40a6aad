package quadtree

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
)

// object pairs a stored value with the box it was inserted under.
type object[T constraints.Float, V any] struct {
	box   aabb.Box[T]
	value V
}

// qnode is one quadtree node: its own region box, any objects that
// don't fully fit a child, four children once subdivided (nil until
// then), its depth, and the cached total object count of the subtree
// rooted here (used by HierarchicalQuery's containment ratio).
type qnode[T constraints.Float, V any] struct {
	box      aabb.Box[T]
	objects  []object[T, V]
	children [4]*qnode[T, V]
	level    int
	count    int
}

func (n *qnode[T, V]) isLeaf() bool { return n.children[0] == nil }

var regions = [4]aabb.Region{aabb.NW, aabb.NE, aabb.SW, aabb.SE}
