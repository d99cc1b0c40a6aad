package rtree

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
)

// Branch is one entry of a Node: a bounding box paired with either a
// leaf Value (when its owning Node IsLeaf) or a Child subtree.
type Branch[T constraints.Float, V any] struct {
	Box   aabb.Box[T]
	Value V
	Child *Node[T, V]
}

// Node holds at most a tree's configured fanout worth of Branches.
// Level 0 is a leaf; Level > 0 is internal.
type Node[T constraints.Float, V any] struct {
	Branches []Branch[T, V]
	Level    int
}

// IsLeaf reports whether this node holds values directly rather than
// child subtrees.
func (n *Node[T, V]) IsLeaf() bool {
	return n.Level == 0
}

// cover returns the union of every branch's box.
func (n *Node[T, V]) cover() aabb.Box[T] {
	box := aabb.Empty[T]()
	for i := range n.Branches {
		box.ExtendBox(n.Branches[i].Box)
	}
	return box
}
