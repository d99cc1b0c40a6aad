package bvh

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
)

// nullIndex marks the absence of a parent/child/free-list link.
const nullIndex = -1

// node is one slot of the tree's pool. Leaves have child1 == nullIndex
// and carry a proxy's fat AABB, category bits, and user data; internal
// nodes have both children set and carry the union of their subtrees.
// A freed node has height == -1 and its next field threaded into the
// pool's free list.
type node[T constraints.Float] struct {
	fatAABB      aabb.Box[T]
	userData     interface{}
	categoryBits uint32

	parent  int32
	child1  int32
	child2  int32
	height  int32
	moved   bool
	next    int32 // free-list link while freed
}

func (n *node[T]) isLeaf() bool {
	return n.child1 == nullIndex
}
