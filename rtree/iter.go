package rtree

import "golang.org/x/exp/constraints"

// ChildVisit is called once per direct branch of a node, by Children.
type ChildVisit[T constraints.Float, V comparable] func(branch Branch[T, V]) bool

// Children walks n's direct branches left to right (the per-node
// iterator order).
func Children[T constraints.Float, V comparable](n *Node[T, V], visit ChildVisit[T, V]) {
	for i := range n.Branches {
		if !visit(n.Branches[i]) {
			return
		}
	}
}

// DepthFirstVisit is called once on descent into an internal node
// (down=true) and again when returning from it (down=false), enabling
// accumulator patterns that need a matched enter/exit pair. Leaf
// branches are reported via leaf, once each, in between.
type DepthFirstVisit[T constraints.Float, V comparable] func(n *Node[T, V], down bool)

// LeafVisit is called once per leaf value encountered during a
// depth-first walk.
type LeafVisit[V any] func(value V) bool

// DepthFirst walks n and its descendants, visiting every internal node
// twice (once on the way down, once on the way back up) and every leaf
// value once, in left-to-right order.
func DepthFirst[T constraints.Float, V comparable](n *Node[T, V], onNode DepthFirstVisit[T, V], onLeaf LeafVisit[V]) bool {
	if n.IsLeaf() {
		for i := range n.Branches {
			if onLeaf != nil && !onLeaf(n.Branches[i].Value) {
				return false
			}
		}
		return true
	}

	if onNode != nil {
		onNode(n, true)
	}
	for i := range n.Branches {
		if !DepthFirst(n.Branches[i].Child, onNode, onLeaf) {
			if onNode != nil {
				onNode(n, false)
			}
			return false
		}
	}
	if onNode != nil {
		onNode(n, false)
	}
	return true
}

// Leaves walks every leaf value in the tree rooted at n, left to right,
// ignoring internal structure (the leaf-only iterator order).
func Leaves[T constraints.Float, V comparable](n *Node[T, V], visit LeafVisit[V]) bool {
	if n.IsLeaf() {
		for i := range n.Branches {
			if !visit(n.Branches[i].Value) {
				return false
			}
		}
		return true
	}
	for i := range n.Branches {
		if !Leaves(n.Branches[i].Child, visit) {
			return false
		}
	}
	return true
}
