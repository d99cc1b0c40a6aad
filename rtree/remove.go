package rtree

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
)

type pathStep[T constraints.Float, V comparable] struct {
	node *Node[T, V]
	idx  int
}

// Remove deletes the leaf branch matching (box, value) exactly. If
// removing it underfills its owning node (fewer than the tree's min
// fanout), that node is detached once the path back to the root has
// been condensed, and each of its branches is reinserted as a whole
// unit at the node's original level — any Child subtree a branch
// carries rides along untouched, rather than being flattened to
// leaves. A root left with a single child collapses into that child.
func (t *Tree[T, V]) Remove(box aabb.Box[T], value V) error {
	path, leaf, idx, ok := findLeaf(t.root, box, value, nil)
	if !ok {
		return ErrValueNotFound
	}
	leaf.Branches = append(leaf.Branches[:idx], leaf.Branches[idx+1:]...)

	var detached []*Node[T, V]
	n := leaf
	for i := len(path) - 1; i >= 0; i-- {
		parent := path[i].node
		childIdx := path[i].idx
		if n != t.root && len(n.Branches) < t.m {
			detached = append(detached, n)
			parent.Branches = append(parent.Branches[:childIdx], parent.Branches[childIdx+1:]...)
		} else {
			parent.Branches[childIdx].Box = n.cover()
		}
		n = parent
	}

	// Reinsert each orphaned node's own branches as whole units at that
	// node's original level, preserving any Child subtree untouched
	// rather than decomposing it to leaves (Guttman's algorithm).
	for _, orphan := range detached {
		for _, br := range orphan.Branches {
			t.insertBranchAtLevel(br, orphan.Level)
		}
	}

	for !t.root.IsLeaf() && len(t.root.Branches) == 1 {
		t.root = t.root.Branches[0].Child
	}
	return nil
}

func findLeaf[T constraints.Float, V comparable](n *Node[T, V], box aabb.Box[T], value V, path []pathStep[T, V]) ([]pathStep[T, V], *Node[T, V], int, bool) {
	if n.IsLeaf() {
		for i := range n.Branches {
			if n.Branches[i].Box == box && n.Branches[i].Value == value {
				return path, n, i, true
			}
		}
		return nil, nil, 0, false
	}
	for i := range n.Branches {
		if !n.Branches[i].Box.Contains(box) {
			continue
		}
		if p, found, idx, ok := findLeaf(n.Branches[i].Child, box, value, append(path, pathStep[T, V]{node: n, idx: i})); ok {
			return p, found, idx, true
		}
	}
	return nil, nil, 0, false
}
