package rtree

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
)

// Tree is a mutable, generic K-ary R-tree over 2D boxes. The zero value
// is not usable; construct with New.
type Tree[T constraints.Float, V comparable] struct {
	root       *Node[T, V]
	m, M       int
	volumeMode VolumeMode
}

// New builds an empty tree with the given max branch fanout (>= 2) and
// a min fanout of M/2, using VolumeNormal for split/merge cost.
func New[T constraints.Float, V comparable](maxChildren int) (*Tree[T, V], error) {
	return NewWithVolumeMode[T, V](maxChildren, VolumeNormal)
}

// NewWithVolumeMode is New with an explicit VolumeMode.
func NewWithVolumeMode[T constraints.Float, V comparable](maxChildren int, mode VolumeMode) (*Tree[T, V], error) {
	if maxChildren < 2 {
		return nil, ErrBadFanout
	}
	return &Tree[T, V]{
		root:       &Node[T, V]{Level: 0},
		m:          maxChildren / 2,
		M:          maxChildren,
		volumeMode: mode,
	}, nil
}

// Root exposes the tree's root node for the iterator functions in
// iter.go.
func (t *Tree[T, V]) Root() *Node[T, V] {
	return t.root
}

// Count returns the number of direct branches at the root (not the
// total number of stored values).
func (t *Tree[T, V]) Count() int {
	return len(t.root.Branches)
}

// Insert adds (box, value) to the tree unconditionally.
func (t *Tree[T, V]) Insert(box aabb.Box[T], value V) {
	_ = t.insert(box, value, nil)
}

// InsertPredicate is evaluated against a leaf's existing branch boxes
// before a new branch is added to it; returning false rejects the
// insert.
type InsertPredicate[T constraints.Float] func(existing []aabb.Box[T]) bool

// InsertIf is Insert, but rejects the insert (returning
// ErrRejectedByPredicate) if predicate returns false when evaluated
// against the target leaf's existing boxes.
func (t *Tree[T, V]) InsertIf(box aabb.Box[T], value V, predicate InsertPredicate[T]) error {
	return t.insert(box, value, predicate)
}

func (t *Tree[T, V]) insert(box aabb.Box[T], value V, predicate InsertPredicate[T]) error {
	sibling, err := t.insertRec(t.root, box, value, predicate)
	if err != nil {
		return err
	}
	if sibling != nil {
		newRoot := &Node[T, V]{Level: t.root.Level + 1}
		newRoot.Branches = append(newRoot.Branches,
			Branch[T, V]{Box: t.root.cover(), Child: t.root},
			Branch[T, V]{Box: sibling.cover(), Child: sibling},
		)
		t.root = newRoot
	}
	return nil
}

func (t *Tree[T, V]) insertRec(n *Node[T, V], box aabb.Box[T], value V, predicate InsertPredicate[T]) (*Node[T, V], error) {
	if n.IsLeaf() {
		if predicate != nil {
			existing := make([]aabb.Box[T], len(n.Branches))
			for i := range n.Branches {
				existing[i] = n.Branches[i].Box
			}
			if !predicate(existing) {
				return nil, ErrRejectedByPredicate
			}
		}
		n.Branches = append(n.Branches, Branch[T, V]{Box: box, Value: value})
	} else {
		i := t.chooseBranch(n, box)
		child := n.Branches[i].Child
		sibling, err := t.insertRec(child, box, value, predicate)
		if err != nil {
			return nil, err
		}
		n.Branches[i].Box = child.cover()
		if sibling != nil {
			n.Branches = append(n.Branches, Branch[T, V]{Box: sibling.cover(), Child: sibling})
		}
	}

	if len(n.Branches) <= t.M {
		return nil, nil
	}
	return t.quadraticSplit(n), nil
}

// insertBranchAtLevel reinserts branch, preserving whatever subtree it
// carries in Child, as a single unit into the node of the tree sitting
// at the given level. Used by Remove for Guttman-style level-preserving
// reinsertion of branches orphaned by underfill, as opposed to Insert's
// always-to-the-leaf descent.
func (t *Tree[T, V]) insertBranchAtLevel(branch Branch[T, V], level int) {
	sibling := t.insertBranchRec(t.root, branch, level)
	if sibling != nil {
		newRoot := &Node[T, V]{Level: t.root.Level + 1}
		newRoot.Branches = append(newRoot.Branches,
			Branch[T, V]{Box: t.root.cover(), Child: t.root},
			Branch[T, V]{Box: sibling.cover(), Child: sibling},
		)
		t.root = newRoot
	}
}

func (t *Tree[T, V]) insertBranchRec(n *Node[T, V], branch Branch[T, V], level int) *Node[T, V] {
	if n.Level == level {
		n.Branches = append(n.Branches, branch)
	} else {
		i := t.chooseBranch(n, branch.Box)
		child := n.Branches[i].Child
		sibling := t.insertBranchRec(child, branch, level)
		n.Branches[i].Box = child.cover()
		if sibling != nil {
			n.Branches = append(n.Branches, Branch[T, V]{Box: sibling.cover(), Child: sibling})
		}
	}

	if len(n.Branches) <= t.M {
		return nil
	}
	return t.quadraticSplit(n)
}

// chooseBranch picks the branch that would grow least to absorb box,
// breaking ties toward the branch with smaller current volume.
func (t *Tree[T, V]) chooseBranch(n *Node[T, V], box aabb.Box[T]) int {
	best := 0
	bestGrowth := growth(t.volumeMode, n.Branches[0].Box, box)
	bestVolume := volumeOf(t.volumeMode, n.Branches[0].Box)
	for i := 1; i < len(n.Branches); i++ {
		g := growth(t.volumeMode, n.Branches[i].Box, box)
		v := volumeOf(t.volumeMode, n.Branches[i].Box)
		if g < bestGrowth || (g == bestGrowth && v < bestVolume) {
			best, bestGrowth, bestVolume = i, g, v
		}
	}
	return best
}

// pickSeeds returns the pair of branches whose combined box wastes the
// most volume over their own, Guttman's quadratic-split seed choice.
func (t *Tree[T, V]) pickSeeds(branches []Branch[T, V]) (int, int) {
	bestI, bestJ := 0, 1
	var bestWaste T
	first := true
	for i := 0; i < len(branches); i++ {
		for j := i + 1; j < len(branches); j++ {
			w := waste(t.volumeMode, branches[i].Box, branches[j].Box)
			if first || w > bestWaste {
				bestWaste, bestI, bestJ, first = w, i, j, false
			}
		}
	}
	return bestI, bestJ
}

// quadraticSplit partitions n's M+1 branches (n is already overfull)
// into two groups: n keeps one, and the new sibling node (same level)
// holds the other.
func (t *Tree[T, V]) quadraticSplit(n *Node[T, V]) *Node[T, V] {
	branches := n.Branches
	seed1, seed2 := t.pickSeeds(branches)

	groupA := []Branch[T, V]{branches[seed1]}
	groupB := []Branch[T, V]{branches[seed2]}
	boxA := branches[seed1].Box
	boxB := branches[seed2].Box

	assigned := make([]bool, len(branches))
	assigned[seed1] = true
	assigned[seed2] = true
	remaining := len(branches) - 2

	for remaining > 0 {
		if len(groupA)+remaining == t.m {
			for i := range branches {
				if !assigned[i] {
					groupA = append(groupA, branches[i])
					boxA.ExtendBox(branches[i].Box)
					assigned[i] = true
				}
			}
			break
		}
		if len(groupB)+remaining == t.m {
			for i := range branches {
				if !assigned[i] {
					groupB = append(groupB, branches[i])
					boxB.ExtendBox(branches[i].Box)
					assigned[i] = true
				}
			}
			break
		}

		next := -1
		var bestDiff, growA, growB T
		for i := range branches {
			if assigned[i] {
				continue
			}
			gA := growth(t.volumeMode, boxA, branches[i].Box)
			gB := growth(t.volumeMode, boxB, branches[i].Box)
			diff := gA - gB
			if diff < 0 {
				diff = -diff
			}
			if next == -1 || diff > bestDiff {
				next, bestDiff, growA, growB = i, diff, gA, gB
			}
		}

		switch {
		case growA < growB:
			groupA = append(groupA, branches[next])
			boxA.ExtendBox(branches[next].Box)
		case growB < growA:
			groupB = append(groupB, branches[next])
			boxB.ExtendBox(branches[next].Box)
		default:
			areaA := volumeOf(t.volumeMode, boxA)
			areaB := volumeOf(t.volumeMode, boxB)
			if areaA < areaB || (areaA == areaB && len(groupA) < len(groupB)) {
				groupA = append(groupA, branches[next])
				boxA.ExtendBox(branches[next].Box)
			} else {
				groupB = append(groupB, branches[next])
				boxB.ExtendBox(branches[next].Box)
			}
		}
		assigned[next] = true
		remaining--
	}

	n.Branches = groupA
	return &Node[T, V]{Level: n.Level, Branches: groupB}
}
