package bvh

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/vecmath"
)

// Tree is a dynamic bounding-volume hierarchy of fattened AABBs. The
// zero value is not usable; construct with New.
type Tree[T constraints.Float] struct {
	nodes      []node[T]
	root       int32
	freeList   int32
	proxyCount int32
	extension  T
}

// New builds an empty tree whose proxies are fattened by extension on
// every side. extension should be a small positive slack relative to
// typical object size (the spec's canonical scenario uses 0.1).
func New[T constraints.Float](extension T) (*Tree[T], error) {
	if extension < 0 {
		return nil, ErrBadExtension
	}
	return &Tree[T]{root: nullIndex, freeList: nullIndex, extension: extension}, nil
}

// ProxyCount returns the number of live proxies.
func (t *Tree[T]) ProxyCount() int {
	return int(t.proxyCount)
}

// allocLeaf pops a node off the free list, growing the pool by one slot
// when the list is empty. Growth is amortized by Go's own slice growth
// strategy, so unlike a manual C-style pool there is no separate
// capacity-doubling pass here: the pool simply grows one node at a time
// and the runtime batches the underlying reallocations.
func (t *Tree[T]) allocLeaf() int32 {
	if t.freeList == nullIndex {
		idx := int32(len(t.nodes))
		t.nodes = append(t.nodes, node[T]{height: -1, parent: nullIndex, child1: nullIndex, child2: nullIndex, next: nullIndex})
		t.freeList = idx
	}
	id := t.freeList
	n := &t.nodes[id]
	t.freeList = n.next
	*n = node[T]{parent: nullIndex, child1: nullIndex, child2: nullIndex, height: 0}
	t.proxyCount++
	return id
}

func (t *Tree[T]) freeLeaf(id int32) {
	n := &t.nodes[id]
	n.height = -1
	n.next = t.freeList
	t.freeList = id
	t.proxyCount--
}

// balanceLeaf performs a single AVL-style rotation rooted at iA if its
// children's heights differ by more than one, and returns the new local
// root (iA itself if no rotation was needed).
func (t *Tree[T]) balanceLeaf(iA int32) int32 {
	a := &t.nodes[iA]
	if a.isLeaf() || a.height < 2 {
		return iA
	}

	iB, iC := a.child1, a.child2
	b, c := &t.nodes[iB], &t.nodes[iC]
	balance := c.height - b.height

	if balance > 1 {
		iF, iG := c.child1, c.child2
		f, g := &t.nodes[iF], &t.nodes[iG]

		c.child1 = iA
		c.parent = a.parent
		a.parent = iC

		if c.parent != nullIndex {
			if t.nodes[c.parent].child1 == iA {
				t.nodes[c.parent].child1 = iC
			} else {
				t.nodes[c.parent].child2 = iC
			}
		} else {
			t.root = iC
		}

		if f.height > g.height {
			c.child2 = iF
			a.child2 = iG
			g.parent = iA
			a.fatAABB = aabb.Union(b.fatAABB, g.fatAABB)
			c.fatAABB = aabb.Union(a.fatAABB, f.fatAABB)
			a.height = 1 + maxI32(b.height, g.height)
			c.height = 1 + maxI32(a.height, f.height)
		} else {
			c.child2 = iG
			a.child2 = iF
			f.parent = iA
			a.fatAABB = aabb.Union(b.fatAABB, f.fatAABB)
			c.fatAABB = aabb.Union(a.fatAABB, g.fatAABB)
			a.height = 1 + maxI32(b.height, f.height)
			c.height = 1 + maxI32(a.height, g.height)
		}
		return iC
	}

	if balance < -1 {
		iD, iE := b.child1, b.child2
		d, e := &t.nodes[iD], &t.nodes[iE]

		b.child1 = iA
		b.parent = a.parent
		a.parent = iB

		if b.parent != nullIndex {
			if t.nodes[b.parent].child1 == iA {
				t.nodes[b.parent].child1 = iB
			} else {
				t.nodes[b.parent].child2 = iB
			}
		} else {
			t.root = iB
		}

		if d.height > e.height {
			b.child2 = iD
			a.child1 = iE
			e.parent = iA
			a.fatAABB = aabb.Union(c.fatAABB, e.fatAABB)
			b.fatAABB = aabb.Union(a.fatAABB, d.fatAABB)
			a.height = 1 + maxI32(c.height, e.height)
			b.height = 1 + maxI32(a.height, d.height)
		} else {
			b.child2 = iE
			a.child1 = iD
			d.parent = iA
			a.fatAABB = aabb.Union(c.fatAABB, d.fatAABB)
			b.fatAABB = aabb.Union(a.fatAABB, e.fatAABB)
			a.height = 1 + maxI32(c.height, d.height)
			b.height = 1 + maxI32(a.height, e.height)
		}
		return iB
	}

	return iA
}

func maxI32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// insertLeaf walks down from the root choosing, at each internal node,
// the child whose subtree would grow least by absorbing leafAABB (a
// surface-area/cost heuristic), then splices in a new parent above the
// chosen sibling and rebalances every ancestor on the way back up.
func (t *Tree[T]) insertLeaf(leaf int32) {
	if t.root == nullIndex {
		t.root = leaf
		t.nodes[leaf].parent = nullIndex
		return
	}

	leafAABB := t.nodes[leaf].fatAABB
	index := t.root
	for !t.nodes[index].isLeaf() {
		node := &t.nodes[index]
		child1, child2 := node.child1, node.child2

		area := node.fatAABB.Perimeter()
		combined := aabb.Union(node.fatAABB, leafAABB)
		combinedArea := combined.Perimeter()

		cost := 2 * combinedArea
		inheritCost := 2 * (combinedArea - area)

		cost1 := costOfDescending(t, child1, leafAABB) + inheritCost
		cost2 := costOfDescending(t, child2, leafAABB) + inheritCost

		if cost < cost1 && cost < cost2 {
			break
		}
		if cost1 < cost2 {
			index = child1
		} else {
			index = child2
		}
	}

	sibling := index
	oldParent := t.nodes[sibling].parent
	newParent := t.allocInternal(oldParent, aabb.Union(leafAABB, t.nodes[sibling].fatAABB))

	if oldParent != nullIndex {
		if t.nodes[oldParent].child1 == sibling {
			t.nodes[oldParent].child1 = newParent
		} else {
			t.nodes[oldParent].child2 = newParent
		}
	} else {
		t.root = newParent
	}

	t.nodes[newParent].child1 = sibling
	t.nodes[newParent].child2 = leaf
	t.nodes[sibling].parent = newParent
	t.nodes[leaf].parent = newParent

	index = newParent
	for index != nullIndex {
		index = t.balanceLeaf(index)

		n := &t.nodes[index]
		child1, child2 := n.child1, n.child2
		n.height = 1 + maxI32(t.nodes[child1].height, t.nodes[child2].height)
		n.fatAABB = aabb.Union(t.nodes[child1].fatAABB, t.nodes[child2].fatAABB)

		index = t.nodes[index].parent
	}
}

// allocInternal reuses a freed slot (or grows the pool) for a new
// non-leaf node; internal nodes are never returned from allocLeaf since
// that path also bumps proxyCount.
func (t *Tree[T]) allocInternal(parent int32, box aabb.Box[T]) int32 {
	var id int32
	if t.freeList == nullIndex {
		id = int32(len(t.nodes))
		t.nodes = append(t.nodes, node[T]{})
	} else {
		id = t.freeList
		t.freeList = t.nodes[id].next
	}
	t.nodes[id] = node[T]{
		fatAABB: box,
		parent:  parent,
		child1:  nullIndex,
		child2:  nullIndex,
		height:  1,
	}
	return id
}

func costOfDescending[T constraints.Float](t *Tree[T], child int32, leafAABB aabb.Box[T]) T {
	n := &t.nodes[child]
	combined := aabb.Union(n.fatAABB, leafAABB)
	if n.isLeaf() {
		return combined.Perimeter()
	}
	return combined.Perimeter() - n.fatAABB.Perimeter()
}

// removeLeaf detaches leaf from the tree, promoting its sibling into the
// place of its (now-removed) parent and rebalancing back up to the root.
func (t *Tree[T]) removeLeaf(leaf int32) {
	if leaf == t.root {
		t.root = nullIndex
		return
	}

	parent := t.nodes[leaf].parent
	grandParent := t.nodes[parent].parent

	var sibling int32
	if t.nodes[parent].child1 == leaf {
		sibling = t.nodes[parent].child2
	} else {
		sibling = t.nodes[parent].child1
	}

	if grandParent != nullIndex {
		if t.nodes[grandParent].child1 == parent {
			t.nodes[grandParent].child1 = sibling
		} else {
			t.nodes[grandParent].child2 = sibling
		}
		t.nodes[sibling].parent = grandParent
		t.freeInternal(parent)

		index := grandParent
		for index != nullIndex {
			index = t.balanceLeaf(index)

			n := &t.nodes[index]
			child1, child2 := n.child1, n.child2
			n.fatAABB = aabb.Union(t.nodes[child1].fatAABB, t.nodes[child2].fatAABB)
			n.height = 1 + maxI32(t.nodes[child1].height, t.nodes[child2].height)

			index = t.nodes[index].parent
		}
	} else {
		t.root = sibling
		t.nodes[sibling].parent = nullIndex
		t.freeInternal(parent)
	}
}

func (t *Tree[T]) freeInternal(id int32) {
	n := &t.nodes[id]
	n.height = -1
	n.next = t.freeList
	t.freeList = id
}

func (t *Tree[T]) fatten(box aabb.Box[T]) aabb.Box[T] {
	r := vecmath.Vec2[T]{X: t.extension, Y: t.extension}
	return aabb.Box[T]{
		Lower: vecmath.Sub(box.Lower, r),
		Upper: vecmath.Add(box.Upper, r),
	}
}

// Add inserts a proxy with the given tight AABB, category bits (used by
// QueryFiltered/Raycast mask tests), and opaque user data, and returns
// its proxy id.
func (t *Tree[T]) Add(box aabb.Box[T], categoryBits uint32, userData interface{}) int32 {
	leaf := t.allocLeaf()
	n := &t.nodes[leaf]
	n.fatAABB = t.fatten(box)
	n.categoryBits = categoryBits
	n.userData = userData
	n.moved = true

	t.insertLeaf(leaf)
	return leaf
}

func (t *Tree[T]) checkProxy(proxyID int32) error {
	if proxyID < 0 || int(proxyID) >= len(t.nodes) || t.nodes[proxyID].height != 0 {
		return fmt.Errorf("%w: %d", ErrUnknownProxy, proxyID)
	}
	return nil
}

// Remove detaches a proxy from the tree and returns it to the free list.
func (t *Tree[T]) Remove(proxyID int32) error {
	if err := t.checkProxy(proxyID); err != nil {
		return err
	}
	t.removeLeaf(proxyID)
	t.freeLeaf(proxyID)
	return nil
}

// Move updates a proxy's tight AABB. If the new box still fits inside
// the existing fat AABB with slack to spare (more precisely: the fat box
// still contains it, and a huge box five times the fattening would still
// contain the fat box), the tree is left untouched and Move returns
// false. Otherwise the proxy is removed, re-fattened around the new box,
// and reinserted, and Move returns true. The proxy's moved flag (see
// WasMoved/ClearMoved) is set on every call regardless.
func (t *Tree[T]) Move(proxyID int32, box aabb.Box[T]) (bool, error) {
	if err := t.checkProxy(proxyID); err != nil {
		return false, err
	}

	n := &t.nodes[proxyID]
	newFat := t.fatten(box)
	if n.fatAABB.Contains(box) {
		// The tree box still contains the object, but it might have
		// become too large (the object moved fast, then settled). The
		// huge box is larger than the freshly re-fattened new box.
		r := vecmath.Vec2[T]{X: t.extension, Y: t.extension}
		hugeAABB := aabb.Box[T]{
			Lower: vecmath.Sub(newFat.Lower, vecmath.Scale(r, 4)),
			Upper: vecmath.Add(newFat.Upper, vecmath.Scale(r, 4)),
		}
		if hugeAABB.Contains(n.fatAABB) {
			// The tree box contains the object box and isn't too
			// large. No tree update needed.
			n.moved = true
			return false, nil
		}
		// Otherwise the tree box is huge and needs to be shrunk.
	}

	t.removeLeaf(proxyID)
	n.fatAABB = newFat
	t.insertLeaf(proxyID)
	n.moved = true
	return true, nil
}

// GetUserData returns the opaque payload passed to Add.
func (t *Tree[T]) GetUserData(proxyID int32) (interface{}, error) {
	if err := t.checkProxy(proxyID); err != nil {
		return nil, err
	}
	return t.nodes[proxyID].userData, nil
}

// GetFatAABB returns the proxy's fattened AABB as currently stored.
func (t *Tree[T]) GetFatAABB(proxyID int32) (aabb.Box[T], error) {
	if err := t.checkProxy(proxyID); err != nil {
		return aabb.Box[T]{}, err
	}
	return t.nodes[proxyID].fatAABB, nil
}

// WasMoved reports whether the proxy has been flagged as moved since its
// last ClearMoved call (or since Add, if ClearMoved was never called).
func (t *Tree[T]) WasMoved(proxyID int32) (bool, error) {
	if err := t.checkProxy(proxyID); err != nil {
		return false, err
	}
	return t.nodes[proxyID].moved, nil
}

// ClearMoved resets the proxy's moved flag. Broad-phase consumers call
// this after processing a proxy's move so the next real motion sets it
// again.
func (t *Tree[T]) ClearMoved(proxyID int32) error {
	if err := t.checkProxy(proxyID); err != nil {
		return err
	}
	t.nodes[proxyID].moved = false
	return nil
}

// GetHeight returns the height of the whole tree (0 for an empty or
// single-leaf tree).
func (t *Tree[T]) GetHeight() int {
	if t.root == nullIndex {
		return 0
	}
	return int(t.nodes[t.root].height)
}

// GetAreaRatio returns the ratio of the sum of every node's perimeter to
// the root's perimeter: a rough measure of how much slack the tree has
// accumulated relative to a freshly rebuilt one.
func (t *Tree[T]) GetAreaRatio() T {
	if t.root == nullIndex {
		return 0
	}
	rootArea := t.nodes[t.root].fatAABB.Perimeter()

	var total T
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.height < 0 {
			continue
		}
		total += n.fatAABB.Perimeter()
	}
	return total / rootArea
}

// GetMaxBalance returns the largest child-height imbalance found at any
// internal node, a diagnostic for deciding whether a rebuild is due.
func (t *Tree[T]) GetMaxBalance() int {
	maxBalance := 0
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.height <= 1 || n.isLeaf() {
			continue
		}
		b := int(t.nodes[n.child2].height) - int(t.nodes[n.child1].height)
		if b < 0 {
			b = -b
		}
		if b > maxBalance {
			maxBalance = b
		}
	}
	return maxBalance
}
