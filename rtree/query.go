package rtree

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/mheap"
	"github.com/katalvlaran/geo2d/vecmath"
)

// Predicate bounds a query by a box and a finer-grained Test applied to
// each candidate branch box that overlaps it.
type Predicate[T constraints.Float] struct {
	Box  aabb.Box[T]
	Test func(candidate aabb.Box[T]) bool
}

// Overlapping builds the common predicate: match any branch box that
// overlaps box.
func Overlapping[T constraints.Float](box aabb.Box[T]) Predicate[T] {
	return Predicate[T]{Box: box, Test: func(candidate aabb.Box[T]) bool { return box.Overlaps(candidate) }}
}

// ContainingPoint builds a predicate matching branch boxes that contain p.
func ContainingPoint[T constraints.Float](p vecmath.Vec2[T]) Predicate[T] {
	return Predicate[T]{Box: aabb.New(p, p), Test: func(candidate aabb.Box[T]) bool { return candidate.ContainsPoint(p) }}
}

// Query visits every value whose box overlaps predicate.Box and
// satisfies predicate.Test. Returning false from visit stops early.
func (t *Tree[T, V]) Query(predicate Predicate[T], visit func(value V) bool) {
	queryRec(t.root, predicate, visit)
}

func queryRec[T constraints.Float, V comparable](n *Node[T, V], predicate Predicate[T], visit func(value V) bool) bool {
	for i := range n.Branches {
		b := n.Branches[i]
		if !b.Box.Overlaps(predicate.Box) {
			continue
		}
		if n.IsLeaf() {
			if predicate.Test(b.Box) {
				if !visit(b.Value) {
					return false
				}
			}
		} else if !queryRec(b.Child, predicate, visit) {
			return false
		}
	}
	return true
}

// Aggregate reduces a set of values (either raw leaf values or
// previously produced aggregates — both are type V) into one summary
// value, for HierarchicalQuery.
type Aggregate[V any] func(values []V) V

// HierarchicalQuery descends only into branches overlapping
// predicate.Box. A branch whose box predicate.Box fully contains is
// collapsed immediately into one aggregate unit covering its whole
// subtree. Otherwise it recurses; if the resulting found-count at this
// node exceeds containmentFactor times this node's own branch count,
// the units found under this node are combined back into a single
// aggregate for the whole node. visit is called once per final unit,
// each with its value and the number of leaf values it represents.
func (t *Tree[T, V]) HierarchicalQuery(predicate Predicate[T], aggregate Aggregate[V], containmentFactor float64, visit func(value V, count int) bool) {
	units := hierarchicalRec(t.root, predicate, aggregate, containmentFactor)
	for _, u := range units {
		if !visit(u.value, u.count) {
			return
		}
	}
}

type hunit[V any] struct {
	value V
	count int
}

func hierarchicalRec[T constraints.Float, V comparable](n *Node[T, V], predicate Predicate[T], aggregate Aggregate[V], containmentFactor float64) []hunit[V] {
	var units []hunit[V]

	if n.IsLeaf() {
		for i := range n.Branches {
			b := n.Branches[i]
			if b.Box.Overlaps(predicate.Box) && predicate.Test(b.Box) {
				units = append(units, hunit[V]{value: b.Value, count: 1})
			}
		}
		return units
	}

	for i := range n.Branches {
		b := n.Branches[i]
		if !b.Box.Overlaps(predicate.Box) {
			continue
		}
		if predicate.Box.Contains(b.Box) {
			var leaves []Branch[T, V]
			collectLeaves(b.Child, &leaves)
			if len(leaves) == 0 {
				continue
			}
			vals := make([]V, len(leaves))
			for j, lf := range leaves {
				vals[j] = lf.Value
			}
			units = append(units, hunit[V]{value: aggregate(vals), count: len(leaves)})
			continue
		}
		units = append(units, hierarchicalRec(b.Child, predicate, aggregate, containmentFactor)...)
	}

	found := 0
	for _, u := range units {
		found += u.count
	}
	if len(n.Branches) > 0 && float64(found) > containmentFactor*float64(len(n.Branches)) {
		vals := make([]V, len(units))
		for i, u := range units {
			vals[i] = u.value
		}
		return []hunit[V]{{value: aggregate(vals), count: found}}
	}
	return units
}

// Nearest visits every value within radius of point, nearest first at
// each node (children are sorted by distance from point to their
// center before descending; any whose distance exceeds radius is
// pruned along with the rest of that sorted order).
func (t *Tree[T, V]) Nearest(point vecmath.Vec2[T], radius T, visit func(value V) bool) {
	nearestRec(t.root, point, radius, visit)
}

func nearestRec[T constraints.Float, V comparable](n *Node[T, V], point vecmath.Vec2[T], radius T, visit func(value V) bool) bool {
	type scored struct {
		idx  int
		dist T
	}
	order := make([]scored, len(n.Branches))
	for i := range n.Branches {
		order[i] = scored{i, vecmath.Distance(point, n.Branches[i].Box.Center())}
	}
	for i := 1; i < len(order); i++ {
		for j := i; j > 0 && order[j].dist < order[j-1].dist; j-- {
			order[j], order[j-1] = order[j-1], order[j]
		}
	}

	for _, s := range order {
		if s.dist > radius {
			break
		}
		b := n.Branches[s.idx]
		if n.IsLeaf() {
			if !visit(b.Value) {
				return false
			}
		} else if !nearestRec(b.Child, point, radius, visit) {
			return false
		}
	}
	return true
}

type knnEntry[T constraints.Float, V comparable] struct {
	dist   T
	child  *Node[T, V]
	value  V
	isLeaf bool
}

// KNearest visits up to k values nearest to point, in increasing
// distance order, via incremental best-first search over a priority
// queue of candidate nodes and leaves.
func (t *Tree[T, V]) KNearest(point vecmath.Vec2[T], k int, visit func(value V, dist T) bool) {
	less := func(a, b knnEntry[T, V]) bool { return a.dist < b.dist }
	h := mheap.New([]knnEntry[T, V](nil), less)
	h.Push(knnEntry[T, V]{dist: t.root.cover().Distance(point), child: t.root})

	found := 0
	for h.Len() > 0 && found < k {
		top, _ := h.Pop()
		if top.isLeaf {
			if !visit(top.value, top.dist) {
				return
			}
			found++
			continue
		}
		n := top.child
		for i := range n.Branches {
			b := n.Branches[i]
			if n.IsLeaf() {
				h.Push(knnEntry[T, V]{dist: b.Box.Distance(point), value: b.Value, isLeaf: true})
			} else {
				h.Push(knnEntry[T, V]{dist: b.Box.Distance(point), child: b.Child})
			}
		}
	}
}

// RayQuery visits every value whose box the ray from origin in
// direction dir intersects (slab test), in tree order; predicate, if
// non-nil, additionally filters emitted values.
func (t *Tree[T, V]) RayQuery(origin, dir vecmath.Vec2[T], predicate func(value V) bool, visit func(value V) bool) {
	rayRec(t.root, origin, dir, predicate, visit)
}

func rayRec[T constraints.Float, V comparable](n *Node[T, V], origin, dir vecmath.Vec2[T], predicate func(value V) bool, visit func(value V) bool) bool {
	for i := range n.Branches {
		b := n.Branches[i]
		if !b.Box.IntersectsRay(origin, dir) {
			continue
		}
		if n.IsLeaf() {
			if predicate != nil && !predicate(b.Value) {
				continue
			}
			if !visit(b.Value) {
				return false
			}
		} else if !rayRec(b.Child, origin, dir, predicate, visit) {
			return false
		}
	}
	return true
}
