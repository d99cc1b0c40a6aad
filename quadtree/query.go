package quadtree

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
)

// Predicate bounds a query by a box and a finer-grained Test applied to
// each candidate object box that overlaps it.
type Predicate[T constraints.Float] struct {
	Box  aabb.Box[T]
	Test func(candidate aabb.Box[T]) bool
}

// Overlapping builds the common predicate: match any object box that
// overlaps box.
func Overlapping[T constraints.Float](box aabb.Box[T]) Predicate[T] {
	return Predicate[T]{Box: box, Test: func(candidate aabb.Box[T]) bool { return box.Overlaps(candidate) }}
}

// Query visits every value whose box overlaps predicate.Box and
// satisfies predicate.Test. Returning false from visit stops early.
// Descent only enters children overlapping predicate.Box, and stops
// checking a node's remaining children once one of them fully contains
// predicate.Box, since the four quadrants at any level are disjoint and
// no sibling can also overlap it.
func (t *Tree[T, V]) Query(predicate Predicate[T], visit func(value V) bool) {
	queryNode(t.root, predicate, visit)
}

func queryNode[T constraints.Float, V any](n *qnode[T, V], predicate Predicate[T], visit func(value V) bool) bool {
	for _, obj := range n.objects {
		if obj.box.Overlaps(predicate.Box) && predicate.Test(obj.box) {
			if !visit(obj.value) {
				return false
			}
		}
	}
	if n.isLeaf() {
		return true
	}
	for _, child := range n.children {
		if !child.box.Overlaps(predicate.Box) {
			continue
		}
		if !queryNode(child, predicate, visit) {
			return false
		}
		if child.box.Contains(predicate.Box) {
			break
		}
	}
	return true
}

// Aggregate reduces a set of values (either raw leaf values or
// previously produced aggregates — both are type V) into one summary
// value, for HierarchicalQuery.
type Aggregate[V any] func(values []V) V

type hunit[V any] struct {
	value V
	count int
}

// HierarchicalQuery descends only into children overlapping
// predicate.Box. A child whose box predicate.Box fully contains is
// collapsed immediately into one aggregate unit covering its whole
// subtree, using its cached subtree count. Otherwise it recurses; if
// the resulting found-count at this node exceeds containmentFactor
// times this node's own subtree count, the units found under this node
// are combined back into a single aggregate for the whole node. visit
// is called once per final unit with its value and the leaf count it
// represents.
func (t *Tree[T, V]) HierarchicalQuery(predicate Predicate[T], aggregate Aggregate[V], visit func(value V, count int) bool) {
	units := hierarchicalRec(t.root, predicate, aggregate, t.containmentFactor)
	for _, u := range units {
		if !visit(u.value, u.count) {
			return
		}
	}
}

func hierarchicalRec[T constraints.Float, V any](n *qnode[T, V], predicate Predicate[T], aggregate Aggregate[V], containmentFactor float64) []hunit[V] {
	var units []hunit[V]

	for _, obj := range n.objects {
		if obj.box.Overlaps(predicate.Box) && predicate.Test(obj.box) {
			units = append(units, hunit[V]{value: obj.value, count: 1})
		}
	}

	if !n.isLeaf() {
		for _, child := range n.children {
			if !child.box.Overlaps(predicate.Box) {
				continue
			}
			if predicate.Box.Contains(child.box) {
				if child.count > 0 {
					units = append(units, hunit[V]{value: collectAggregate(child, aggregate), count: child.count})
				}
				continue
			}
			units = append(units, hierarchicalRec(child, predicate, aggregate, containmentFactor)...)
		}
	}

	found := 0
	for _, u := range units {
		found += u.count
	}
	if n.count > 0 && float64(found) > containmentFactor*float64(n.count) {
		vals := make([]V, len(units))
		for i, u := range units {
			vals[i] = u.value
		}
		return []hunit[V]{{value: aggregate(vals), count: found}}
	}
	return units
}

// collectAggregate reduces every value stored under n (its own objects
// plus every descendant's) into a single aggregate value.
func collectAggregate[T constraints.Float, V any](n *qnode[T, V], aggregate Aggregate[V]) V {
	var vals []V
	collectValues(n, &vals)
	return aggregate(vals)
}

func collectValues[T constraints.Float, V any](n *qnode[T, V], out *[]V) {
	for _, obj := range n.objects {
		*out = append(*out, obj.value)
	}
	if n.isLeaf() {
		return
	}
	for _, child := range n.children {
		collectValues(child, out)
	}
}
