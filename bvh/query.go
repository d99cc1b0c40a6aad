package bvh

import (
	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/geo2d/aabb"
	"github.com/katalvlaran/geo2d/vecmath"
)

const queryStackSize = 256

// QueryCallback is invoked once per proxy whose fat AABB overlaps the
// query box. Returning false stops the traversal early.
type QueryCallback func(proxyID int32) bool

// Query visits every proxy whose fat AABB overlaps box.
func (t *Tree[T]) Query(box aabb.Box[T], callback QueryCallback) {
	t.QueryFiltered(box, ^uint32(0), callback)
}

// QueryFiltered is Query restricted to proxies whose categoryBits
// (bitwise-ANDed with maskBits) is nonzero.
func (t *Tree[T]) QueryFiltered(box aabb.Box[T], maskBits uint32, callback QueryCallback) {
	if t.root == nullIndex {
		return
	}

	stack := make([]int32, 0, queryStackSize)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		nodeID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nodeID == nullIndex {
			continue
		}
		n := &t.nodes[nodeID]
		if !n.fatAABB.Overlaps(box) {
			continue
		}

		if n.isLeaf() {
			if n.categoryBits&maskBits != 0 {
				if !callback(nodeID) {
					return
				}
			}
			continue
		}

		stack = append(stack, n.child1, n.child2)
	}
}

// RayCastInput describes a segment from Origin to Origin +
// MaxFraction*Translation.
type RayCastInput[T constraints.Float] struct {
	Origin      vecmath.Vec2[T]
	Translation vecmath.Vec2[T]
	MaxFraction T
}

// RayCastCallback is invoked once per proxy whose fat AABB the segment
// intersects. It returns the fraction to shrink the query segment to
// (so the caller can report only the nearest hit so far), zero to stop
// the cast entirely, or input.MaxFraction to leave the segment
// unchanged.
type RayCastCallback[T constraints.Float] func(input RayCastInput[T], proxyID int32) T

// RayCast walks the tree using the separating-axis test described by
// Gino van den Bergen ("Fast Ray-Box Intersection"), against every fat
// AABB that the current, possibly shrinking, query segment can still
// reach.
func (t *Tree[T]) RayCast(input RayCastInput[T], maskBits uint32, callback RayCastCallback[T]) {
	if t.root == nullIndex {
		return
	}

	p1 := input.Origin
	r := input.Translation
	if vecmath.LenSquared(r) == 0 {
		return
	}
	rn := vecmath.Normalize(r)
	v := vecmath.Vec2[T]{X: -rn.Y, Y: rn.X} // perpendicular to the ray direction
	absV := vecmath.Abs(v)

	maxFraction := input.MaxFraction
	p2 := vecmath.MulAdd(p1, maxFraction, r)
	segAABB := aabb.New(vecmath.Min(p1, p2), vecmath.Max(p1, p2))

	stack := make([]int32, 0, queryStackSize)
	stack = append(stack, t.root)

	for len(stack) > 0 {
		nodeID := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if nodeID == nullIndex {
			continue
		}
		n := &t.nodes[nodeID]
		if !n.fatAABB.Overlaps(segAABB) {
			continue
		}

		c := n.fatAABB.Center()
		h := n.fatAABB.Extents()
		toCenter := vecmath.Sub(c, p1)
		sep := absT(vecmath.Dot(v, toCenter))
		radius := absV.X*h.X + absV.Y*h.Y
		if sep > radius {
			continue
		}

		if n.isLeaf() {
			if n.categoryBits&maskBits == 0 {
				continue
			}
			subInput := RayCastInput[T]{Origin: input.Origin, Translation: input.Translation, MaxFraction: maxFraction}
			fraction := callback(subInput, nodeID)
			if fraction == 0 {
				return
			}
			if fraction > 0 && fraction < maxFraction {
				maxFraction = fraction
				p2 = vecmath.MulAdd(p1, maxFraction, r)
				segAABB = aabb.New(vecmath.Min(p1, p2), vecmath.Max(p1, p2))
			}
			continue
		}

		stack = append(stack, n.child1, n.child2)
	}
}

func absT[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
