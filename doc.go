// Package geo2d is your toolbox for 2D computational geometry in Go.
//
// 🚀 What is geo2d?
//
//	A small, dependency-light collection of spatial data structures and a
//	GJK-based collision core:
//
//	  • Numeric primitives: 2D vectors, rotations, rigid transforms, AABBs
//	  • A reusable binary min-heap over a caller-owned buffer
//	  • Four spatial indices: packed Hilbert R-tree, dynamic BVH, a
//	    classical quadratic-split R-tree, and a hierarchical quadtree
//	  • GJK distance, shape-cast, time-of-impact, and hull construction
//	    over fixed-capacity convex-polygon proxies
//
// ✨ Why choose geo2d?
//
//   - Single-threaded core     — no locks, no goroutines, safe to
//     parallelize across independent tree instances yourself
//   - Allocation-conscious     — the heap works over a caller-owned
//     slice; the BVH keeps its nodes in one pooled array with a free list
//   - Battle-tested algorithms — Hilbert packing, AVL-style BVH rebalancing
//     and GJK/TOI are ports of the well-known Box2D/flatbush techniques
//
// Everything is organized under one subpackage per concern:
//
//	vecmath/  — vectors, rotations, transforms, sweeps
//	aabb/     — axis-aligned bounding box algebra
//	mheap/    — a generic binary min-heap
//	option/   — an Option[T] monadic value carrier
//	buffer/   — a growable typed buffer with pluggable growth policy
//	hilbert/  — packed Hilbert R-tree (bulk load, box query, k-nearest)
//	bvh/      — dynamic bounding-volume hierarchy (insert/move/remove)
//	rtree/    — classical K-ary R-tree with quadratic split
//	quadtree/ — hierarchical quadtree with containment-factor queries
//	gjk/      — GJK distance, shape-cast, time-of-impact, hull
//
//	go get github.com/katalvlaran/geo2d
package geo2d
