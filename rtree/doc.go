// Package rtree implements a classical, mutable K-ary R-tree over
// axis-aligned boxes: quadratic-split insertion, underfill-triggered
// reinsertion on remove, hierarchical and point queries, incremental
// k-nearest-neighbor search via a priority queue, a ray query, and three
// tree-walk iterator orders.
//
// Ported from candybox's classical quadratic-split RTree (spatial.hpp),
// generalized to this module's generic slice-based Node/Branch shape and
// the idiom the rest of this module uses for its other generic
// containers.
//
// Query deliberately does NOT short-circuit sibling traversal when one
// child is found to fully contain the query box: sibling branches in an
// R-tree can overlap each other arbitrarily, so a sibling not yet
// visited could still independently overlap the query even after
// another sibling fully contains it. Contrast quadtree.Query, whose
// children are disjoint quadrants and so can safely take that shortcut.
package rtree
