// Package quadtree implements a hierarchical quadtree over a fixed outer
// box: objects are placed at the deepest node whose box fully contains
// them, a leaf subdivides into four equal quadrants once it holds more
// than maxChildItems objects, and objects that don't fully fit any
// quadrant stay at the parent (hierarchical storage, as opposed to
// pushing every object down to a leaf).
//
// Ported from candybox's hierarchical QuadTree/QuadTreeNode
// (spatial.hpp), generalized to this module's generic-container idiom
// already established by hilbert, bvh, and rtree.
//
// Query stops scanning a node's remaining children once it has visited
// a child whose box fully contains the predicate box, which is safe here
// (unlike rtree's analogous case) because a quadtree's four children at
// any level are disjoint: once the query box lies entirely inside one
// child, no sibling can hold anything inside it.
package quadtree
