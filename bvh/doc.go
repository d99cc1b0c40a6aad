// Package bvh implements a dynamic bounding-volume hierarchy: an
// incremental binary tree of fattened AABBs supporting Add, Remove, and
// Move in amortized O(log n), plus box/ray queries and an occasional
// full rebuild via binned SAH for when incremental quality has drifted.
//
// Nodes live in a single growable pool addressed by int32 index; freed
// nodes are threaded through an embedded free list (node.next) rather
// than returned to a general-purpose allocator. -1 is the null index
// throughout.
//
// Every inserted proxy's AABB is fattened by Extension on all sides so
// that small motions (Move calls that stay inside the fat box) don't
// require a tree update; Move reports whether it actually removed and
// reinserted the proxy, which is the signal a broad-phase consumer needs
// to decide whether pairs must be re-evaluated.
package bvh
