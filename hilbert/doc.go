// Package hilbert implements a packed, bulk-load-only Hilbert R-tree: a
// static spatial index built once from a known item count, then queried
// by bounding box or incremental nearest neighbor.
//
// Build protocol: New(n) preallocates the node/level layout, Add is
// called exactly n times to insert item boxes in any order, and Finish
// sorts leaves by the Hilbert value of their box center and packs
// parents bottom-up in fixed-size node groups. The tree is immutable
// after Finish; there is no incremental insert/remove (see package bvh
// for that).
package hilbert
