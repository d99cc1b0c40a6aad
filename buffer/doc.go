// Package buffer implements a growable typed slice wrapper with an
// explicit, pluggable growth policy, mirroring the reserve/resize
// contract of a C++-style dynamic array template.
//
// Growth is driven by a GrowthPolicy rather than Go's implicit
// append-doubling, so callers that need to match a specific reallocation
// cadence (memory-constrained hosts, benchmarked allocation patterns)
// can supply one. MultiplyBy and AddBy are the two policies this package
// provides; DefaultPolicy doubles.
package buffer
