// Package mheap implements a binary minimum-heap over a caller-owned
// slice, ported from the Python-heapq-style siftup/siftdown routines used
// by geo2d's spatial indices for best-first and k-nearest searches.
//
// Heap[T] takes ownership of neither allocation nor comparison: the
// caller supplies the backing slice and a Less function, and every
// operation (Push, Pop, Replace, PushPop, Make) mutates that slice in
// place without any hidden allocation beyond what Go's slice growth
// needs. This mirrors the original void*+eleSize buffer API, adapted to
// Go's type system via generics instead of raw byte copies.
package mheap
