package mheap

// Less reports whether a orders before b.
type Less[T any] func(a, b T) bool

// Heap is a binary minimum-heap over a caller-owned slice.
type Heap[T any] struct {
	data []T
	less Less[T]
}

// New wraps an existing slice as a heap backing store. The slice is not
// heapified; call Make first if it isn't already heap-ordered (or start
// from a nil/empty slice and only ever Push).
func New[T any](data []T, less Less[T]) *Heap[T] {
	return &Heap[T]{data: data, less: less}
}

// Len returns the number of elements currently in the heap.
func (h *Heap[T]) Len() int { return len(h.data) }

// Data exposes the underlying slice, heap-ordered but not sorted.
func (h *Heap[T]) Data() []T { return h.data }

// Min returns the smallest element without removing it. ok is false if
// the heap is empty.
func (h *Heap[T]) Min() (min T, ok bool) {
	if len(h.data) == 0 {
		return min, false
	}
	return h.data[0], true
}

// Push adds item to the heap, maintaining the heap invariant.
func (h *Heap[T]) Push(item T) {
	h.data = append(h.data, item)
	siftDown(h.data, h.less, 0, len(h.data)-1)
}

// Pop removes and returns the smallest element. ok is false if the heap
// was empty.
func (h *Heap[T]) Pop() (min T, ok bool) {
	n := len(h.data)
	if n == 0 {
		return min, false
	}
	if n == 1 {
		min = h.data[0]
		h.data = h.data[:0]
		return min, true
	}

	lastElt := h.data[n-1]
	min = h.data[0]
	h.data[0] = lastElt
	h.data = h.data[:n-1]
	siftUp(h.data, h.less, 0)
	return min, true
}

// Replace pops the smallest element and pushes newItem in one pass,
// cheaper than Pop followed by Push. The heap must be non-empty.
//
// The returned value may be larger than newItem: callers
// that want to keep the heap bounded to its best K items should guard
// the call, e.g. "if less(heap.Min(), newItem) { heap.Replace(newItem) }".
func (h *Heap[T]) Replace(newItem T) (popped T, ok bool) {
	if len(h.data) == 0 {
		return popped, false
	}
	popped = h.data[0]
	h.data[0] = newItem
	siftUp(h.data, h.less, 0)
	return popped, true
}

// PushPop returns item unchanged, leaving the heap untouched, when the
// heap is empty or its root orders before item. Otherwise it installs
// item at the root, restores heap order with a single sift pass, and
// returns the prior root.
func (h *Heap[T]) PushPop(item T) T {
	if len(h.data) == 0 || h.less(h.data[0], item) {
		return item
	}
	item, h.data[0] = h.data[0], item
	siftUp(h.data, h.less, 0)
	return item
}

// Make heapifies an arbitrary slice in place in O(n) time and wraps it.
func Make[T any](data []T, less Less[T]) *Heap[T] {
	for i := len(data)/2 - 1; i >= 0; i-- {
		siftUp(data, less, i)
	}
	return &Heap[T]{data: data, less: less}
}

// siftDown restores the heap invariant for the leaf at pos by moving it
// up toward startPos until it finds a parent no larger than itself.
func siftDown[T any](data []T, less Less[T], startPos, pos int) {
	newItem := data[pos]
	for pos > startPos {
		parentPos := (pos - 1) >> 1
		parent := data[parentPos]
		if less(newItem, parent) {
			data[pos] = parent
			pos = parentPos
			continue
		}
		break
	}
	data[pos] = newItem
}

// siftUp restores the heap invariant rooted at pos by bubbling the
// smaller child upward until a leaf is reached, then sifting the
// displaced element back down into place.
func siftUp[T any](data []T, less Less[T], pos int) {
	endPos := len(data)
	startPos := pos
	newItem := data[pos]

	childPos := 2*pos + 1
	for childPos < endPos {
		rightPos := childPos + 1
		if rightPos < endPos && !less(data[childPos], data[rightPos]) {
			childPos = rightPos
		}
		data[pos] = data[childPos]
		pos = childPos
		childPos = 2*pos + 1
	}

	data[pos] = newItem
	siftDown(data, less, startPos, pos)
}
