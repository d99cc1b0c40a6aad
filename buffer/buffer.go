package buffer

import "fmt"

// Buffer is a growable typed slice whose reallocation cadence is driven
// by an explicit GrowthPolicy instead of Go's implicit append-doubling.
type Buffer[T any] struct {
	data   []T
	policy GrowthPolicy
}

// New returns an empty Buffer governed by policy. A nil policy defaults
// to DefaultPolicy().
func New[T any](policy GrowthPolicy) *Buffer[T] {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Buffer[T]{policy: policy}
}

// Len returns the current element count.
func (b *Buffer[T]) Len() int { return len(b.data) }

// Cap returns the current backing capacity.
func (b *Buffer[T]) Cap() int { return cap(b.data) }

// Slice exposes the buffer's live elements. Mutating the returned slice
// mutates the buffer.
func (b *Buffer[T]) Slice() []T { return b.data }

// At returns the element at index i.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// Set overwrites the element at index i.
func (b *Buffer[T]) Set(i int, v T) { b.data[i] = v }

// Append adds v, growing the backing array via the policy if needed.
func (b *Buffer[T]) Append(v T) error {
	if len(b.data) == cap(b.data) {
		if err := b.Reserve(len(b.data) + 1); err != nil {
			return err
		}
	}
	b.data = append(b.data, v)
	return nil
}

// Reserve grows capacity to at least n, using the policy to pick the
// actual target. The length is unchanged.
func (b *Buffer[T]) Reserve(n int) error {
	if n < 0 {
		return fmt.Errorf("buffer: %w: reserve(%d)", ErrNegativeSize, n)
	}
	if n <= cap(b.data) {
		return nil
	}
	next, err := b.policy.Next(cap(b.data), n)
	if err != nil {
		return err
	}
	grown := make([]T, len(b.data), next)
	copy(grown, b.data)
	b.data = grown
	return nil
}

// ReserveFit sets capacity to exactly n, ignoring the growth policy.
// n must be >= the current length.
func (b *Buffer[T]) ReserveFit(n int) error {
	if n < 0 {
		return fmt.Errorf("buffer: %w: reserve_fit(%d)", ErrNegativeSize, n)
	}
	if n < len(b.data) {
		return fmt.Errorf("buffer: %w: reserve_fit(%d) below current length %d", ErrLengthOverflow, n, len(b.data))
	}
	exact := make([]T, len(b.data), n)
	copy(exact, b.data)
	b.data = exact
	return nil
}

// Resize grows or shrinks the buffer to exactly n elements. New slots
// introduced by growth are set to the zero value of T.
func (b *Buffer[T]) Resize(n int) error {
	if n < 0 {
		return fmt.Errorf("buffer: %w: resize(%d)", ErrNegativeSize, n)
	}
	if n <= len(b.data) {
		b.data = b.data[:n]
		return nil
	}
	if err := b.Reserve(n); err != nil {
		return err
	}
	b.data = b.data[:n]
	return nil
}

// ResizeNoConstruct changes the reported length to n without running any
// per-element initialization beyond what growing the backing array
// already required.
//
// The original contract restricts this to POD element types, since it
// skips the element constructor entirely. Go zero-initializes all
// memory it hands out, so there is no uninitialized-memory hazard here;
// this method exists for API symmetry with the growable-buffer contract
// and to make the POD-vs-non-POD distinction explicit at call sites,
// even though its behavior is identical to Resize.
func (b *Buffer[T]) ResizeNoConstruct(n int) error {
	return b.Resize(n)
}
