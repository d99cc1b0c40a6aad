// Package buffer: sentinel error set.

package buffer

import "errors"

var (
	// ErrLengthOverflow is returned when a requested capacity or length
	// would overflow the buffer's size accounting, or would exceed the
	// configured max size.
	ErrLengthOverflow = errors.New("buffer: length overflow")

	// ErrNegativeSize is returned when Reserve/Resize is called with a
	// negative size.
	ErrNegativeSize = errors.New("buffer: negative size")
)
