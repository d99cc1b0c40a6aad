// Package bvh: sentinel error set.

package bvh

import "errors"

var (
	// ErrBadExtension is returned by New when extension is negative.
	ErrBadExtension = errors.New("bvh: extension must be non-negative")

	// ErrUnknownProxy is returned by Remove/Move/GetUserData/WasMoved/
	// ClearMoved/GetFatAABB when proxyID does not name a live leaf.
	ErrUnknownProxy = errors.New("bvh: unknown proxy id")
)
