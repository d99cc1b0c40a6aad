// Package option: sentinel error set.

package option

import "errors"

var (
	// ErrBadAccess is the value Must panics with when called on an empty
	// Option.
	ErrBadAccess = errors.New("option: bad optional access")
)
