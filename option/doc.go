// Package option implements an Option[T]: a tagged carrier for a value
// that may or may not be present, modeled on C++'s std::optional (and on
// this codebase's own ie::optional<T>) but expressed as a Go value type
// with monadic combinators instead of pointer-like dereference.
//
// Comparisons order empty before any present value; two present values
// compare by their inner value (via Compare, when T is ordered).
package option
