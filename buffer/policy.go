package buffer

import "fmt"

// GrowthPolicy decides the next capacity when a buffer must grow past
// oldCap to hold at least needed elements.
type GrowthPolicy interface {
	Next(oldCap, needed int) (int, error)
}

// MultiplyBy grows capacity by the ratio A/B (new = old*A/B), clamped to
// MaxSize when MaxSize > 0. A and B must both be positive, otherwise Next
// returns ErrLengthOverflow. When old*A/B falls short of needed (for
// example A <= B), the result is raised to exactly needed.
type MultiplyBy struct {
	A, B    int
	MaxSize int
}

// Next implements GrowthPolicy.
func (p MultiplyBy) Next(oldCap, needed int) (int, error) {
	if p.A <= 0 || p.B <= 0 {
		return 0, fmt.Errorf("buffer: %w: multiply_by ratio must be positive, got %d/%d", ErrLengthOverflow, p.A, p.B)
	}
	next := oldCap * p.A / p.B
	if next < needed {
		next = needed
	}
	if p.MaxSize > 0 && next > p.MaxSize {
		if needed > p.MaxSize {
			return 0, fmt.Errorf("buffer: %w: needed %d exceeds max size %d", ErrLengthOverflow, needed, p.MaxSize)
		}
		next = p.MaxSize
	}
	return next, nil
}

// AddBy grows capacity by a fixed increment K (new = old+K), clamped to
// MaxSize when MaxSize > 0.
type AddBy struct {
	K       int
	MaxSize int
}

// Next implements GrowthPolicy.
func (p AddBy) Next(oldCap, needed int) (int, error) {
	if p.K <= 0 {
		return 0, fmt.Errorf("buffer: %w: add_by increment must be positive, got %d", ErrLengthOverflow, p.K)
	}
	next := oldCap + p.K
	if next < needed {
		next = needed
	}
	if p.MaxSize > 0 && next > p.MaxSize {
		if needed > p.MaxSize {
			return 0, fmt.Errorf("buffer: %w: needed %d exceeds max size %d", ErrLengthOverflow, needed, p.MaxSize)
		}
		next = p.MaxSize
	}
	return next, nil
}

// DefaultPolicy doubles capacity (multiply_by<2,1>) with no max size,
// matching typical dynamic-array growth.
func DefaultPolicy() GrowthPolicy {
	return MultiplyBy{A: 2, B: 1}
}
