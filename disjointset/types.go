package disjointset

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by DisjointSet operations.
var (
	// ErrDuplicateElement indicates MakeSet was called for an element that already has a set.
	ErrDuplicateElement = errors.New("disjointset: element already present")

	// ErrNotFound indicates FindSet or Union referenced an element never passed to MakeSet.
	ErrNotFound = errors.New("disjointset: element not found")

	// ErrSameSet indicates Union was called on two elements that already share a set.
	ErrSameSet = errors.New("disjointset: elements already in the same set")

	// ErrBadCapacity indicates WithCapacity received a non-positive value.
	ErrBadCapacity = errors.New("disjointset: capacity must be positive")
)

// DefaultCapacity is the number of slots allocated by New when no capacity is given.
const DefaultCapacity = 1024

// Options configures a DisjointSet at construction.
type Options struct {
	// Capacity is the initial number of slots. Storage doubles when it fills up.
	Capacity int
}

// Option represents a functional option for New.
type Option func(*Options)

// WithCapacity pre-sizes the backing storage to n slots.
// Panics if n <= 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(fmt.Sprintf("%s: got %d", ErrBadCapacity.Error(), n))
		}
		o.Capacity = n
	}
}

// DefaultOptions returns Options with Capacity = DefaultCapacity.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}
