package core

import (
	"iter"
	"slices"
)

// Set is a duplicate-free collection that remembers insertion order.
//
// Iteration order is the order in which items were first added, which keeps
// every algorithm fed from a Set deterministic. The zero value is an empty set
// ready to use. Set is not safe for concurrent mutation.
type Set[T comparable] struct {
	index map[T]int // item → position in items
	items []T       // insertion order
}

// NewSet returns a set holding items, duplicates dropped.
// Complexity: O(len(items)).
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		index: make(map[T]int, len(items)),
		items: make([]T, 0, len(items)),
	}
	for _, item := range items {
		s.Add(item)
	}

	return s
}

// Add inserts item and reports whether it was absent.
// Complexity: O(1) amortized.
func (s *Set[T]) Add(item T) bool {
	if s.index == nil {
		s.index = make(map[T]int)
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = len(s.items)
	s.items = append(s.items, item)

	return true
}

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[item]

	return ok
}

// Len returns the number of items.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}

	return len(s.items)
}

// Items returns a copy of the items in insertion order.
func (s *Set[T]) Items() []T {
	if s == nil {
		return nil
	}

	return slices.Clone(s.items)
}

// All iterates the items in insertion order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}
