package disjointset

import "fmt"

// DisjointSet partitions elements of type T into non-overlapping groups.
//
// Every element gets a stable integer id on MakeSet, in insertion order starting at 0.
// parent and rank are parallel arrays indexed by id: parent[i] == i marks a root, and
// rank[i] (an upper bound on the tree height) is only consulted for roots.
//
// A DisjointSet is not safe for concurrent use.
type DisjointSet[T comparable] struct {
	index  map[T]int // element → id
	parent []int     // id → parent id (itself for roots)
	rank   []int     // id → rank, meaningful for roots only
	size   int       // number of ids handed out
	sets   int       // number of disjoint groups
}

// New returns an empty DisjointSet.
//
// Without options the backing arrays hold DefaultCapacity slots; WithCapacity
// changes that. Capacity is only a starting point: MakeSet grows storage as needed.
// Complexity: O(capacity).
func New[T comparable](opts ...Option) *DisjointSet[T] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &DisjointSet[T]{
		index:  make(map[T]int, cfg.Capacity),
		parent: make([]int, cfg.Capacity),
		rank:   make([]int, cfg.Capacity),
	}
}

// MakeSet creates a singleton group holding item and assigns it the next id.
//
// Returns ErrDuplicateElement if item already belongs to a group.
// Complexity: O(1) amortized (storage doubles when full).
func (d *DisjointSet[T]) MakeSet(item T) error {
	if _, ok := d.index[item]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateElement, item)
	}
	if d.size == len(d.parent) {
		d.grow()
	}

	id := d.size
	d.parent[id] = id
	d.rank[id] = 0
	d.index[item] = id
	d.size++
	d.sets++

	return nil
}

// FindSet returns the id of the root of item's group.
//
// Every node visited on the way up is re-pointed directly at the root, so
// repeated calls return the same id in effectively constant time.
// Returns ErrNotFound if item was never passed to MakeSet.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[T]) FindSet(item T) (int, error) {
	id, ok := d.index[item]
	if !ok {
		return -1, fmt.Errorf("%w: %v", ErrNotFound, item)
	}

	return d.root(id), nil
}

// Union merges the groups of item1 and item2.
//
// The root with the higher rank absorbs the other. On equal ranks item1's root
// absorbs item2's root and its rank grows by one.
//
// Returns ErrNotFound if either item is unknown, and ErrSameSet if both already
// share a group.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet[T]) Union(item1, item2 T) error {
	root1, err := d.FindSet(item1)
	if err != nil {
		return err
	}
	root2, err := d.FindSet(item2)
	if err != nil {
		return err
	}
	if root1 == root2 {
		return fmt.Errorf("%w: %v and %v", ErrSameSet, item1, item2)
	}

	switch {
	case d.rank[root1] < d.rank[root2]:
		d.parent[root1] = root2
	case d.rank[root1] > d.rank[root2]:
		d.parent[root2] = root1
	default:
		d.parent[root2] = root1
		d.rank[root1]++
	}
	d.sets--

	return nil
}

// Contains reports whether item has been passed to MakeSet.
func (d *DisjointSet[T]) Contains(item T) bool {
	_, ok := d.index[item]

	return ok
}

// Len returns the number of elements.
func (d *DisjointSet[T]) Len() int { return d.size }

// Sets returns the number of disjoint groups.
func (d *DisjointSet[T]) Sets() int { return d.sets }

// root walks to the root of id and compresses the path in a second pass.
// Iterative, so long chains cannot exhaust the stack.
func (d *DisjointSet[T]) root(id int) int {
	r := id
	for d.parent[r] != r {
		r = d.parent[r]
	}
	for d.parent[id] != r {
		next := d.parent[id]
		d.parent[id] = r
		id = next
	}

	return r
}

// grow doubles the backing arrays, keeping every existing slot.
func (d *DisjointSet[T]) grow() {
	n := 2 * len(d.parent)
	if n == 0 {
		n = 1
	}

	parent := make([]int, n)
	copy(parent, d.parent[:d.size])
	d.parent = parent

	rank := make([]int, n)
	copy(rank, d.rank[:d.size])
	d.rank = rank
}
