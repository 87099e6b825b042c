// Package disjointset implements a generic union-find (disjoint-set forest).
//
// What & Why
//
//   - A DisjointSet partitions elements into non-overlapping groups and answers
//     "are these two elements in the same group?" in effectively constant time.
//   - It is the cycle detector behind Kruskal's MST (see prim_kruskal): an edge whose
//     endpoints already share a group would close a cycle.
//
// Operations
//
//   - MakeSet(item)       – add item as a singleton; ErrDuplicateElement if present.
//   - FindSet(item)       – id of the group's root; ErrNotFound if item is unknown.
//   - Union(item1, item2) – merge two groups; ErrNotFound / ErrSameSet on misuse.
//   - Len, Sets, Contains – size queries.
//
// Heuristics
//
//   - Path compression: FindSet re-points every visited node at the root (two-pass,
//     iterative).
//   - Union by rank: parent and rank live in two parallel slices; the higher-rank root
//     absorbs the lower; on a tie the first argument's root wins and gains one rank.
//
// Together they keep the amortized cost per operation at O(α(n)).
//
// Capacity
//
//	New allocates DefaultCapacity (1024) slots unless WithCapacity(n) is given. When the
//	slots run out, MakeSet doubles them transparently; ids and groups are preserved.
//
// Example:
//
//	ds := disjointset.New[string]()
//	_ = ds.MakeSet("a")
//	_ = ds.MakeSet("b")
//	_ = ds.Union("a", "b")
//	ra, _ := ds.FindSet("a")
//	rb, _ := ds.FindSet("b")
//	fmt.Println(ra == rb) // true
package disjointset
