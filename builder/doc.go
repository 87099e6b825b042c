// Package builder generates deterministic graph fixtures for tests, benchmarks
// and the wgraph CLI.
//
// A Constructor adds vertices and weighted edges to a Fixture; BuildFixture
// applies constructors in order and Fixture.Build turns the result into a
// *graph.Graph[string, core.WeightedEdge[string]].
//
// Topologies:
//
//	Path(n)          n ≥ 2   P_n, edges i–(i+1)
//	Cycle(n)         n ≥ 3   C_n
//	Star(n)          n ≥ 2   "Center" plus n-1 leaves
//	Complete(n)      n ≥ 1   K_n
//	Grid(rows, cols) ≥ 1     4-neighborhood grid, IDs "r,c"
//	RandomSparse(n, p)       G(n,p); needs WithSeed/WithRand when 0 < p < 1
//
// Options:
//
//	WithSeed(s), WithRand(r)           randomness for RandomSparse and weight functions
//	WithWeightFn(fn)                   DefaultWeightFn, ConstantWeightFn, UniformWeightFn, IntegerWeightFn
//	WithIDScheme(fn), WithIDPrefix(p)  vertex naming (DefaultIDFn, SymbolNumberIDFn, ExcelColumnIDFn)
//
// Edges are named "e1", "e2", ... in emission order so parallel edges stay distinct.
// Identical inputs, options and seed yield identical fixtures.
package builder
