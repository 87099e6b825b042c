package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/graph"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal's algorithm on a triangle graph.
// The MST is {A–B, B–C} with total weight 3.
func ExampleKruskal() {
	// 1. Build the triangle A–B(1), B–C(2), A–C(4).
	g, err := graph.New(
		[]string{"A", "B", "C"},
		[]core.WeightedEdge[string]{
			{From: "A", To: "B", Cost: 1},
			{From: "B", To: "C", Cost: 2},
			{From: "A", To: "C", Cost: 4},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2. Run Kruskal's algorithm.
	mst, err := prim_kruskal.Kruskal[string, core.WeightedEdge[string]](g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3. Print the total weight and the edges in selection order.
	fmt.Printf("Total: %g, Edges:", core.TotalWeight[string](mst.Items()))
	for e := range mst.All() {
		fmt.Printf(" %s", e)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B(1) B-C(2)
}

// ExamplePrim demonstrates Prim's algorithm on a pentagon
// A–B(1), B–C(2), C–D(3), D–E(5), A–E(12), grown from A.
func ExamplePrim() {
	g, _ := graph.New(
		[]string{"A", "B", "C", "D", "E"},
		[]core.WeightedEdge[string]{
			{From: "A", To: "B", Cost: 1},
			{From: "A", To: "E", Cost: 12},
			{From: "B", To: "C", Cost: 2},
			{From: "C", To: "D", Cost: 3},
			{From: "D", To: "E", Cost: 5},
		},
	)

	mst, err := prim_kruskal.Prim[string, core.WeightedEdge[string]](g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Total:", core.TotalWeight[string](mst.Items()))
	// Output: Total: 11
}
