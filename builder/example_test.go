package builder_test

import (
	"fmt"

	"github.com/katalvlaran/wgraph/builder"
)

// ExampleGenerate builds the 4-cycle A-B-C-D with constant weights
// and drops the closing edge from its spanning tree.
func ExampleGenerate() {
	g, err := builder.Generate(builder.Cycle(4), builder.WithLetterIDs(), builder.WithConstantWeight(2))
	if err != nil {
		fmt.Println(err)
		return
	}

	mst := g.MinimumSpanningTree().Items()
	fmt.Println(g.NumVertices(), g.NumEdges(), mst)
	// Output: 4 4 [A-B(2) B-C(2) C-D(2)]
}
