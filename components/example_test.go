package components_test

import (
	"fmt"

	"github.com/katalvlaran/spanforest/components"
	"github.com/katalvlaran/spanforest/core"
)

// ExampleConnectedComponents splits {A,B,C,D} with edges A-B and C-D.
func ExampleConnectedComponents() {
	g := core.NewGraph[string]()
	for _, l := range []string{"A", "B", "C", "D"} {
		g.AddLabel(l)
	}
	g.AddWeightedEdge("A", "B", 1)
	g.AddWeightedEdge("C", "D", 1)

	cc, _ := components.ConnectedComponents[string](g)
	fmt.Println(cc)
	// Output: [[A B] [C D]]
}
