package dijkstra_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/dijkstra"
)

// ExampleComputeNearest finds the closest driver for a rider and prints the
// trace table row by row.
//
//	U ──4── I ──3── D1
//	│
//	└────────9───── D2
func ExampleComputeNearest() {
	g := core.NewGraph()
	_ = g.AddNode(core.Node{ID: "U", Role: core.RoleOrigin})
	_ = g.AddNode(core.Node{ID: "I", Role: core.RoleWaypoint})
	_ = g.AddNode(core.Node{ID: "D1", Role: core.RoleTarget})
	_ = g.AddNode(core.Node{ID: "D2", Role: core.RoleTarget})
	_, _ = g.AddEdge("U", "I", 4)
	_, _ = g.AddEdge("I", "D1", 3)
	_, _ = g.AddEdge("U", "D2", 9)

	res, err := dijkstra.ComputeNearest(g, "U", dijkstra.IsDriver)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("nearest %s at %.0f via %s\n", res.Target, res.Distance, strings.Join(res.Path, " → "))
	for _, s := range res.Steps {
		fmt.Printf("%d %s [%s] %s\n", s.Iteration, s.Current, strings.Join(s.Unvisited, " "), strings.Join(s.Updates, "; "))
	}
	// Output:
	// nearest D1 at 7 via U → I → D1
	// 1 U [I D1 D2] I: ∞ → 4 (via U); D2: ∞ → 9 (via U)
	// 2 I [D1 D2] D1: ∞ → 7 (via I)
	// 3 D1 [D2] -
	// 4 D2 [] -
}
