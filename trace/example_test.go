package trace_test

import (
	"os"

	"github.com/katalvlaran/ridepath/dijkstra"
	"github.com/katalvlaran/ridepath/roadmap"
	"github.com/katalvlaran/ridepath/trace"
)

func ExampleRenderRoute() {
	g := roadmap.Mendalo()
	res, err := dijkstra.ComputeNearest(g, "U1", dijkstra.IsDriver)
	if err != nil {
		panic(err)
	}

	if err = trace.RenderRoute(os.Stdout, g, res, trace.Plain); err != nil {
		panic(err)
	}
	// Output:
	// Route Mahasiswa UNJA (U1) → Ojek Gerbang UNJA (D5)
	// Path U1 → I9 → I4 → D5
	// Distance 108.28
	//
	// #  From  To  Road   Length
	// 1  U1    I9  e9     0.00
	// 2  I9    I4  e8     80.00
	// 3  I4    D5  e17    28.28
	//              total  108.28
}
