package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/ridepath/core"
)

// ErrBrokenPath indicates that two consecutive path nodes are not joined by
// any road of the graph passed to Result.Segments.
var ErrBrokenPath = errors.New("dijkstra: path nodes are not adjacent")

// Relaxation records one distance improvement: Node's tentative distance
// dropped from Old to New through the just-finalized node Via.
type Relaxation struct {
	Node string
	Old  float64
	New  float64
	Via  string
}

// String renders the event as "D3: ∞ → 250 (via I3)".
func (r Relaxation) String() string {
	return fmt.Sprintf("%s: %s → %s (via %s)", r.Node, FormatDistance(r.Old), FormatDistance(r.New), r.Via)
}

// FormatDistance renders d rounded to a whole number, or "∞" if d is infinite.
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return "∞"
	}

	return strconv.FormatFloat(math.Round(d), 'f', 0, 64)
}

// Step is the snapshot taken at the end of one iteration. Every slice and map
// is owned by the Step; later iterations never touch it.
type Step struct {
	// Iteration is the 1-based iteration index.
	Iteration int

	// Current is the node finalized in this iteration.
	Current string

	// Unvisited lists the nodes that were still in the running alongside
	// Current, excluding Current, in graph declaration order.
	Unvisited []string

	// Visited is the visit sequence after finalizing Current.
	Visited []string

	// Updates holds the formatted Relaxations, or the single NoUpdates entry.
	Updates []string

	// Relaxations holds the structured relaxation events of this iteration.
	Relaxations []Relaxation

	// Distances and Previous are copies of the distance and predecessor
	// tables after this iteration's relaxations.
	Distances map[string]float64
	Previous  map[string]string
}

// Result is the outcome of ComputeNearest.
type Result struct {
	// Source is the node the search started from.
	Source string

	// Target is the chosen destination, or "" when no qualifying node is reachable.
	Target string

	// Path lists node IDs from Source to Target; empty when Target == "".
	Path []string

	// Distance is the shortest distance from Source to Target; 0 when Target == "".
	Distance float64

	// VisitOrder is the finalization order of the search.
	VisitOrder []string

	// Distances maps every node to its shortest distance, +Inf if unreachable.
	Distances map[string]float64

	// Previous maps every node to its predecessor on a shortest path, "" for none.
	Previous map[string]string

	// Steps is the per-iteration trace, one Step per finalized node.
	Steps []Step
}

// Found reports whether a target node was reached.
func (r *Result) Found() bool { return r.Target != "" }

// Reachable reports whether id has a finite distance from Source.
func (r *Result) Reachable(id string) bool {
	d, ok := r.Distances[id]

	return ok && !math.IsInf(d, 1)
}

// Segment is one road of a reconstructed path.
type Segment struct {
	EdgeID string
	From   string
	To     string
	Weight float64
}

// Segments maps consecutive path nodes onto the cheapest road joining them in
// g. It returns nil for a result without a path, and ErrBrokenPath if some
// pair of consecutive nodes is not adjacent in g.
//
// Complexity: O(len(Path) · deg).
func (r *Result) Segments(g *core.Graph) ([]Segment, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(r.Path) < 2 {
		return nil, nil
	}

	out := make([]Segment, 0, len(r.Path)-1)
	for i := 1; i < len(r.Path); i++ {
		from, to := r.Path[i-1], r.Path[i]
		e, ok := g.EdgeBetween(from, to)
		if !ok {
			return nil, fmt.Errorf("%w: %s-%s", ErrBrokenPath, from, to)
		}
		out = append(out, Segment{EdgeID: e.ID, From: from, To: to, Weight: e.Weight})
	}

	return out, nil
}
