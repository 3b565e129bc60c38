package crosscheck

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/dijkstra"
)

// ErrMismatch indicates that a result disagrees with the reference
// computation or with itself.
var ErrMismatch = errors.New("crosscheck: result mismatch")

// Tolerance is the absolute difference allowed between two distances,
// scaled up for distances above 1.
const Tolerance = 1e-9

// Verify checks r against g. It returns nil when every check passes.
//
// Complexity: O((V + E) log V).
func Verify(g *core.Graph, r *dijkstra.Result) error {
	if g == nil {
		return dijkstra.ErrNilGraph
	}
	if r == nil {
		return fmt.Errorf("%w: nil result", ErrMismatch)
	}

	var errs []error
	errs = append(errs, checkDistances(g, r)...)
	errs = append(errs, checkPath(g, r)...)
	errs = append(errs, checkTrace(r)...)
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrMismatch, errors.Join(errs...))
}

// reference builds the gonum mirror of g. Node i of the declaration order
// becomes gonum node i. Self-loops never shorten a path and are dropped;
// parallel roads collapse onto the cheapest one.
func reference(g *core.Graph) (*simple.WeightedUndirectedGraph, map[string]int64) {
	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ids := make(map[string]int64, g.Order())
	for i, id := range g.NodeIDs() {
		ids[id] = int64(i)
		wg.AddNode(simple.Node(int64(i)))
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		u, v := ids[e.From], ids[e.To]
		if cur, ok := wg.Weight(u, v); ok && cur <= e.Weight {
			continue
		}
		wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(u), simple.Node(v), e.Weight))
	}

	return wg, ids
}

func checkDistances(g *core.Graph, r *dijkstra.Result) []error {
	src, err := g.Node(r.Source)
	if err != nil {
		return []error{fmt.Errorf("source: %w", err)}
	}

	wg, ids := reference(g)
	sp := path.DijkstraFrom(simple.Node(ids[src.ID]), wg)

	var errs []error
	for _, id := range g.NodeIDs() {
		want := sp.WeightTo(ids[id])
		got, ok := r.Distances[id]
		switch {
		case !ok:
			errs = append(errs, fmt.Errorf("distance of %s missing", id))
		case !same(got, want):
			errs = append(errs, fmt.Errorf("distance of %s: got %g, want %g", id, got, want))
		}
	}

	return errs
}

func checkPath(g *core.Graph, r *dijkstra.Result) []error {
	if !r.Found() {
		if len(r.Path) != 0 || r.Distance != 0 {
			return []error{fmt.Errorf("no target but path %v at distance %g", r.Path, r.Distance)}
		}

		return nil
	}

	if len(r.Path) == 0 {
		return []error{fmt.Errorf("target %s without a path", r.Target)}
	}

	var errs []error
	if r.Path[0] != r.Source {
		errs = append(errs, fmt.Errorf("path starts at %s, want %s", r.Path[0], r.Source))
	}
	if last := r.Path[len(r.Path)-1]; last != r.Target {
		errs = append(errs, fmt.Errorf("path ends at %s, want %s", last, r.Target))
	}
	if d, ok := r.Distances[r.Target]; ok && !same(d, r.Distance) {
		errs = append(errs, fmt.Errorf("distance %g differs from the table entry %g", r.Distance, d))
	}

	segs, err := r.Segments(g)
	if err != nil {
		return append(errs, err)
	}
	var sum float64
	for _, s := range segs {
		sum += s.Weight
	}
	if !same(sum, r.Distance) {
		errs = append(errs, fmt.Errorf("segments sum to %g, distance is %g", sum, r.Distance))
	}

	return errs
}

func checkTrace(r *dijkstra.Result) []error {
	var errs []error
	if len(r.Steps) != len(r.VisitOrder) {
		errs = append(errs, fmt.Errorf("%d steps for %d visited nodes", len(r.Steps), len(r.VisitOrder)))
	}
	if n := len(r.Steps); n > 0 && !slices.Equal(r.Steps[n-1].Visited, r.VisitOrder) {
		errs = append(errs, fmt.Errorf("last step visited %v, visit order %v", r.Steps[n-1].Visited, r.VisitOrder))
	}

	// finalized distances never decrease
	for i := 1; i < len(r.VisitOrder); i++ {
		prev, cur := r.Distances[r.VisitOrder[i-1]], r.Distances[r.VisitOrder[i]]
		if cur < prev && !same(cur, prev) {
			errs = append(errs, fmt.Errorf("%s finalized at %g after %s at %g",
				r.VisitOrder[i], cur, r.VisitOrder[i-1], prev))
		}
	}

	return errs
}

func same(a, b float64) bool {
	if math.IsInf(a, 1) || math.IsInf(b, 1) {
		return math.IsInf(a, 1) && math.IsInf(b, 1)
	}

	return math.Abs(a-b) <= Tolerance*math.Max(1, math.Abs(b))
}
