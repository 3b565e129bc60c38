package dijkstra

import (
	"fmt"
	"maps"
	"math"

	"github.com/bits-and-blooms/bitset"
	"github.com/maruel/natural"
	"github.com/tidwall/btree"

	"github.com/katalvlaran/ridepath/core"
)

// ComputeNearest runs shortest-path search from source over g and returns
// the reachable node accepted by target that is closest to source, together
// with the full search trace. A nil target selects driver nodes.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a node of g (ErrInvalidSource).
//  3. g must pass g.Validate() (ErrInvalidGraph).
//
// Returns:
//
//   - *Result: Found() == false when no target-class node is reachable; the
//     distances, visit order and steps are populated either way.
//   - error:   one of the sentinels above, or nil.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V²) including the trace.
func ComputeNearest(g *core.Graph, source string, target TargetFunc, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if target == nil {
		target = IsDriver
	}

	// 2) Validate inputs before any allocation of search state.
	if g == nil {
		return nil, ErrNilGraph
	}
	if source == "" || !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSource, source)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	// 3) Run the search, then choose the target and rebuild its path.
	r := newRunner(g, source, cfg)
	if err := r.process(); err != nil {
		return nil, err
	}

	res := &Result{
		Source:     source,
		Path:       []string{},
		VisitOrder: r.visited,
		Distances:  r.dist,
		Previous:   r.prev,
		Steps:      r.steps,
	}
	best, ok := r.nearest(target)
	if !ok {
		return res, nil
	}
	res.Target = best
	res.Distance = r.dist[best]
	res.Path = r.pathTo(best)

	return res, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	source  string

	ids   []string       // canonical (declaration) node order
	index map[string]int // node ID → position in ids

	dist      map[string]float64
	prev      map[string]string
	unvisited *bitset.BitSet // bit i set ⇔ ids[i] not finalized yet
	frontier  *btree.BTreeG[entry]
	visited   []string
	steps     []Step
}

// entry is a frontier key: a node and its tentative distance.
type entry struct {
	dist float64
	id   string
}

// lessEntry orders by distance, then by natural ID order, then bytewise so
// that IDs natural order considers equal ("01" vs "1") stay distinct.
func lessEntry(a, b entry) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if natural.Less(a.id, b.id) {
		return true
	}
	if natural.Less(b.id, a.id) {
		return false
	}

	return a.id < b.id
}

func newRunner(g *core.Graph, source string, cfg Options) *runner {
	ids := g.NodeIDs()
	r := &runner{
		g:         g,
		options:   cfg,
		source:    source,
		ids:       ids,
		index:     make(map[string]int, len(ids)),
		dist:      make(map[string]float64, len(ids)),
		prev:      make(map[string]string, len(ids)),
		unvisited: bitset.New(uint(len(ids))),
		frontier:  btree.NewBTreeG(lessEntry),
		visited:   make([]string, 0, len(ids)),
	}

	// dist[v] = +∞, prev[v] = none, every node unvisited; dist[source] = 0.
	for i, id := range ids {
		r.index[id] = i
		r.dist[id] = math.Inf(1)
		r.prev[id] = ""
		r.unvisited.Set(uint(i))
	}
	r.dist[source] = 0
	r.frontier.Set(entry{dist: 0, id: source})

	return r
}

// process is the main loop. Each iteration finalizes the closest frontier
// node, relaxes its roads and records a Step.
//
// The loop ends when the frontier is empty: every remaining unvisited node
// is at +∞. Nodes beyond MaxDistance never enter the frontier (see relax).
func (r *runner) process() error {
	for iteration := 1; r.frontier.Len() > 0; iteration++ {
		// 1) Select the closest unvisited node.
		item, _ := r.frontier.PopMin()
		u := item.id

		// 2) Snapshot who else is still in the running, then finalize u.
		unvisited := r.unvisitedExcept(u)
		r.unvisited.Clear(uint(r.index[u]))
		r.visited = append(r.visited, u)

		// 3) Relax u's roads.
		relaxed, err := r.relax(u)
		if err != nil {
			return err
		}

		// 4) Record the step.
		step := Step{
			Iteration:   iteration,
			Current:     u,
			Unvisited:   unvisited,
			Visited:     append([]string(nil), r.visited...),
			Updates:     formatUpdates(relaxed),
			Relaxations: relaxed,
			Distances:   maps.Clone(r.dist),
			Previous:    maps.Clone(r.prev),
		}
		r.steps = append(r.steps, step)
		r.options.OnStep(step)
	}

	return nil
}

// relax improves the tentative distance of every unvisited neighbor of u
// reachable through an open road, and returns the improvements in road order.
func (r *runner) relax(u string) ([]Relaxation, error) {
	roads, err := r.g.Incident(u)
	if err != nil {
		return nil, fmt.Errorf("dijkstra: roads of %q: %w", u, err)
	}

	var out []Relaxation
	for _, e := range roads {
		v, _ := e.Other(u)
		if !r.unvisited.Test(uint(r.index[v])) {
			continue
		}
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		alt := r.dist[u] + e.Weight
		if alt > r.options.MaxDistance {
			continue
		}
		old := r.dist[v]
		if alt >= old {
			continue
		}

		// Decrease-key: drop the stale frontier entry before inserting the new one.
		if !math.IsInf(old, 1) {
			r.frontier.Delete(entry{dist: old, id: v})
		}
		r.dist[v] = alt
		r.prev[v] = u
		r.frontier.Set(entry{dist: alt, id: v})
		out = append(out, Relaxation{Node: v, Old: old, New: alt, Via: u})
	}

	return out, nil
}

// unvisitedExcept lists unvisited nodes other than skip, in canonical order.
func (r *runner) unvisitedExcept(skip string) []string {
	out := make([]string, 0, r.unvisited.Count())
	for i, ok := r.unvisited.NextSet(0); ok; i, ok = r.unvisited.NextSet(i + 1) {
		if id := r.ids[i]; id != skip {
			out = append(out, id)
		}
	}

	return out
}

// nearest returns the target-class node with the smallest finite distance.
func (r *runner) nearest(target TargetFunc) (string, bool) {
	var (
		best  entry
		found bool
	)
	for _, n := range r.g.Nodes() {
		if !target(n) {
			continue
		}
		d := r.dist[n.ID]
		if math.IsInf(d, 1) {
			continue
		}
		cand := entry{dist: d, id: n.ID}
		if !found || lessEntry(cand, best) {
			best, found = cand, true
		}
	}

	return best.id, found
}

// pathTo walks the predecessor chain back from id. The walk stops at the
// first node without predecessor, or after |V| hops on a corrupt chain.
func (r *runner) pathTo(id string) []string {
	var rev []string
	for u := id; u != "" && len(rev) <= len(r.ids); u = r.prev[u] {
		rev = append(rev, u)
	}

	path := make([]string, len(rev))
	for i, u := range rev {
		path[len(rev)-1-i] = u
	}

	return path
}

func formatUpdates(relaxed []Relaxation) []string {
	if len(relaxed) == 0 {
		return []string{NoUpdates}
	}
	out := make([]string, len(relaxed))
	for i, rx := range relaxed {
		out[i] = rx.String()
	}

	return out
}
