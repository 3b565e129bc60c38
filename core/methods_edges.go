// File: methods_edges.go
// Role: Edge lifecycle & neighborhood queries.
//
// Determinism:
//   - Edges() and Incident() follow edge declaration order (== Edge.ID order).
//
// Concurrency:
//   - Writers take g.mu; readers take g.mu.RLock.

package core

import (
	"fmt"
	"math"
	"strconv"
)

// AddEdge connects from and to with an undirected road of weight w.
//
// Implementation:
//   - Stage 1: Validate the weight (ErrBadWeight for negative, NaN or +Inf).
//   - Stage 2: Under the write lock, validate both endpoints (ErrEmptyNodeID, ErrNodeNotFound).
//   - Stage 3: Allocate the next sequential ID and register the edge in the
//     catalog and in both endpoints' incidence lists (once for a self-loop).
//
// Behavior highlights:
//   - Parallel roads between the same endpoints are accepted; shortest-path
//     search simply relaxes through the cheaper one.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(from, to string, w float64) (Edge, error) {
	if err := checkWeight(w); err != nil {
		return Edge{}, fmt.Errorf("edge %s-%s: %w", from, to, err)
	}
	if from == "" || to == "" {
		return Edge{}, ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[from]; !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrNodeNotFound, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return Edge{}, fmt.Errorf("%w: %s", ErrNodeNotFound, to)
	}

	g.nextEdgeID++
	e := &Edge{
		ID:     "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:   from,
		To:     to,
		Weight: w,
	}
	g.edges = append(g.edges, e)
	g.incident[from] = append(g.incident[from], e)
	if to != from {
		g.incident[to] = append(g.incident[to], e)
	}

	return *e, nil
}

// Edges returns copies of all edges in declaration order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}

	return out
}

// Size returns |E|.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Incident returns copies of the edges touching id, in declaration order.
//
// Errors:
//   - ErrEmptyNodeID: if id == "".
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Incident(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	list := g.incident[id]
	out := make([]Edge, 0, len(list))
	for _, e := range list {
		out = append(out, *e)
	}

	return out, nil
}

// EdgeBetween returns the cheapest edge joining a and b. When parallel roads
// share the minimal weight the earliest declared one wins.
func (g *Graph) EdgeBetween(a, b string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var best *Edge
	for _, e := range g.incident[a] {
		if !e.Joins(a, b) {
			continue
		}
		if best == nil || e.Weight < best.Weight {
			best = e
		}
	}
	if best == nil {
		return Edge{}, false
	}

	return *best, true
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%w: got %v", ErrBadWeight, w)
	}

	return nil
}
