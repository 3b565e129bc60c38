// File: assemble.go
// Role: Unchecked bulk construction, structural validation, cloning.
//
// Assemble mirrors how static datasets are declared (a node list and an edge
// list written side by side) and therefore performs no checks; Validate is the
// gate every consumer of such a graph is expected to call.

package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Assemble builds a Graph from raw node and edge lists without validating
// them. Edges with an empty ID are numbered sequentially. Use Validate before
// handing the result to an algorithm.
//
// Complexity: O(V + E).
func Assemble(nodes []Node, edges []Edge) *Graph {
	g := NewGraph()
	for i := range nodes {
		cp := nodes[i]
		g.nodes[cp.ID] = &cp
		g.order = append(g.order, cp.ID)
	}
	for i := range edges {
		g.nextEdgeID++
		e := edges[i]
		if e.ID == "" {
			e.ID = "e" + strconv.FormatUint(g.nextEdgeID, 10)
		}
		p := &e
		g.edges = append(g.edges, p)
		g.incident[e.From] = append(g.incident[e.From], p)
		if e.To != e.From {
			g.incident[e.To] = append(g.incident[e.To], p)
		}
	}

	return g
}

// Validate checks the structural invariants of the graph:
//
//   - every node has a non-empty, unique ID and a known Role;
//   - every edge references existing nodes;
//   - every weight is a finite non-negative number.
//
// All defects are reported at once, joined, and wrapped in ErrInvalidGraph.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []error
	seen := make(map[string]struct{}, len(g.order))
	for _, id := range g.order {
		if id == "" {
			errs = append(errs, ErrEmptyNodeID)
			continue
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateNode, id))
			continue
		}
		seen[id] = struct{}{}
		if r := g.nodes[id].Role; !r.Valid() {
			errs = append(errs, fmt.Errorf("%w: node %s has role %q", ErrUnknownRole, id, r))
		}
	}
	for _, e := range g.edges {
		if _, ok := g.nodes[e.From]; !ok {
			errs = append(errs, fmt.Errorf("edge %s: %w: %s", e.ID, ErrNodeNotFound, e.From))
		}
		if _, ok := g.nodes[e.To]; !ok {
			errs = append(errs, fmt.Errorf("edge %s: %w: %s", e.ID, ErrNodeNotFound, e.To))
		}
		if err := checkWeight(e.Weight); err != nil {
			errs = append(errs, fmt.Errorf("edge %s: %w", e.ID, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidGraph, errors.Join(errs...))
}

// Clone returns a deep copy of the graph. Edge IDs and declaration order are
// preserved; the copy shares no memory with g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		nodes = append(nodes, *g.nodes[id])
	}
	edges := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		edges = append(edges, *e)
	}
	out := Assemble(nodes, edges)
	out.nextEdgeID = g.nextEdgeID

	return out
}
