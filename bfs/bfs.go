package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ridepath/core"
)

// Sentinel errors.
var (
	ErrGraphNil          = errors.New("bfs: graph is nil")
	ErrStartNodeNotFound = errors.New("bfs: start node not found")
)

// Result of a breadth-first walk.
type Result struct {
	// Order lists nodes in visit order, starting node first.
	Order []string
	// Hops maps every reached node to its road count from the start.
	Hops map[string]int
	// Parent maps every reached node except the start to its BFS parent.
	Parent map[string]string
}

// queueItem pairs a node ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker holds the mutable state of one walk.
type walker struct {
	graph *core.Graph
	queue []queueItem
	res   *Result
}

// Walk explores g breadth-first from start.
//
// Complexity: O(V + E).
func Walk(g *core.Graph, start string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph: g,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Hops:   make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")
	w.loop()

	return w.res, nil
}

// enqueue marks id reached at depth d.
func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Hops[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		// Incident cannot fail: item.id was reached through the graph.
		roads, _ := w.graph.Incident(item.id)
		for _, e := range roads {
			nbr, _ := e.Other(item.id)
			if _, seen := w.res.Hops[nbr]; seen {
				continue
			}
			w.enqueue(nbr, item.depth+1, item.id)
		}
	}
}

// Components returns the connected parts of g. Parts are ordered by their
// first node in declaration order, and each part lists its nodes in BFS
// order from that node.
//
// Complexity: O(V + E).
func Components(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	seen := make(map[string]bool, g.Order())
	var parts [][]string
	for _, id := range g.NodeIDs() {
		if seen[id] {
			continue
		}
		res, _ := Walk(g, id)
		for _, v := range res.Order {
			seen[v] = true
		}
		parts = append(parts, res.Order)
	}

	return parts
}

// Unreachable returns, in declaration order, the nodes of g that no node
// with role r can reach.
func Unreachable(g *core.Graph, r core.Role) []string {
	var out []string
	for _, part := range Components(g) {
		hasRole := false
		for _, id := range part {
			if n, err := g.Node(id); err == nil && n.Role == r {
				hasRole = true
				break
			}
		}
		if !hasRole {
			out = append(out, part...)
		}
	}

	return sortByDeclaration(g, out)
}

func sortByDeclaration(g *core.Graph, ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]string, 0, len(ids))
	for _, id := range g.NodeIDs() {
		if want[id] {
			out = append(out, id)
		}
	}

	return out
}
