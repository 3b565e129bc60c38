package crosscheck

import (
	"math"

	"github.com/katalvlaran/ridepath/core"
)

// Table is a dense all-pairs distance table. Rows and columns follow the
// graph's declaration order.
type Table struct {
	ids   []string
	index map[string]int
	d     []float64 // row-major n×n
}

// AllPairs computes every shortest distance of g with Floyd–Warshall.
// Unreachable pairs hold +Inf.
//
// Complexity: O(V³) time, O(V²) memory.
func AllPairs(g *core.Graph) *Table {
	ids := g.NodeIDs()
	n := len(ids)
	t := &Table{ids: ids, index: make(map[string]int, n), d: make([]float64, n*n)}
	for i, id := range ids {
		t.index[id] = i
	}

	// Stage 1: adjacency with +Inf off the diagonal
	inf := math.Inf(1)
	for i := range t.d {
		t.d[i] = inf
	}
	for i := 0; i < n; i++ {
		t.d[i*n+i] = 0
	}
	for _, e := range g.Edges() {
		u, v := t.index[e.From], t.index[e.To]
		if e.Weight < t.d[u*n+v] {
			t.d[u*n+v] = e.Weight
			t.d[v*n+u] = e.Weight
		}
	}

	// Stage 2: closure, fixed k → i → j order
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			baseI := i * n
			ik := t.d[baseI+k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if cand := ik + t.d[baseK+j]; cand < t.d[baseI+j] {
					t.d[baseI+j] = cand
				}
			}
		}
	}

	return t
}

// Distance returns the shortest distance between from and to, or +Inf if
// either is unknown or they are disconnected.
func (t *Table) Distance(from, to string) float64 {
	i, okI := t.index[from]
	j, okJ := t.index[to]
	if !okI || !okJ {
		return math.Inf(1)
	}

	return t.d[i*len(t.ids)+j]
}

// IDs returns the row order.
func (t *Table) IDs() []string {
	return append([]string(nil), t.ids...)
}
