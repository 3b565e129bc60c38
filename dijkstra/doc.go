// Package dijkstra implements the nearest-service-node engine: single-source
// shortest-path search over an undirected core.Graph with non-negative
// weights, followed by the choice of the closest node of a target class and a
// complete per-iteration trace of the search.
//
// Overview:
//
//   - ComputeNearest(g, source, target) finalizes nodes in increasing distance
//     from source, relaxing the roads of each finalized node, and records one
//     immutable Step per iteration: the finalized node, the nodes still in the
//     running, the visit sequence so far and the relaxations performed.
//   - After the search, the node satisfying target with the smallest finite
//     distance is chosen and its path is rebuilt from the predecessor map.
//   - An unreachable target class is a valid outcome (Result.Found() == false),
//     not an error.
//
// Determinism:
//
//   - Ties among frontier nodes with equal distance are broken by the lowest
//     node ID in natural order ("I2" before "I10"). The same rule picks among
//     equally distant targets. Two calls with identical inputs return identical
//     Results.
//   - Unvisited snapshots list nodes in the graph's declaration order.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V). The frontier is an ordered set keyed by
//     (distance, ID) holding only unvisited nodes with a finite tentative
//     distance; a decrease-key is a delete followed by an insert.
//   - Space: O(V) for the search state plus O(V²) for the trace, since every
//     Step carries its own copies of the unvisited/visited lists and of the
//     distance and predecessor tables.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:      the graph pointer is nil.
//   - ErrInvalidSource: the source ID is empty or not a node of the graph.
//   - ErrInvalidGraph:  g.Validate() rejected the graph (wraps the core error).
//
// All validation happens before the search starts; no partial Result is ever
// returned alongside an error.
//
// Options:
//
//   - WithMaxDistance(d):       never finalize nodes farther than d from source.
//   - WithInfEdgeThreshold(t):  treat roads with weight ≥ t as closed.
//   - WithOnStep(fn):           observe each Step as soon as it is recorded.
//
// Thread safety:
//
//   - ComputeNearest allocates all of its state per call and only reads the
//     graph (under its read lock), so concurrent queries on a shared graph are
//     safe.
package dijkstra
