// Package bfs walks a core.Graph breadth-first, ignoring road weights.
//
// Walk returns hop counts, parent links and the visit order from a start
// node; Components partitions the graph into connected parts. Both visit
// neighbors in road insertion order, so results are deterministic.
//
// The road graph is small and immutable during a walk; there is no context
// or hook plumbing here. Use dijkstra for weighted distances.
package bfs
