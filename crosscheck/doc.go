// Package crosscheck verifies a dijkstra.Result against an independent
// shortest-path computation.
//
// Verify rebuilds the road graph as a gonum
// graph/simple.WeightedUndirectedGraph, runs gonum's graph/path.DijkstraFrom
// from the result's source and compares every distance. It then checks the
// result's own consistency: the path endpoints, road adjacency along the path,
// the segment sum against Distance and the trace against VisitOrder.
//
// All violations found are reported together in one error wrapping
// ErrMismatch.
package crosscheck
