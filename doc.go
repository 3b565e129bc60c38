// Package ridepath finds the nearest available driver for a rider on a
// small road network and explains how it got there.
//
// 🚀 What is ridepath?
//
//	A deterministic shortest-path engine plus everything needed to use it:
//		• Core primitives: nodes with roles (user, driver, intersection) and
//		  undirected weighted roads under an RWMutex
//		• Search: Dijkstra to the nearest node matching a predicate, with a
//		  per-iteration trace (current, unvisited, visited, relaxations)
//		• Data: the built-in Mendalo network, YAML/JSON graph files
//		• Verification: an independent gonum-based cross-check
//		• Surfaces: terminal trace tables, a JSON HTTP API and a CLI
//
// ✨ Guarantees
//
//   - Same graph and source, same result and same trace, byte for byte.
//   - Equal distances are broken by natural node-ID order (I2 before I10).
//   - "No driver reachable" is a valid result, never an error.
//
// Packages:
//
//	core/        Graph, Node, Edge, roles, validation
//	dijkstra/    ComputeNearest, Result, Step, options
//	roadmap/     Mendalo dataset, weight functions, graph files
//	crosscheck/  Verify a Result against gonum
//	trace/       step, route and node tables for terminals
//	server/      HTTP API with a per-source result cache
//	config/      koanf-layered settings
//	logging/     zerolog setup and request-id middleware
//	cmd/ridepath the CLI
//
// Quick ASCII example:
//
//	    U───5───I───3───D1
//	     \             /
//	      ─────10──────
//
//	the rider U reaches D1 at distance 8 through I.
//
//	go install github.com/katalvlaran/ridepath/cmd/ridepath@latest
package ridepath
