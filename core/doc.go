// Package core provides the thread-safe, in-memory road graph consumed by the
// shortest-path engine and by the presentation collaborators.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected edges only: a road is traversable both ways at the same cost.
//   - Non-negative float64 weights (distances along the road).
//   - Every Node carries a Role (user / driver / intersection) and display
//     coordinates that the algorithm itself never reads.
//   - Declaration order is preserved: Nodes() and NodeIDs() return nodes in the
//     order they were added, Edges() returns edges in the order they were added.
//   - Sequential Edge.ID generation (“e1”, “e2”, …).
//   - A single sync.RWMutex guards the whole catalog so a static graph can be
//     shared by concurrent read-only queries.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error                          // O(1)
//	HasNode(id string) bool                        // O(1)
//	Node(id string) (Node, error)                  // O(1)
//	Nodes() []Node / NodeIDs() []string            // O(V)
//	NodesByRole(r Role) []Node                     // O(V)
//
//	// Edge lifecycle
//	AddEdge(from, to string, w float64) (Edge, error) // O(1)
//	Edges() []Edge                                 // O(E)
//	Incident(id string) ([]Edge, error)            // O(deg(v))
//	EdgeBetween(a, b string) (Edge, bool)          // O(deg(a))
//
//	// Whole-graph helpers
//	Validate() error                               // O(V+E)
//	Clone() *Graph                                 // O(V+E)
//
// Errors:
//
//	ErrEmptyNodeID    - node ID is the empty string.
//	ErrDuplicateNode  - a node with the same ID already exists.
//	ErrNodeNotFound   - requested node does not exist.
//	ErrBadWeight      - negative or NaN edge weight.
//	ErrUnknownRole    - role string is not one of user/driver/intersection.
//	ErrInvalidGraph   - Validate found a structural defect.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddNode(core.Node{ID: "U1", Role: core.RoleOrigin})
//	_ = g.AddNode(core.Node{ID: "D1", Role: core.RoleTarget})
//	_, _ = g.AddEdge("U1", "D1", 42)
package core
