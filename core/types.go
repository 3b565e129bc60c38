// File: types.go
// Role: Node, Edge, Role and Graph declarations, sentinel errors, constructor.
// Concurrency:
//   - Graph.mu guards every field below it; Node and Edge values handed out by
//     the Graph are copies and may be used freely by callers.

package core

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates an attempt to add a node whose ID is already taken.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrUnknownRole indicates a role string outside the fixed role set.
	ErrUnknownRole = errors.New("core: unknown node role")

	// ErrInvalidGraph indicates a structural defect found by Validate.
	ErrInvalidGraph = errors.New("core: invalid graph")
)

// Role is the category tag of a Node. The set is fixed.
type Role string

const (
	// RoleOrigin marks nodes a rider can be picked up from.
	RoleOrigin Role = "user"

	// RoleTarget marks service nodes (drivers) eligible as destinations.
	RoleTarget Role = "driver"

	// RoleWaypoint marks intersections and landmarks that only route traffic.
	RoleWaypoint Role = "intersection"
)

// Roles lists every valid Role in display order.
var Roles = []Role{RoleOrigin, RoleTarget, RoleWaypoint}

// ParseRole maps a case-insensitive role name onto a Role.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleOrigin, RoleTarget, RoleWaypoint:
		return r, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// Valid reports whether r is one of the fixed roles.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Node is a point of the road network.
//
// Only ID and Role matter to shortest-path search; X, Y, Label and Avatar are
// display metadata carried along for renderers.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Role is the category tag (user, driver, intersection).
	Role Role

	// X and Y are display coordinates.
	X, Y float64

	// Label is a human-readable name.
	Label string

	// Avatar is an optional image URL for origin nodes.
	Avatar string
}

// Edge is an undirected road between two nodes.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From and To are the endpoint node IDs. The order is the declaration
	// order only; the edge is traversable both ways.
	From string
	To   string

	// Weight is the non-negative traversal cost.
	Weight float64
}

// Other returns the endpoint of e opposite to id, and false if id is not an
// endpoint of e. For a self-loop the same id is returned.
func (e Edge) Other(id string) (string, bool) {
	switch id {
	case e.From:
		return e.To, true
	case e.To:
		return e.From, true
	}

	return "", false
}

// Joins reports whether e connects a and b (in either direction).
func (e Edge) Joins(a, b string) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Graph is the in-memory road network.
//
// order keeps node declaration order; incident[id] lists edges touching id in
// edge declaration order (a self-loop is listed once).
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64
	order      []string
	nodes      map[string]*Node
	edges      []*Edge
	incident   map[string][]*Edge
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		incident: make(map[string][]*Edge),
	}
}
