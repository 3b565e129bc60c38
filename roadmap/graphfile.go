package roadmap

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/katalvlaran/ridepath/core"
)

// Sentinel errors for graph files.
var (
	// ErrUnknownFormat indicates a file extension or format name other than
	// yaml/yml/json.
	ErrUnknownFormat = errors.New("roadmap: unknown graph file format")

	// ErrDecode indicates the file contents could not be decoded.
	ErrDecode = errors.New("roadmap: cannot decode graph file")
)

// Format names a graph file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat maps a format name or file extension ("yml", ".json", …) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// NodeSpec declares one node of a graph file.
type NodeSpec struct {
	ID     string  `json:"id" yaml:"id"`
	Role   string  `json:"role" yaml:"role"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Label  string  `json:"label,omitempty" yaml:"label,omitempty"`
	Avatar string  `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

// RoadSpec declares one road. A nil Weight is derived with the WeightFn.
type RoadSpec struct {
	From   string   `json:"from" yaml:"from"`
	To     string   `json:"to" yaml:"to"`
	Weight *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
}

// Spec is the declarative form of a road graph.
type Spec struct {
	Nodes []NodeSpec `json:"nodes" yaml:"nodes"`
	Roads []RoadSpec `json:"roads" yaml:"roads"`
}

// Build turns s into a validated graph. Every defect (unknown role, dangling
// road, negative weight, duplicate ID) is reported in a single error wrapping
// core.ErrInvalidGraph.
//
// Complexity: O(V + E).
func Build(s Spec, opts ...Option) (*core.Graph, error) {
	cfg := applyOptions(opts)

	var roleErrs []error
	nodes := make([]core.Node, 0, len(s.Nodes))
	byID := make(map[string]core.Node, len(s.Nodes))
	for _, ns := range s.Nodes {
		role, err := core.ParseRole(ns.Role)
		if err != nil {
			roleErrs = append(roleErrs, fmt.Errorf("node %s: %w", ns.ID, err))
		}
		n := core.Node{ID: ns.ID, Role: role, X: ns.X, Y: ns.Y, Label: ns.Label, Avatar: ns.Avatar}
		nodes = append(nodes, n)
		if _, seen := byID[n.ID]; !seen {
			byID[n.ID] = n
		}
	}

	edges := make([]core.Edge, 0, len(s.Roads))
	for _, rs := range s.Roads {
		e := core.Edge{From: rs.From, To: rs.To}
		a, okA := byID[rs.From]
		b, okB := byID[rs.To]
		switch {
		case rs.Weight != nil:
			e.Weight = *rs.Weight
		case okA && okB:
			e.Weight = cfg.weightFn(a, b)
		}
		edges = append(edges, e)
	}

	if len(roleErrs) > 0 {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidGraph, errors.Join(roleErrs...))
	}
	g := core.Assemble(nodes, edges)
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// SpecOf returns the declarative form of g with every weight made explicit.
func SpecOf(g *core.Graph) Spec {
	var s Spec
	for _, n := range g.Nodes() {
		s.Nodes = append(s.Nodes, NodeSpec{
			ID: n.ID, Role: string(n.Role), X: n.X, Y: n.Y, Label: n.Label, Avatar: n.Avatar,
		})
	}
	for _, e := range g.Edges() {
		w := e.Weight
		s.Roads = append(s.Roads, RoadSpec{From: e.From, To: e.To, Weight: &w})
	}

	return s
}

// Decode reads a Spec encoded as f from r and builds the graph.
func Decode(r io.Reader, f Format, opts ...Option) (*core.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var s Spec
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &s)
	case FormatJSON:
		err = json.Unmarshal(data, &s)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return Build(s, opts...)
}

// Load opens path, picks the format from its extension and decodes it.
func Load(path string, opts ...Option) (*core.Graph, error) {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roadmap: read %s: %w", path, err)
	}
	g, err := Decode(bytes.NewReader(data), f, opts...)
	if err != nil {
		return nil, fmt.Errorf("roadmap: %s: %w", path, err)
	}

	return g, nil
}

// Encode writes g as a Spec in format f.
func Encode(w io.Writer, g *core.Graph, f Format) error {
	s := SpecOf(g)

	var (
		data []byte
		err  error
	)
	switch f {
	case FormatYAML:
		data, err = yaml.Marshal(s)
	case FormatJSON:
		data, err = json.MarshalIndent(s, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("roadmap: encode: %w", err)
	}
	_, err = w.Write(data)

	return err
}
