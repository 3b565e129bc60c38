// Package roadmap supplies road graphs to the engine and to renderers.
//
// The package offers the following key components:
//
//   - Built-in dataset:
//     – Mendalo():  the Mendalo Darat (Jambi) network with 3 riders, 8 drivers
//     and 9 intersections joined by 22 roads.
//   - Edge-weight functions (WeightFn implementations):
//     – Euclidean:  straight-line distance between node coordinates (default).
//     – Manhattan:  |dx| + |dy|.
//     – Constant:   fixed user-provided value.
//   - Graph files:
//     – Spec:       the declarative node/road list.
//     – Decode / Load: YAML (goccy/go-yaml) or JSON (goccy/go-json) into a
//     validated *core.Graph; roads without an explicit weight get WeightFn.
//     – SpecOf / Encode: the reverse direction, for exporting a graph.
//
// Guarantees:
//
//   - Every graph returned by this package has passed core.Graph.Validate.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     decoding problems are returned as errors wrapping ErrDecode.
package roadmap
