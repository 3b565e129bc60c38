package roadmap_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/dijkstra"
	"github.com/katalvlaran/ridepath/roadmap"
)

func TestMendalo_Shape(t *testing.T) {
	g := roadmap.Mendalo()

	assert.Equal(t, 20, g.Order())
	assert.Equal(t, 22, g.Size())
	assert.Len(t, g.NodesByRole(core.RoleOrigin), 3)
	assert.Len(t, g.NodesByRole(core.RoleTarget), 8)
	assert.Len(t, g.NodesByRole(core.RoleWaypoint), 9)
	require.NoError(t, g.Validate())

	e, ok := g.EdgeBetween("I4", "D5")
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt(800), e.Weight, 1e-9)
}

// TestMendalo_NearestDrivers pins the answer for every rider of the dataset.
func TestMendalo_NearestDrivers(t *testing.T) {
	g := roadmap.Mendalo()

	cases := []struct {
		rider  string
		driver string
		path   []string
		dist   float64
	}{
		{"U1", "D5", []string{"U1", "I9", "I4", "D5"}, 80 + math.Sqrt(800)},
		{"U2", "D2", []string{"U2", "I8", "I2", "D2"}, 80 + math.Sqrt(2900)},
		{"U3", "D4", []string{"U3", "I6", "I3", "D4"}, 30 + 150 + math.Sqrt(2900)},
	}
	for _, tc := range cases {
		t.Run(tc.rider, func(t *testing.T) {
			res, err := dijkstra.ComputeNearest(g, tc.rider, dijkstra.IsDriver)
			require.NoError(t, err)
			assert.Equal(t, tc.driver, res.Target)
			assert.Equal(t, tc.path, res.Path)
			assert.InDelta(t, tc.dist, res.Distance, 1e-9)
			assert.Len(t, res.Steps, g.Order(), "the network is connected")
		})
	}
}

func TestWeightFns(t *testing.T) {
	a := core.Node{X: 0, Y: 0}
	b := core.Node{X: 3, Y: 4}

	assert.Equal(t, 5.0, roadmap.Euclidean(a, b))
	assert.Equal(t, 7.0, roadmap.Manhattan(a, b))
	assert.Equal(t, 2.5, roadmap.Constant(2.5)(a, b))
	assert.Panics(t, func() { roadmap.Constant(-1) })
	assert.Panics(t, func() { roadmap.WithWeightFn(nil) })

	g := roadmap.Mendalo(roadmap.WithWeightFn(roadmap.Constant(1)))
	res, err := dijkstra.ComputeNearest(g, "U1", nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Distance, "three hops with unit weights")
}

const yamlGraph = `
nodes:
  - {id: U, role: user, x: 0, y: 0}
  - {id: I, role: intersection, x: 3, y: 0}
  - {id: D, role: driver, x: 3, y: 4}
roads:
  - {from: U, to: I}
  - {from: I, to: D, weight: 10}
`

func TestDecode_YAML(t *testing.T) {
	g, err := roadmap.Decode(strings.NewReader(yamlGraph), roadmap.FormatYAML)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, 3.0, edges[0].Weight, "derived from coordinates")
	assert.Equal(t, 10.0, edges[1].Weight, "explicit weight wins")
}

func TestDecode_JSON(t *testing.T) {
	src := `{"nodes":[{"id":"U","role":"user"},{"id":"D","role":"driver","x":6,"y":8}],
	         "roads":[{"from":"U","to":"D"}]}`

	g, err := roadmap.Decode(strings.NewReader(src), roadmap.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 10.0, g.Edges()[0].Weight)
}

func TestDecode_Errors(t *testing.T) {
	_, err := roadmap.Decode(strings.NewReader("{"), roadmap.FormatJSON)
	assert.ErrorIs(t, err, roadmap.ErrDecode)

	_, err = roadmap.Decode(strings.NewReader(""), "toml")
	assert.ErrorIs(t, err, roadmap.ErrUnknownFormat)

	bad := `
nodes:
  - {id: U, role: rider}
  - {id: D, role: driver}
roads:
  - {from: U, to: X}
`
	_, err = roadmap.Decode(strings.NewReader(bad), roadmap.FormatYAML)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrUnknownRole)

	dangling := `
nodes:
  - {id: U, role: user}
roads:
  - {from: U, to: X, weight: -2}
`
	_, err = roadmap.Decode(strings.NewReader(dangling), roadmap.FormatYAML)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.ErrorIs(t, err, core.ErrBadWeight)
}

func TestEncodeLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	orig := roadmap.Mendalo()

	for _, f := range []roadmap.Format{roadmap.FormatYAML, roadmap.FormatJSON} {
		var buf bytes.Buffer
		require.NoError(t, roadmap.Encode(&buf, orig, f))

		path := filepath.Join(dir, "mendalo."+string(f))
		require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

		g, err := roadmap.Load(path)
		require.NoError(t, err, f)
		assert.Equal(t, orig.Nodes(), g.Nodes(), f)
		assert.Equal(t, orig.Edges(), g.Edges(), f)
	}

	_, err := roadmap.Load(filepath.Join(dir, "graph.txt"))
	assert.ErrorIs(t, err, roadmap.ErrUnknownFormat)
	_, err = roadmap.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]roadmap.Format{".yml": roadmap.FormatYAML, "YAML": roadmap.FormatYAML, ".json": roadmap.FormatJSON} {
		got, err := roadmap.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
