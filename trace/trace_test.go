package trace_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/dijkstra"
	"github.com/katalvlaran/ridepath/trace"
)

var blanks = regexp.MustCompile(`\s{2,}`)

// cells collapses column padding to "|" so rows can be compared by content.
func cells(out string) []string {
	var lines []string
	for _, l := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		lines = append(lines, blanks.ReplaceAllString(strings.TrimSpace(l), "|"))
	}

	return lines
}

func chain(t *testing.T) (*core.Graph, *dijkstra.Result) {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "A", Role: core.RoleOrigin, Label: "Rider"}))
	require.NoError(t, g.AddNode(core.Node{ID: "B", Role: core.RoleWaypoint}))
	require.NoError(t, g.AddNode(core.Node{ID: "C", Role: core.RoleTarget, Label: "Driver"}))
	_, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 3)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "C", 10)
	require.NoError(t, err)

	res, err := dijkstra.ComputeNearest(g, "A", nil)
	require.NoError(t, err)

	return g, res
}

func TestRenderSteps(t *testing.T) {
	_, res := chain(t)

	var buf bytes.Buffer
	require.NoError(t, trace.RenderSteps(&buf, res.Steps, trace.Plain))

	assert.Equal(t, []string{
		"Iter|Current|Unvisited|Visited|Updates",
		"1|A|B, C|A|B: ∞ → 5 (via A); C: ∞ → 10 (via A)",
		"2|B|C|A, B|C: 10 → 8 (via B)",
		"3|C|None|A, B, C|-",
	}, cells(buf.String()))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, strings.Index(lines[0], "Current"), strings.Index(lines[1], "A"), "columns are aligned")
	assert.Equal(t, strings.Index(lines[0], "Unvisited"), strings.Index(lines[3], "None"))
	assert.NotContains(t, buf.String(), "\x1b")
}

func TestRenderSteps_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, trace.RenderSteps(&buf, nil, trace.Plain))
	assert.Equal(t, []string{"Iter|Current|Unvisited|Visited|Updates"}, cells(buf.String()))
}

func TestRenderRoute(t *testing.T) {
	g, res := chain(t)

	var buf bytes.Buffer
	require.NoError(t, trace.RenderRoute(&buf, g, res, trace.Plain))

	assert.Equal(t, []string{
		"Route Rider (A) → Driver (C)",
		"Path A → B → C",
		"Distance 8.00",
		"",
		"#|From|To|Road|Length",
		"1|A|B|e1|5.00",
		"2|B|C|e2|3.00",
		"total|8.00",
	}, cells(buf.String()))
}

func TestRenderRoute_SourceIsTarget(t *testing.T) {
	g, _ := chain(t)
	res, err := dijkstra.ComputeNearest(g, "C", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, trace.RenderRoute(&buf, g, res, trace.Plain))
	assert.Equal(t, "Route Driver (C) → Driver (C)\nPath C\nDistance 0.00\n\n", buf.String())
}

func TestRenderRoute_NotFound(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(core.Node{ID: "U", Role: core.RoleOrigin}))
	require.NoError(t, g.AddNode(core.Node{ID: "D", Role: core.RoleTarget}))
	res, err := dijkstra.ComputeNearest(g, "U", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, trace.RenderRoute(&buf, g, res, trace.Plain))
	assert.Equal(t, "no driver reachable from U\n", buf.String())

	assert.ErrorIs(t, trace.RenderRoute(&buf, nil, res, trace.Plain), dijkstra.ErrNilGraph)
}

func TestStyle_Colored(t *testing.T) {
	g, res := chain(t)
	st := trace.NewStyle(termenv.ANSI)
	require.True(t, st.Colored())
	require.False(t, trace.Plain.Colored())

	var buf bytes.Buffer
	require.NoError(t, trace.RenderSteps(&buf, res.Steps, st))
	require.NoError(t, trace.RenderRoute(&buf, g, res, st))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "C: 10 → 8 (via B)")
}

func TestDetect_NonTerminal(t *testing.T) {
	t.Setenv("CLICOLOR_FORCE", "")
	assert.False(t, trace.Detect(&bytes.Buffer{}).Colored())
}

func TestRenderNodes(t *testing.T) {
	g, _ := chain(t)

	var buf bytes.Buffer
	require.NoError(t, trace.RenderNodes(&buf, g, trace.Plain))
	assert.Equal(t, []string{
		"ID|Role|X|Y|Label",
		"A|user|0|0|Rider",
		"B|intersection|0|0",
		"C|driver|0|0|Driver",
	}, cells(buf.String()))
}
