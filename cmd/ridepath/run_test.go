package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridepath/dijkstra"
	"github.com/katalvlaran/ridepath/roadmap"
)

func runArgs(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errb bytes.Buffer
	err := run(context.Background(), append(args, "--color", "never"), &out, &errb)

	return out.String(), errb.String(), err
}

func TestQuery_Text(t *testing.T) {
	out, _, err := runArgs(t, "query", "--source", "U2")
	require.NoError(t, err)
	assert.Contains(t, out, "Route Mahasiswa UIN (U2) → Ojek Depan UIN (D2)")
	assert.Contains(t, out, "Path U2 → I8 → I2 → D2")
	assert.Contains(t, out, "Distance 133.85")
	assert.Contains(t, out, "Iter")
	assert.NotContains(t, out, "\x1b")
}

func TestQuery_PositionalSourceJSON(t *testing.T) {
	out, _, err := runArgs(t, "query", "U3", "--json", "--verify")
	require.NoError(t, err)

	var body struct {
		TargetID string   `json:"targetId"`
		Path     []string `json:"path"`
		Steps    []any    `json:"steps"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, "D4", body.TargetID)
	assert.Equal(t, []string{"U3", "I6", "I3", "D4"}, body.Path)
	assert.Len(t, body.Steps, 20)
}

func TestQuery_DebugLog(t *testing.T) {
	_, logs, err := runArgs(t, "query", "--log.level", "debug", "--log.format", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"message":"query done"`)
	assert.Contains(t, logs, `"target":"D5"`)
}

func TestQuery_GraphFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
nodes:
  - {id: R, role: user, label: Rider}
  - {id: K, role: driver, x: 3, y: 4, label: Ojek}
roads:
  - {from: R, to: K}
`), 0o600))

	out, _, err := runArgs(t, "query", "R", "--graph", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Route Rider (R) → Ojek (K)")
	assert.Contains(t, out, "Distance 5.00")

	_, _, err = runArgs(t, "query", "R", "--graph", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNodesAndExport(t *testing.T) {
	out, _, err := runArgs(t, "nodes")
	require.NoError(t, err)
	assert.Equal(t, 21, strings.Count(out, "\n"), "header plus 20 nodes")
	assert.Contains(t, out, "Warga Mendalo Asri")

	out, _, err = runArgs(t, "export", "--format", "json")
	require.NoError(t, err)
	g, err := roadmap.Decode(strings.NewReader(out), roadmap.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, roadmap.Mendalo().Edges(), g.Edges())

	_, _, err = runArgs(t, "export", "-f", "xml")
	assert.ErrorIs(t, err, roadmap.ErrUnknownFormat)
}

func TestRun_Errors(t *testing.T) {
	var out bytes.Buffer
	assert.ErrorIs(t, run(context.Background(), nil, &out, &out), errUsage)

	_, _, err := runArgs(t, "drive")
	assert.ErrorIs(t, err, errUsage)

	_, _, err = runArgs(t, "query", "--source", "X9")
	assert.ErrorIs(t, err, dijkstra.ErrInvalidSource)

	_, _, err = runArgs(t, "query", "--help")
	assert.ErrorIs(t, err, pflag.ErrHelp)

	_, _, err = runArgs(t, "query", "--log.level", "loud")
	assert.Error(t, err)
}

func TestRun_WarnsAboutIslands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roads.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "nodes": [
    {"id": "R", "role": "user"},
    {"id": "K", "role": "driver", "x": 1},
    {"id": "L", "role": "driver", "x": 9}
  ],
  "roads": [{"from": "R", "to": "K"}]
}`), 0o600))

	_, logs, err := runArgs(t, "nodes", "--graph", path, "--log.format", "json")
	require.NoError(t, err)
	assert.Contains(t, logs, `"message":"nodes unreachable from every rider"`)
	assert.Contains(t, logs, `"nodes":["L"]`)
}
