package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridepath/bfs"
	"github.com/katalvlaran/ridepath/core"
	"github.com/katalvlaran/ridepath/roadmap"
)

// islands builds U-I-D plus an isolated pair X-Y and a lone driver Z.
func islands(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range []core.Node{
		{ID: "U", Role: core.RoleOrigin},
		{ID: "I", Role: core.RoleWaypoint},
		{ID: "D", Role: core.RoleTarget},
		{ID: "X", Role: core.RoleWaypoint},
		{ID: "Y", Role: core.RoleTarget},
		{ID: "Z", Role: core.RoleTarget},
	} {
		require.NoError(t, g.AddNode(n))
	}
	for _, r := range [][2]string{{"U", "I"}, {"I", "D"}, {"U", "D"}, {"X", "Y"}} {
		_, err := g.AddEdge(r[0], r[1], 100)
		require.NoError(t, err)
	}

	return g
}

func TestWalk(t *testing.T) {
	res, err := bfs.Walk(islands(t), "U")
	require.NoError(t, err)

	assert.Equal(t, []string{"U", "I", "D"}, res.Order)
	assert.Equal(t, map[string]int{"U": 0, "I": 1, "D": 1}, res.Hops, "weights are ignored")
	assert.Equal(t, map[string]string{"I": "U", "D": "U"}, res.Parent)
}

func TestWalk_Errors(t *testing.T) {
	_, err := bfs.Walk(nil, "U")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.Walk(islands(t), "Q")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestComponents(t *testing.T) {
	g := islands(t)
	assert.Equal(t, [][]string{{"U", "I", "D"}, {"X", "Y"}, {"Z"}}, bfs.Components(g))
	assert.Nil(t, bfs.Components(nil))

	assert.Equal(t, []string{"X", "Y", "Z"}, bfs.Unreachable(g, core.RoleOrigin))
	assert.Nil(t, bfs.Unreachable(g, core.RoleTarget))
}

func TestComponents_Mendalo(t *testing.T) {
	g := roadmap.Mendalo()
	parts := bfs.Components(g)
	require.Len(t, parts, 1)
	assert.Len(t, parts[0], g.Order())

	res, err := bfs.Walk(g, "U1")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Hops["D5"])
	assert.Equal(t, 1, res.Hops["I9"])
}
