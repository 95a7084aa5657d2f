package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

func TestGraphJSON_RoundTrip(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddNode(core.Node{ID: "A", Label: "start", X: 1, Y: 2}))
	require.NoError(t, g.AddNode(core.Node{ID: "B", X: 4, Y: 6, Blocked: true}))
	_, err := g.AddEdge("A", "B", -2)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 7, core.WithEdgeDirected(false))
	require.NoError(t, err)

	data, err := json.Marshal(g)
	require.NoError(t, err)

	var back core.Graph
	require.NoError(t, json.Unmarshal(data, &back))

	assert.True(t, back.Directed())
	assert.Equal(t, g.NodeIDs(), back.NodeIDs())
	a, _ := back.Node("A")
	assert.Equal(t, "start", a.Label)
	assert.Equal(t, 2.0, a.Y)
	assert.True(t, back.IsBlocked("B"))

	require.Len(t, back.Edges(), 2)
	for i, e := range g.Edges() {
		be := back.Edges()[i]
		assert.Equal(t, e.ID, be.ID)
		assert.Equal(t, e.Weight, be.Weight)
		assert.Equal(t, e.Directed, be.Directed)
	}
	// adjacency is rebuilt, including the mirrored undirected edge
	assert.Len(t, back.Neighbors("A"), 2)
	assert.Len(t, back.Neighbors("B"), 1)
}

func TestGraphJSON_SkipsDanglingEdges(t *testing.T) {
	doc := `{"directed":false,"weighted":true,
		"nodes":[{"id":"A","x":0,"y":0},{"id":"B","x":1,"y":0}],
		"edges":[{"id":"e1","source":"A","target":"B","weight":1},
		         {"id":"e2","source":"A","target":"ghost","weight":1}]}`

	var g core.Graph
	require.NoError(t, json.Unmarshal([]byte(doc), &g))
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasNode("ghost"))
}

func TestGraphJSON_Malformed(t *testing.T) {
	var g core.Graph
	err := json.Unmarshal([]byte(`{"nodes":[{"id":""}]}`), &g)
	assert.ErrorIs(t, err, core.ErrBadFormat)
}
