package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanmayjayanthi2005-droid/Graph-Algorithm-Visualizer/core"
)

// neighborIDs flattens Neighbors(id) into IDs for compact assertions.
func neighborIDs(g *core.Graph, id string) []string {
	var ids []string
	for _, nb := range g.Neighbors(id) {
		ids = append(ids, nb.ID)
	}

	return ids
}

// ---- 1. Node lifecycle ----

func TestAddNode_Validation(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddNode(core.Node{}), core.ErrEmptyNodeID)

	require.NoError(t, g.AddNode(core.Node{ID: "A", X: 3, Y: 4}))
	n, ok := g.Node("A")
	require.True(t, ok)
	assert.Equal(t, "A", n.Label, "label defaults to ID")
	assert.NotNil(t, n.Meta)
}

func TestAddNode_ReplaceKeepsAdjacency(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	require.NoError(t, g.AddNode(core.Node{ID: "A", Label: "start", X: 10}))
	n, _ := g.Node("A")
	assert.Equal(t, "start", n.Label)
	assert.Equal(t, []string{"B"}, neighborIDs(g, "A"))
}

func TestRemoveNode_DropsIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 1)
	_, _ = g.AddEdge("A", "C", 1)

	require.NoError(t, g.RemoveNode("B"))
	assert.False(t, g.HasNode("B"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, []string{"C"}, neighborIDs(g, "A"))
	assert.Equal(t, []string{"A"}, neighborIDs(g, "C"))

	err := g.RemoveNode("B")
	assert.True(t, errors.Is(err, core.ErrNodeNotFound))
}

func TestBlockedFlags(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.CreateNode("A", 0, 0))

	require.NoError(t, g.SetBlocked("A", true))
	assert.True(t, g.IsBlocked("A"))
	v, err := g.ToggleBlocked("A")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = g.ToggleBlocked("Z")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.False(t, g.IsBlocked("Z"))
}

// ---- 2. Edge lifecycle & adjacency invariant ----

func TestAddEdge_UndirectedMirrorsAdjacency(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	assert.Equal(t, "e1", id)

	assert.Equal(t, []string{"B"}, neighborIDs(g, "A"))
	assert.Equal(t, []string{"A"}, neighborIDs(g, "B"))
	e, ok := g.EdgeBetween("B", "A")
	require.True(t, ok)
	assert.Equal(t, id, e.ID)
	assert.Equal(t, 2.5, e.Weight)
}

func TestAddEdge_DirectedIsOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)

	assert.Equal(t, []string{"B"}, neighborIDs(g, "A"))
	assert.Empty(t, neighborIDs(g, "B"))
	_, ok := g.EdgeBetween("B", "A")
	assert.False(t, ok)
}

func TestAddEdge_PerEdgeOverrideAndExplicitID(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, core.WithEdgeDirected(true), core.WithEdgeID("ab"))
	require.NoError(t, err)
	assert.Empty(t, neighborIDs(g, "B"))

	_, err = g.AddEdge("B", "C", 1, core.WithEdgeID("ab"))
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	_, err = g.AddEdge("", "C", 1)
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
}

func TestAddEdge_GeneratedIDSkipsImportedSlot(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1, core.WithEdgeID("e2"))
	require.NoError(t, err)
	id, err := g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	assert.NotEqual(t, "e2", id)
}

func TestRemoveEdge_UpdatesBothEndpoints(t *testing.T) {
	g := core.NewGraph()
	id, _ := g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("A", "C", 1)

	require.NoError(t, g.RemoveEdge(id))
	assert.Equal(t, []string{"C"}, neighborIDs(g, "A"))
	assert.Empty(t, neighborIDs(g, "B"))
	assert.ErrorIs(t, g.RemoveEdge(id), core.ErrEdgeNotFound)
}

func TestEdgesCreationOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, _ = g.AddEdge("hub", string(rune('a'+i)), float64(i))
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, float64(i), e.Weight, "edge %s out of creation order", e.ID)
	}
}

func TestEdgeBetween_FirstMatchWins(t *testing.T) {
	g := core.NewGraph()
	first, _ := g.AddEdge("A", "B", 5)
	_, _ = g.AddEdge("A", "B", 1)

	e, ok := g.EdgeBetween("A", "B")
	require.True(t, ok)
	assert.Equal(t, first, e.ID)
}

func TestPathCost(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2.5)

	cost, ok := g.PathCost([]string{"A", "B", "C"})
	assert.True(t, ok)
	assert.Equal(t, 3.5, cost)

	_, ok = g.PathCost([]string{"C", "B"})
	assert.False(t, ok)

	cost, ok = g.PathCost([]string{"A"})
	assert.True(t, ok)
	assert.Zero(t, cost)
}

// ---- 3. Maintenance ----

func TestResetAndClone(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	require.NoError(t, g.SetBlocked("B", true))
	a, _ := g.Node("A")
	a.Meta[core.MetaDist] = 3.0
	e, _ := g.Edge("e1")
	e.State = core.EdgeChosen

	c := g.Clone()
	g.ResetAlgoState()
	assert.Empty(t, a.Meta)
	assert.Equal(t, core.EdgeDefault, e.State)
	assert.True(t, g.IsBlocked("B"), "obstacles survive ResetAlgoState")

	ca, _ := c.Node("A")
	assert.Equal(t, 3.0, ca.Meta[core.MetaDist], "clone is independent")
	ce, _ := c.Edge("e1")
	assert.Equal(t, core.EdgeChosen, ce.State)

	g.Reset()
	assert.False(t, g.IsBlocked("B"))

	id, err := c.AddEdge("B", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, "e2", id, "clone continues the ID sequence")

	g.Clear()
	assert.Zero(t, g.NodeCount())
	assert.Zero(t, g.EdgeCount())
}

func TestEdgeOtherAndConnects(t *testing.T) {
	d := &core.Edge{From: "A", To: "B", Directed: true}
	_, ok := d.Other("B")
	assert.False(t, ok)
	assert.True(t, d.Connects("A", "B"))
	assert.False(t, d.Connects("B", "A"))

	u := &core.Edge{From: "A", To: "B"}
	o, ok := u.Other("B")
	assert.True(t, ok)
	assert.Equal(t, "A", o)
	assert.True(t, u.Connects("B", "A"))
}
