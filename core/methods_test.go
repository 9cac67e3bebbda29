package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlegraph/core"
)

// TestAddNode_OrderAndCounts verifies successor order and edge bookkeeping.
func TestAddNode_OrderAndCounts(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, 3, 2, 4))
	require.NoError(t, g.AddNode(2, 4))

	s, err := g.Successors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{3, 2, 4}, s)
	assert.Equal(t, 2, g.NodeCount())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasNode(2))
	assert.False(t, g.HasNode(4), "successors are not registered as nodes")
}

// TestAddNode_Duplicate rejects a second definition of the same key.
func TestAddNode_Duplicate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(7))
	assert.ErrorIs(t, g.AddNode(7, 8), core.ErrDuplicateNode)
	assert.Equal(t, 0, g.EdgeCount())
}

// TestLoops covers the loop policy on both insertion paths.
func TestLoops(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddNode(1, 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.AddEdge(2, 2), core.ErrLoopNotAllowed)

	looped := core.NewGraph(core.WithLoops())
	assert.True(t, looped.Looped())
	assert.NoError(t, looped.AddNode(1, 1))
	assert.NoError(t, looped.AddEdge(2, 2))
}

// TestAddEdge_CreatesSourceOnly checks that AddEdge keys the source but not the target.
func TestAddEdge_CreatesSourceOnly(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 2)) // parallel edge kept

	s, err := g.Successors(1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 2}, s)
	assert.False(t, g.HasNode(2))
	assert.Equal(t, []core.NodeID{2}, g.Dangling())
}

// TestSuccessors_Missing returns ErrNodeNotFound.
func TestSuccessors_Missing(t *testing.T) {
	_, err := core.NewGraph().Successors(42)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestSuccessors_IsCopy ensures callers cannot mutate the graph through the result.
func TestSuccessors_IsCopy(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, 2, 3))
	s, _ := g.Successors(1)
	s[0] = 99

	again, _ := g.Successors(1)
	assert.Equal(t, []core.NodeID{2, 3}, again)
}

// TestNodes_Sorted verifies deterministic enumeration.
func TestNodes_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []core.NodeID{5, 1, 3} {
		require.NoError(t, g.AddNode(id))
	}
	assert.Equal(t, []core.NodeID{1, 3, 5}, g.Nodes())
	assert.Empty(t, g.Dangling())
}

// TestClone_Independent checks deep-copy semantics of Clone and AdjacencyList.
func TestClone_Independent(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	require.NoError(t, g.AddNode(1, 2))

	c := g.Clone()
	require.NoError(t, c.AddEdge(1, 3))
	require.NoError(t, c.AddNode(3))

	assert.True(t, c.Looped())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 2, c.EdgeCount())
	assert.False(t, g.HasNode(3))

	adj := g.AdjacencyList()
	adj[1][0] = 9
	s, _ := g.Successors(1)
	assert.Equal(t, []core.NodeID{2}, s)
}
