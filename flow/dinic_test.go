package flow_test

import (
	"testing"

	"github.com/katalvlaran/cmr/core"
	"github.com/katalvlaran/cmr/flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDinic_SimpleChain(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"s", "a", "b", "t"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, err := g.AddEdge("s", "a")
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b")
	require.NoError(t, err)
	_, err = g.AddEdge("b", "t")
	require.NoError(t, err)

	max, err := flow.Dinic(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, 1, max)
}

func TestDinic_TwoDisjointPaths(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"s", "a", "b", "t"} {
		require.NoError(t, g.AddVertex(v))
	}
	_, _ = g.AddEdge("s", "a")
	_, _ = g.AddEdge("s", "b")
	_, _ = g.AddEdge("a", "t")
	_, _ = g.AddEdge("b", "t")

	max, err := flow.Dinic(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, 2, max)
}

func TestDinic_MissingVertex(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddVertex("s"))
	_, err := flow.Dinic(g, "s", "missing")
	assert.ErrorIs(t, err, flow.ErrSinkNotFound)
}

func TestMinCut_BottleneckReportsSourceSideUpToTheCut(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, v := range []string{"s", "a", "t"} {
		require.NoError(t, g.AddVertex(v))
	}
	// Two parallel s->a edges give a-bound capacity 2, but a single a->t
	// edge caps the whole network at 1: the cut sits at a->t, so "a" stays
	// reachable from s in the residual graph while "t" does not.
	_, _ = g.AddEdge("s", "a")
	_, _ = g.AddEdge("s", "a")
	_, _ = g.AddEdge("a", "t")

	max, reachable, err := flow.MinCut(g, "s", "t")
	require.NoError(t, err)
	assert.Equal(t, 1, max)
	assert.True(t, reachable["s"])
	assert.True(t, reachable["a"])
	assert.False(t, reachable["t"])
}
