package dfs_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pardfs/dfs"
	"github.com/katalvlaran/pardfs/graph"
)

// sortForest normalizes a Forest for comparison: trees by Root
// ascending, each tree's edges by (From, To) ascending.
func sortForest(f graph.Forest) graph.Forest {
	out := make(graph.Forest, len(f))
	copy(out, f)

	sort.Slice(out, func(i, j int) bool { return out[i].Root < out[j].Root })
	for i := range out {
		edges := append([]graph.Edge(nil), out[i].Edges...)
		sort.Slice(edges, func(a, b int) bool {
			if edges[a].From != edges[b].From {
				return edges[a].From < edges[b].From
			}
			return edges[a].To < edges[b].To
		})
		out[i].Edges = edges
	}
	return out
}

func assertCoversEveryVertexOnce(t *testing.T, n int, f graph.Forest) {
	t.Helper()

	seen := make(map[graph.Vertex]int)
	for _, tree := range f {
		seen[tree.Root]++
		for _, e := range tree.Edges {
			seen[e.To]++
		}
	}

	for v := 0; v < n; v++ {
		assert.Equal(t, 1, seen[v], "vertex %d covered %d times", v, seen[v])
	}
}

func assertValidTrees(t *testing.T, f graph.Forest) {
	t.Helper()

	for _, tree := range f {
		introduced := map[graph.Vertex]bool{tree.Root: true}
		for _, e := range tree.Edges {
			assert.True(t, introduced[e.From], "edge %v's From not yet introduced in tree rooted at %d", e, tree.Root)
			introduced[e.To] = true
		}
	}
}

func TestSeqCoversEveryVertexExactlyOnce(t *testing.T) {
	g, err := graph.GenDirectedList(100, 500)
	require.NoError(t, err)

	f := dfs.Seq(g)
	assertCoversEveryVertexOnce(t, g.VertexCount(), f)
	assertValidTrees(t, f)
}

func TestSeqOnMatrixGraph(t *testing.T) {
	g, err := graph.GenDirectedMatrix(80, 400)
	require.NoError(t, err)

	f := dfs.Seq(g)
	assertCoversEveryVertexOnce(t, g.VertexCount(), f)
	assertValidTrees(t, f)
}

func TestSeqEmptyGraphProducesOneTreePerVertex(t *testing.T) {
	g := graph.NewList(5)
	f := dfs.Seq(g)
	require.Len(t, f, 5)
	for _, tree := range f {
		assert.Empty(t, tree.Edges)
	}
}
