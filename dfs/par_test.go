package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pardfs/dfs"
	"github.com/katalvlaran/pardfs/graph"
)

func TestParCoversEveryVertexExactlyOnce(t *testing.T) {
	g, err := graph.GenDirectedList(200, 1500)
	require.NoError(t, err)

	f, err := dfs.Par(g)
	require.NoError(t, err)

	assertCoversEveryVertexOnce(t, g.VertexCount(), f)
	assertValidTrees(t, f)
}

func TestParOnMatrixGraph(t *testing.T) {
	g, err := graph.GenDirectedMatrix(150, 900)
	require.NoError(t, err)

	f, err := dfs.Par(g)
	require.NoError(t, err)

	assertCoversEveryVertexOnce(t, g.VertexCount(), f)
	assertValidTrees(t, f)
}

// TestParMatchesSeqOnSingleWorker exercises spec property 7: with the
// pool sized to 1, Par's output sorted by root/edges equals Seq's.
func TestParMatchesSeqOnSingleWorker(t *testing.T) {
	g, err := graph.GenDirectedList(100, 1000, graph.WithSeeds(graph.Seed{1, 2}))
	require.NoError(t, err)

	want := sortForest(dfs.Seq(g))

	got, err := dfs.Par(g, dfs.WithPoolSize(1))
	require.NoError(t, err)

	assert.Equal(t, want, sortForest(got))
}

func TestParWithChunkedRootsStillCoversGraph(t *testing.T) {
	g, err := graph.GenDirectedList(500, 3000)
	require.NoError(t, err)

	f, err := dfs.Par(g, dfs.WithChunkSize(32), dfs.WithPoolSize(4))
	require.NoError(t, err)

	assertCoversEveryVertexOnce(t, g.VertexCount(), f)
	assertValidTrees(t, f)
}
