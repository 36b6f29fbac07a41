package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pardfs/dfs"
)

// TestGenUnknownAlgoIsParseError exercises spec.md §7.2: an unknown
// --algo value is a friendly, non-panicking error, surfaced without
// spawning the real binary.
func TestGenUnknownAlgoIsParseError(t *testing.T) {
	rootCmd.SetArgs([]string{"gen", "-n", "10", "-m", "5", "--algo", "bogus"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.ErrorIs(t, err, dfs.ErrUnknownAlgorithm)
}

// TestGenListRoundTrip exercises the list pipeline end to end with
// par_list: flags parse, the graph generates, the parallel DFS runs, and
// Execute returns cleanly.
func TestGenListRoundTrip(t *testing.T) {
	rootCmd.SetArgs([]string{"gen", "-n", "20", "-m", "30", "--algo", "par_list"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	err := rootCmd.Execute()

	require.NoError(t, err)
}
