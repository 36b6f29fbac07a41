// Command pardfs is the CLI driver for graph generation and parallel
// DFS traversal. It is an external collaborator of the core packages
// (graph, dfs): argument parsing, pretty-printing, and process
// orchestration live here, outside the lock-free core spec.md scopes
// out of the traversal engine itself.
package main

import "github.com/katalvlaran/pardfs/cmd/pardfs/cmd"

func main() {
	cmd.Execute()
}
