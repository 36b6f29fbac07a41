package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/pardfs/dfs"
	"github.com/katalvlaran/pardfs/graph"
)

var (
	genVertices   int
	genEdges      int
	genThreads    int
	genUndirected bool
	genOutput     bool
	genAlgo       string
)

// genCmd implements the single `gen` subcommand: build a graph, run
// the named algorithm against it, print timings, and optionally
// pretty-print the resulting forest.
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a graph and optionally traverse it",
	Example: `  pardfs gen -n 1000 -m 5000 --algo par_list
  pardfs gen -n 1000 -m 5000 --undirected --algo seq_mat --output
  pardfs gen -n 1000 -m 5000 -t 4 --algo gen_mat`,
	RunE: runGen,
}

func init() {
	genCmd.Flags().IntVarP(&genVertices, "vertices", "n", 0, "number of vertices")
	genCmd.Flags().IntVarP(&genEdges, "edges", "m", 0, "number of edges (undirected: per-direction count)")
	genCmd.Flags().IntVarP(&genThreads, "threads", "t", 0, "worker pool size (0 = runtime.NumCPU())")
	genCmd.Flags().BoolVar(&genUndirected, "undirected", false, "generate an undirected graph")
	genCmd.Flags().BoolVar(&genOutput, "output", false, "pretty-print the resulting forest to stdout")
	genCmd.Flags().StringVar(&genAlgo, "algo", "gen_list",
		"one of: gen_list, seq_list, par_list, cheat_list, gen_mat, seq_mat, par_mat, cheat_mat")

	for _, name := range []string{"vertices", "edges", "threads", "undirected", "output", "algo"} {
		_ = viper.BindPFlag(name, genCmd.Flags().Lookup(name))
	}
}

func runGen(cmd *cobra.Command, args []string) error {
	log := GetLogger()

	n := viper.GetInt("vertices")
	m := viper.GetInt("edges")
	threads := viper.GetInt("threads")
	undirected := viper.GetBool("undirected")
	output := viper.GetBool("output")
	algo := viper.GetString("algo")

	poolSize := threads
	if poolSize <= 0 {
		poolSize = 0 // graph/dfs default to runtime.NumCPU() when poolSize is unset via options below
	}

	g, genTime, err := buildGraph(algo, n, m, undirected, poolSize)
	if err != nil {
		return err
	}
	log.Info("graph generated: algo=%s n=%d m=%d undirected=%v elapsed=%s", algo, n, m, undirected, genTime)

	forest, traversalName, dfsTime, err := runTraversal(algo, g, poolSize)
	if err != nil {
		return err
	}
	if traversalName != "" {
		log.Info("dfs completed: algo=%s trees=%d elapsed=%s", traversalName, len(forest), dfsTime)
	}

	if output && forest != nil {
		printForest(forest)
	}

	return nil
}

func graphOptions(poolSize int) []graph.Option {
	if poolSize <= 0 {
		return nil
	}
	return []graph.Option{graph.WithPoolSize(poolSize)}
}

func dfsOptions(poolSize int) []dfs.Option {
	if poolSize <= 0 {
		return nil
	}
	return []dfs.Option{dfs.WithPoolSize(poolSize)}
}

// buildGraph constructs the graph representation (list or matrix,
// directed or undirected) named by algo's suffix.
func buildGraph(algo string, n, m int, undirected bool, poolSize int) (graph.Graph, time.Duration, error) {
	opts := graphOptions(poolSize)
	start := time.Now()

	var (
		g   graph.Graph
		err error
	)

	switch {
	case isListAlgo(algo):
		if undirected {
			g, err = graph.GenUndirectedList(n, m, opts...)
		} else {
			g, err = graph.GenDirectedList(n, m, opts...)
		}
	case isMatrixAlgo(algo):
		if undirected {
			g, err = graph.GenUndirectedMatrix(n, m, opts...)
		} else {
			g, err = graph.GenDirectedMatrix(n, m, opts...)
		}
	default:
		return nil, 0, fmt.Errorf("pardfs gen: %w: %q", dfs.ErrUnknownAlgorithm, algo)
	}

	if err != nil {
		return nil, 0, fmt.Errorf("pardfs gen: %w", err)
	}

	return g, time.Since(start), nil
}

// runTraversal runs the DFS algorithm named by algo against g, unless
// algo is one of the gen_* generation-only algorithms.
func runTraversal(algo string, g graph.Graph, poolSize int) (graph.Forest, string, time.Duration, error) {
	opts := dfsOptions(poolSize)
	start := time.Now()

	switch algo {
	case "gen_list", "gen_mat":
		return nil, "", 0, nil
	case "seq_list", "seq_mat":
		return dfs.Seq(g), algo, time.Since(start), nil
	case "par_list", "par_mat":
		forest, err := dfs.Par(g, opts...)
		if err != nil {
			return nil, "", 0, fmt.Errorf("pardfs gen: %w", err)
		}
		return forest, algo, time.Since(start), nil
	case "cheat_list", "cheat_mat":
		forest, err := dfs.Cheat(g, opts...)
		if err != nil {
			return nil, "", 0, fmt.Errorf("pardfs gen: %w", err)
		}
		return forest, algo, time.Since(start), nil
	default:
		return nil, "", 0, fmt.Errorf("pardfs gen: %w: %q", dfs.ErrUnknownAlgorithm, algo)
	}
}

func isListAlgo(algo string) bool {
	switch algo {
	case "gen_list", "seq_list", "par_list", "cheat_list":
		return true
	default:
		return false
	}
}

func isMatrixAlgo(algo string) bool {
	switch algo {
	case "gen_mat", "seq_mat", "par_mat", "cheat_mat":
		return true
	default:
		return false
	}
}

// printForest pretty-prints a Forest to stdout, trees sorted by root
// and each tree's edges sorted by From then To for stable, diffable
// output.
func printForest(forest graph.Forest) {
	sorted := make(graph.Forest, len(forest))
	copy(sorted, forest)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Root < sorted[j].Root })

	for _, tree := range sorted {
		edges := make([]graph.Edge, len(tree.Edges))
		copy(edges, tree.Edges)
		sort.Slice(edges, func(i, j int) bool {
			if edges[i].From != edges[j].From {
				return edges[i].From < edges[j].From
			}
			return edges[i].To < edges[j].To
		})

		fmt.Printf("tree root=%d edges=%d\n", tree.Root, len(edges))
		for _, e := range edges {
			fmt.Printf("  %d -> %d\n", e.From, e.To)
		}
	}
}
