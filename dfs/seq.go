package dfs

import "github.com/katalvlaran/pardfs/graph"

type stackFrame struct {
	parent graph.Vertex
	v      graph.Vertex
}

// Seq performs a sequential DFS traversal of g, producing one Tree per
// connected root, visited in ascending vertex order.
//
// Complexity: O(|V| + |E|).
func Seq(g graph.Graph) graph.Forest {
	n := g.VertexCount()
	used := make([]bool, n)

	var forest graph.Forest

	for _, root := range g.Vertices() {
		if used[root] {
			continue
		}

		tree := graph.NewTree(root)
		used[root] = true

		var stack []stackFrame
		for _, v := range g.NeighboursReverse(root) {
			if !used[v] {
				stack = append(stack, stackFrame{parent: root, v: v})
			}
		}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if used[f.v] {
				continue
			}
			used[f.v] = true
			tree.Add(graph.Edge{From: f.parent, To: f.v})

			for _, child := range g.NeighboursReverse(f.v) {
				if !used[child] {
					stack = append(stack, stackFrame{parent: f.v, v: child})
				}
			}
		}

		forest = append(forest, tree)
	}

	return forest
}
