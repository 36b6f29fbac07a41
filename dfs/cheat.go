package dfs

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/pardfs/graph"
)

// cheatUnclaimed is Cheat's own sentinel; it does not reuse
// ownermap.Map because that map enforces claim-once semantics and
// Cheat deliberately does not.
const cheatUnclaimed = ^uint32(0)

// Cheat implements the non-monotonic ownership variant raised in
// spec.md §9's Open Question: a claim only succeeds toward a
// numerically smaller root id, so a cell's owner can be displaced
// after a tree has already used it. Each task builds its tree
// optimistically with whatever ownership it can take at the time; a
// post-pass then drops edges whose target's final owner disagrees
// with the tree that claimed it.
//
// Experimental: unlike Par, a vertex's tree membership is not settled
// until every task has finished, and the post-pass filter can leave a
// root's tree empty if every vertex it reached was later reclaimed by
// a smaller root. Coverage guarantees under heavy contention (whether
// every vertex still ends up in exactly one surviving tree) are not
// established — this mirrors spec.md's instruction not to guess at
// them. Not used by the CLI's default algorithm choice.
func Cheat(g graph.Graph, opts ...Option) (graph.Forest, error) {
	cfg := newConfig(opts...)
	n := g.VertexCount()

	owner := make([]atomic.Uint32, n)
	for i := range owner {
		owner[i].Store(cheatUnclaimed)
	}

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return nil, fmt.Errorf("dfs.Cheat: %w", err)
	}
	defer pool.Release()

	var (
		mu    sync.Mutex
		built []graph.Tree
		wg    sync.WaitGroup
	)

	for root := 0; root < n; root++ {
		root := root
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			if !takeSmallest(&owner[root], uint32(root)) {
				return
			}

			tree := cheatDescend(g, owner, root)

			mu.Lock()
			built = append(built, tree)
			mu.Unlock()
		})
		if submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("dfs.Cheat: %w", submitErr)
		}
	}
	wg.Wait()

	forest := make(graph.Forest, 0, len(built))
	for _, tree := range built {
		tree.Edges = filterSurvivingEdges(tree, owner)
		forest = append(forest, tree)
	}

	return forest, nil
}

// takeSmallest attempts to lower cell's value to candidate. It
// succeeds only if candidate is strictly smaller than the cell's
// current value, retrying on concurrent writers the same way a
// fetch_update CAS loop would.
func takeSmallest(cell *atomic.Uint32, candidate uint32) bool {
	for {
		current := cell.Load()
		if current <= candidate {
			return false
		}
		if cell.CompareAndSwap(current, candidate) {
			return true
		}
	}
}

// cheatDescend grows a tree from root greedily: every vertex it can
// take ownership of (however briefly) becomes part of the tree, with
// no attempt to protect that ownership from a smaller root claiming
// it later.
func cheatDescend(g graph.Graph, owner []atomic.Uint32, root graph.Vertex) graph.Tree {
	n := g.VertexCount()
	attempted := make([]bool, n)
	attempted[root] = true
	taken := make([]bool, n)
	taken[root] = true
	visited := make([]bool, n)
	visited[root] = true

	tree := graph.NewTree(root)
	var stack []stackFrame

	push := func(parent graph.Vertex, neighbours []graph.Vertex) {
		for _, v := range neighbours {
			if !attempted[v] {
				attempted[v] = true
				taken[v] = takeSmallest(&owner[v], uint32(root))
			}
			if taken[v] && !visited[v] {
				stack = append(stack, stackFrame{parent: parent, v: v})
			}
		}
	}

	push(root, g.NeighboursReverse(root))

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[f.v] {
			continue
		}
		visited[f.v] = true
		tree.Add(graph.Edge{From: f.parent, To: f.v})
		push(f.v, g.NeighboursReverse(f.v))
	}

	return tree
}

// filterSurvivingEdges drops edges whose target's final owner is no
// longer this tree's root.
func filterSurvivingEdges(tree graph.Tree, owner []atomic.Uint32) []graph.Edge {
	var out []graph.Edge
	for _, e := range tree.Edges {
		if owner[e.To].Load() == uint32(tree.Root) {
			out = append(out, e)
		}
	}
	return out
}
