package dfs

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/pardfs/graph"
	"github.com/katalvlaran/pardfs/ownermap"
)

// vertState is a task-local tag describing what a task knows about a
// vertex relative to its own root, layered over the shared ownership
// map.
type vertState int

const (
	stateUnknown vertState = iota
	stateNotOwned
	stateOwnedUnused
	stateOwnedUsed
)

// taskCache is a per-task cache of vertState, doubling as the task's
// "used" array. It avoids repeated atomic CAS attempts against the
// shared ownermap.Map for vertices already resolved by this task.
type taskCache struct {
	root  graph.Vertex
	state []vertState
	owner *ownermap.Map
}

func newTaskCache(root graph.Vertex, n int, owner *ownermap.Map) *taskCache {
	state := make([]vertState, n)
	state[root] = stateOwnedUsed

	return &taskCache{root: root, state: state, owner: owner}
}

// get resolves v's state, claiming it from the shared map on first
// lookup.
func (c *taskCache) get(v graph.Vertex) vertState {
	if c.state[v] == stateUnknown {
		if c.owner.Claim(v, c.root) {
			c.state[v] = stateOwnedUnused
		} else {
			c.state[v] = stateNotOwned
		}
	}
	return c.state[v]
}

// markUsed transitions v from owned-unused to owned-used. Any other
// source state is a bug: it means the caller tried to visit a vertex
// it never claimed.
func (c *taskCache) markUsed(v graph.Vertex) {
	switch c.state[v] {
	case stateOwnedUnused:
		c.state[v] = stateOwnedUsed
	case stateOwnedUsed:
		// already used; no-op
	default:
		panic(fmt.Sprintf("dfs: mark_used on vertex %d in state %d, must be owned", v, c.state[v]))
	}
}

// Par runs the parallel DFS engine over g: every vertex is an
// independent candidate root, dispatched to a worker pool; the first
// task to claim a vertex (as a root or transitively via an edge)
// grows a private DFS tree over everything it claims.
//
// With WithPoolSize(1), Par's output — after sorting trees by root
// and each tree's edges by From — is byte-equal to Seq's.
func Par(g graph.Graph, opts ...Option) (graph.Forest, error) {
	cfg := newConfig(opts...)
	n := g.VertexCount()
	owner := ownermap.NewMap(n)

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return nil, fmt.Errorf("dfs.Par: %w", err)
	}
	defer pool.Release()

	chunkSize := cfg.chunkSize
	if chunkSize <= 0 {
		chunkSize = 1
	}

	var (
		mu     sync.Mutex
		forest graph.Forest
		wg     sync.WaitGroup
	)

	for start := 0; start < n; start += chunkSize {
		start := start
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()

			var built []graph.Tree
			for root := start; root < end; root++ {
				if !owner.Claim(root, root) {
					continue
				}
				built = append(built, runTree(g, owner, root))
			}

			if len(built) > 0 {
				mu.Lock()
				forest = append(forest, built...)
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("dfs.Par: %w", submitErr)
		}
	}
	wg.Wait()

	return forest, nil
}

// runTree grows one DFS tree from root, using a private stack and a
// private vertex-state cache. Neighbours are pushed in reverse so pops
// occur in forward order, matching Seq.
func runTree(g graph.Graph, owner *ownermap.Map, root graph.Vertex) graph.Tree {
	cache := newTaskCache(root, g.VertexCount(), owner)
	tree := graph.NewTree(root)

	var stack []stackFrame

	push := func(parent graph.Vertex, neighbours []graph.Vertex) {
		for _, v := range neighbours {
			if cache.get(v) == stateOwnedUnused {
				stack = append(stack, stackFrame{parent: parent, v: v})
			}
		}
	}

	push(root, g.NeighboursReverse(root))

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cache.get(f.v) != stateOwnedUnused {
			continue
		}

		cache.markUsed(f.v)
		tree.Add(graph.Edge{From: f.parent, To: f.v})
		push(f.v, g.NeighboursReverse(f.v))
	}

	return tree
}
