package graph

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// List is a graph represented as n ordered adjacency lists. lists[u]
// holds u's outgoing neighbours; u never appears in its own list, and
// entries within a list are pairwise distinct.
type List struct {
	n     int
	lists [][]Vertex
}

var _ Graph = (*List)(nil)

// NewList returns an empty graph with n vertices and no edges.
func NewList(n int) *List {
	if n < 0 {
		panic(ErrNegativeVertexCount)
	}
	return &List{n: n, lists: make([][]Vertex, n)}
}

// VertexCount returns n.
func (l *List) VertexCount() int { return l.n }

// Vertices returns every vertex in ascending order.
func (l *List) Vertices() []Vertex {
	vs := make([]Vertex, l.n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

// Neighbours returns a copy of v's outgoing neighbours in list order.
func (l *List) Neighbours(v Vertex) []Vertex {
	checkVertex(v, l.n)
	out := make([]Vertex, len(l.lists[v]))
	copy(out, l.lists[v])
	return out
}

// NeighboursReverse returns v's outgoing neighbours in reverse list
// order.
func (l *List) NeighboursReverse(v Vertex) []Vertex {
	fwd := l.Neighbours(v)
	for i, j := 0, len(fwd)-1; i < j; i, j = i+1, j-1 {
		fwd[i], fwd[j] = fwd[j], fwd[i]
	}
	return fwd
}

// Edges returns every edge in the graph, ordered by From then list
// position.
func (l *List) Edges() []Edge {
	var out []Edge
	for u, ns := range l.lists {
		for _, v := range ns {
			out = append(out, Edge{From: u, To: v})
		}
	}
	return out
}

// Sort sorts each adjacency list ascending. Idempotent: sorting twice
// gives the same result as sorting once.
func (l *List) Sort() {
	for _, ns := range l.lists {
		sort.Ints(ns)
	}
}

func (l *List) appendEdge(from, to Vertex) {
	l.lists[from] = append(l.lists[from], to)
}

// RawAppend appends to directly onto from's adjacency list, bypassing
// the loop/duplicate rejection the generators apply. Exists for tests
// that need to build a graph with a known, fixed shape.
func (l *List) RawAppend(from, to Vertex) {
	checkVertex(from, l.n)
	l.appendEdge(from, to)
}

func (l *List) hasNeighbour(from, to Vertex) bool {
	for _, v := range l.lists[from] {
		if v == to {
			return true
		}
	}
	return false
}

// GenDirectedList generates a directed List with n vertices and
// exactly m edges, none looping, none duplicated.
//
// Generation partitions [0, n) into chunks of graph.VertsPerChunk
// vertices (overridable via WithChunkSize), dispatches one generation
// job per chunk onto a pool of graph.WithPoolSize goroutines, and each
// job draws (from, to) pairs by rejection sampling until its quota of
// edges is met.
func GenDirectedList(n, m int, opts ...Option) (*List, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	if m > maxDirectedEdges(n) {
		return nil, fmt.Errorf("graph.GenDirectedList: %w", ErrTooManyEdges)
	}

	cfg := newConfig(opts...)
	l := NewList(n)

	err := runChunked(n, cfg, func(i, start, end int) error {
		quota := edgesCountDirected(start, end, n, m)
		seed, hasSeed := cfg.seedFor(i)
		genListChunk(l, start, end, 0, n, quota, true, seed, hasSeed)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph.GenDirectedList: %w", err)
	}

	return l, nil
}

// GenUndirectedList generates an undirected List with n vertices and
// exactly 2m edges in mirror pairs (m <= n*(n-1)/2).
//
// The lower-triangular half (entries v < u) is generated chunked, the
// same way as GenDirectedList; the upper-triangular half is then
// filled by MirrorSeq.
func GenUndirectedList(n, m int, opts ...Option) (*List, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	if m > maxUndirectedEdges(n) {
		return nil, fmt.Errorf("graph.GenUndirectedList: %w", ErrTooManyEdges)
	}

	cfg := newConfig(opts...)
	l := NewList(n)

	err := runChunked(n, cfg, func(i, start, end int) error {
		quota := edgesCountUndirected(start, end, n, m)
		seed, hasSeed := cfg.seedFor(i)
		genListChunk(l, start, end, 0, end, quota, false, seed, hasSeed)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph.GenUndirectedList: %w", err)
	}

	MirrorSeq(l)
	return l, nil
}

// runChunked partitions [0, n) into chunks of cfg.vertsPerChunk
// vertices and runs fn(chunkIndex, start, end) for each, in parallel
// on a bounded ants pool.
func runChunked(n int, cfg *config, fn func(i, start, end int) error) error {
	chunkSize := cfg.vertsPerChunk
	if chunkSize <= 0 {
		chunkSize = VertsPerChunk
	}

	nChunks := (n + chunkSize - 1) / chunkSize
	if nChunks == 0 {
		return nil
	}

	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return fmt.Errorf("building worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	var firstErr error
	var mu sync.Mutex

	for i := 0; i < nChunks; i++ {
		i := i
		start := i * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := fn(i, start, end); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			return submitErr
		}
	}

	wg.Wait()
	return firstErr
}

// genListChunk fills lists[start:end] with quota edges drawn from
// fromVerts=[start,end) to toVerts=[0,toEnd), rejecting loops and (for
// the undirected half) anything not strictly below u.
func genListChunk(l *List, start, end, toStart, toEnd, quota int, directed bool, seed Seed, hasSeed bool) {
	if quota <= 0 || start >= end {
		return
	}

	rng := newRNG(seed, hasSeed)
	fromSpan := end - start
	toSpan := toEnd - toStart

	added := 0
	for added < quota {
		from := start + int(rng.Uint64N(uint64(fromSpan)))
		to := toStart + int(rng.Uint64N(uint64(toSpan)))

		if directed {
			if from == to || l.hasNeighbour(from, to) {
				continue
			}
		} else {
			if from <= to || l.hasNeighbour(from, to) {
				continue
			}
		}

		l.appendEdge(from, to)
		added++
	}
}

func maxDirectedEdges(n int) int {
	if n == 0 {
		return 0
	}
	return n * (n - 1)
}

func maxUndirectedEdges(n int) int {
	if n == 0 {
		return 0
	}
	return n * (n - 1) / 2
}

// edgesCountDirected is the floor-difference chunk quota formula:
// floor(end/n * m) - floor(start/n * m).
func edgesCountDirected(start, end, n, m int) int {
	from := float64(start) / float64(n)
	to := float64(end) / float64(n)
	return int(math.Floor(to*float64(m))) - int(math.Floor(from*float64(m)))
}

// edgesCountUndirected is the same idea squared, so chunk quotas sum
// to m over the lower-triangular half.
func edgesCountUndirected(start, end, n, m int) int {
	from := float64(start) / float64(n)
	to := float64(end) / float64(n)
	return int(math.Floor(to*to*float64(m))) - int(math.Floor(from*from*float64(m)))
}
