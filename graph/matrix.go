package graph

import (
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/katalvlaran/pardfs/bitvec"
)

// Matrix is a dense n x n adjacency matrix backed by an atomic
// bit-vector: bit (u, v) at index u*n+v records whether edge (u, v)
// exists. The diagonal is always zero.
type Matrix struct {
	n    int
	data *bitvec.BitVec
}

var _ Graph = (*Matrix)(nil)

// NewMatrix returns an empty graph with n vertices.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		panic(ErrNegativeVertexCount)
	}
	return &Matrix{n: n, data: bitvec.New(n * n)}
}

// VertexCount returns n.
func (m *Matrix) VertexCount() int { return m.n }

// Vertices returns every vertex in ascending order.
func (m *Matrix) Vertices() []Vertex {
	vs := make([]Vertex, m.n)
	for i := range vs {
		vs[i] = i
	}
	return vs
}

// Neighbours returns v's outgoing neighbours in ascending order, read
// off the bit-vector row for v.
func (m *Matrix) Neighbours(v Vertex) []Vertex {
	checkVertex(v, m.n)
	row := m.row(v)

	var out []Vertex
	it := row.Ones()
	for {
		p, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// NeighboursReverse returns v's outgoing neighbours in descending
// order, using the bit-vector's reverse ones() iteration directly
// rather than reversing the forward result.
func (m *Matrix) NeighboursReverse(v Vertex) []Vertex {
	checkVertex(v, m.n)
	row := m.row(v)

	var out []Vertex
	it := row.Ones()
	for {
		p, ok := it.NextBack()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

// Edges returns every edge in the graph.
func (m *Matrix) Edges() []Edge {
	var out []Edge
	for u := 0; u < m.n; u++ {
		for _, v := range m.Neighbours(u) {
			out = append(out, Edge{From: u, To: v})
		}
	}
	return out
}

func (m *Matrix) row(v Vertex) bitvec.BitSlice {
	start := v * m.n
	return m.data.Slice(start, start+m.n)
}

func (m *Matrix) index(from, to Vertex) int { return from*m.n + to }

func (m *Matrix) shouldAdd(from, to Vertex) bool {
	if from == to {
		return false
	}
	val, _ := m.data.Get(m.index(from, to))
	return !val
}

// GenDirectedMatrix generates a directed Matrix with n vertices and
// exactly m edges.
//
// Generation partitions the m edges (not the vertices) into chunks of
// graph.EdgesPerChunk, dispatched onto a pool of graph.WithPoolSize
// goroutines; each job samples (from, to) pairs uniformly over [0,n)
// and claims them with BitVec.Swap, which both tests and sets the bit
// atomically, so two jobs racing for the same edge can't both count it.
func GenDirectedMatrix(n, m int, opts ...Option) (*Matrix, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	if m > maxDirectedEdges(n) {
		return nil, fmt.Errorf("graph.GenDirectedMatrix: %w", ErrTooManyEdges)
	}

	cfg := newConfig(opts...)
	mat := NewMatrix(n)

	err := runChunkedCount(m, cfg, func(i, quota int) error {
		seed, hasSeed := cfg.seedFor(i)
		genMatrixChunk(quota, seed, hasSeed, n, func(from, to int) bool {
			if !mat.shouldAdd(from, to) {
				return false
			}
			return !mat.data.Swap(mat.index(from, to), true)
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph.GenDirectedMatrix: %w", err)
	}

	return mat, nil
}

// GenUndirectedMatrix generates an undirected Matrix with n vertices
// and a total of 2m edges: if (u, v) exists then so does (v, u).
//
// The original generator left this case unimplemented; here each
// pair claims a single canonical bit (the one with the smaller vertex
// first) as the sole arbiter via Swap, and only the job that wins that
// Swap mirrors the complementary bit, so two jobs racing for the same
// undirected edge can't both count it.
func GenUndirectedMatrix(n, m int, opts ...Option) (*Matrix, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	if m > maxUndirectedEdges(n) {
		return nil, fmt.Errorf("graph.GenUndirectedMatrix: %w", ErrTooManyEdges)
	}

	cfg := newConfig(opts...)
	mat := NewMatrix(n)

	err := runChunkedCount(m, cfg, func(i, quota int) error {
		seed, hasSeed := cfg.seedFor(i)
		genMatrixChunk(quota, seed, hasSeed, n, func(from, to int) bool {
			if from == to {
				return false
			}
			u, v := from, to
			if u > v {
				u, v = v, u
			}
			if mat.data.Swap(mat.index(u, v), true) {
				return false
			}
			mat.data.Swap(mat.index(v, u), true)
			return true
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("graph.GenUndirectedMatrix: %w", err)
	}

	return mat, nil
}

// runChunkedCount partitions m items into chunks of
// cfg.edgesPerChunk and runs fn(chunkIndex, chunkQuota) for each, in
// parallel on a bounded ants pool.
func runChunkedCount(m int, cfg *config, fn func(i, quota int) error) error {
	chunkSize := cfg.edgesPerChunk
	if chunkSize <= 0 {
		chunkSize = EdgesPerChunk
	}

	nChunks := (m + chunkSize - 1) / chunkSize
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
		quota := chunkSize
		if i == nChunks-1 {
			if rem := m % chunkSize; rem != 0 {
				quota = rem
			}
		}

		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := fn(i, quota); err != nil {
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

// genMatrixChunk draws quota (from, to) pairs uniformly over [0, n)
// and hands each to claim, which atomically tests and sets the
// backing bit(s); it retries until the chunk's quota is met.
func genMatrixChunk(quota int, seed Seed, hasSeed bool, n int, claim func(from, to int) bool) {
	if quota <= 0 {
		return
	}

	rng := newRNG(seed, hasSeed)

	added := 0
	for added < quota {
		from := rng.IntN(n)
		to := rng.IntN(n)
		if claim(from, to) {
			added++
		}
	}
}
