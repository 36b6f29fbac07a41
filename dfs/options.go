package dfs

import "runtime"

type config struct {
	poolSize  int
	chunkSize int
}

// Option configures Par and Cheat.
type Option func(*config)

// WithPoolSize bounds how many goroutines the parallel engine's worker
// pool may run concurrently. Defaults to runtime.NumCPU().
func WithPoolSize(n int) Option {
	return func(c *config) { c.poolSize = n }
}

// WithChunkSize controls how many candidate roots one dispatched task
// evaluates before returning to the pool. Defaults to 1 (root
// granularity, as in spec.md §4.G); raising it amortizes pool
// scheduling overhead on graphs with many small trees.
func WithChunkSize(n int) Option {
	return func(c *config) { c.chunkSize = n }
}

func newConfig(opts ...Option) *config {
	cfg := &config{poolSize: runtime.NumCPU(), chunkSize: 1}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
