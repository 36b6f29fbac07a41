package graph

import "runtime"

// Chunk-sizing constants for the parallel generators. VertsPerChunk
// bounds how many adjacency lists one generation job owns;
// EdgesPerChunk bounds how many matrix bits one generation job claims.
const (
	VertsPerChunk = 128
	EdgesPerChunk = 128
)

// Seed is a pair of 64-bit words used to seed a per-chunk PRNG, the Go
// analogue of the original generator's per-chunk XorShift seed.
type Seed [2]uint64

type config struct {
	vertsPerChunk int
	edgesPerChunk int
	poolSize      int
	seeds         []Seed
}

// Option configures a graph generator.
type Option func(*config)

// WithChunkSize overrides VertsPerChunk / EdgesPerChunk for one
// generation call.
func WithChunkSize(n int) Option {
	return func(c *config) {
		c.vertsPerChunk = n
		c.edgesPerChunk = n
	}
}

// WithPoolSize bounds how many goroutines the generator's worker pool
// may run concurrently. Defaults to runtime.NumCPU().
func WithPoolSize(n int) Option {
	return func(c *config) { c.poolSize = n }
}

// WithSeeds supplies per-chunk PRNG seeds for reproducible generation.
// Seeds are consumed one per chunk, in order; chunks beyond the
// supplied seeds draw from system entropy.
func WithSeeds(seeds ...Seed) Option {
	return func(c *config) { c.seeds = seeds }
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		vertsPerChunk: VertsPerChunk,
		edgesPerChunk: EdgesPerChunk,
		poolSize:      runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// seedFor returns the seed for chunk i, or ok=false if the caller
// didn't supply one (meaning: draw from system entropy).
func (c *config) seedFor(i int) (Seed, bool) {
	if i < len(c.seeds) {
		return c.seeds[i], true
	}
	return Seed{}, false
}
