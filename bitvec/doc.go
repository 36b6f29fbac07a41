// Package bitvec implements a fixed-size, concurrency-safe bit vector
// backed by a block of individually atomic 64-bit words.
//
// Every logical read or write goes through an atomic memory operation
// on the owning word — never a plain load of the word followed by a
// bit test — so a BitVec can be shared across goroutines without any
// additional locking. Reads use acquire ordering, writes use release
// ordering (via compare-and-swap loops, since the standard library's
// atomic.Uint64 has no fetch_or/fetch_and), giving single-writer-per-bit
// or last-writer-wins semantics that is data-race free.
//
// A BitSlice is a non-owning view over a contiguous sub-range of a
// BitVec's storage; slices may be further sliced, and Ones iterates
// the indices of set bits within a slice, forward or in reverse.
package bitvec
