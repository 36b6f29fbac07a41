// Package dfs implements depth-first traversal of a graph.Graph: Seq,
// the sequential reference oracle; Par, the lock-free parallel engine
// that fans out tree construction across a worker pool using
// ownermap.Map; and Cheat, an experimental non-monotonic variant.
//
// Seq and Par must produce byte-equal forests (after sorting trees by
// root and edges by From) when Par runs on a single-worker pool — that
// is what lets Par's correctness be tested against Seq at all.
package dfs
