// Package ownermap implements a lock-free, monotonic vertex-ownership
// map: a fixed array of atomic cells, one per vertex, each claimable
// exactly once via compare-and-swap.
//
// Once a vertex is claimed by a root, that assignment never changes —
// there is no unclaim operation. This is what lets many goroutines race
// to claim the same vertex without any lock: exactly one compare-and-swap
// succeeds, and every loser gets false (the winning root can then be
// read with Owner).
package ownermap
