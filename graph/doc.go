// Package graph provides two dense, integer-vertex graph
// representations — List (adjacency lists) and Matrix (adjacency
// matrix atop an atomic bit-vector) — sharing a common Graph
// capability interface, plus randomized parallel generators and a
// three-way mirror pass for turning a lower-triangular undirected
// adjacency-list graph into a full one.
//
// Vertices are dense integers in [0, n); there is no separate vertex
// object. Both representations are immutable once generation
// completes and are safe to read from many goroutines concurrently.
package graph
