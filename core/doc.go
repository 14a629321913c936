// Package core provides a small, generic in-memory graph: vertices keyed
// by any comparable type, each holding a weighted, one-directional
// adjacency set.
//
// The Graph G = (V,E) is deliberately minimal:
//
//   - Vertices are created once per key via AddVertex (duplicates are
//     rejected with ErrDuplicateVertex) or EnsureVertex (idempotent).
//   - Edges are one-directional: AddEdge(a, b, w) records b as a neighbor
//     of a only. Undirected relationships need the reverse edge too.
//   - A repeated edge is a no-op; the first recorded weight wins.
//   - Lookups of unknown keys fail with ErrKeyNotFound; nothing is ever
//     auto-created behind the caller's back.
//
// Determinism:
//
//	Vertices(), All(), Edges() and Vertex.Neighbors() enumerate in
//	insertion order, so traversals built on top of them are reproducible.
//
// Ownership:
//
//	The Graph owns every Vertex it hands out. Neighbor references are
//	non-owning pointers to vertices of the same Graph. Neighbors() is a
//	live read-only view; NeighborMap() returns an independent copy.
//
// Concurrency:
//
//	Graph carries no locks. A Graph shared between goroutines must be
//	guarded by the caller. Iterators are invalid if the graph is mutated
//	while they run.
//
// Core Methods:
//
//	NewGraph[K]() *Graph[K]                         // O(1)
//	AddVertex(key) (*Vertex[K], error)              // O(1)
//	EnsureVertex(key) *Vertex[K]                    // O(1)
//	Vertex(key) (*Vertex[K], error)                 // O(1)
//	AddEdge(from, to K, weight int64) error         // O(1)
//	Vertices() []K                                  // O(V)
//	All() iter.Seq[*Vertex[K]]                      // O(V) per pass
//	Edges() iter.Seq[Edge[K]]                       // O(V+E) per pass
//	VertexCount() int                               // O(1)
//	EdgeCount() int                                 // O(V)
//
// Errors:
//
//	ErrKeyNotFound     - unknown vertex or neighbor key.
//	ErrDuplicateVertex - AddVertex with a key that is already present.
package core
