// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Edge and Graph declarations, sentinel errors, NewGraph.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrKeyNotFound indicates an operation referenced a key that is not
	// stored in the relevant mapping (vertex catalog or neighbor set).
	ErrKeyNotFound = errors.New("core: key not found")

	// ErrDuplicateVertex indicates AddVertex was called with a key that is
	// already present. The stored vertex is left untouched.
	ErrDuplicateVertex = errors.New("core: vertex already exists")
)

// Vertex is a node with an identity key and an ordered set of outgoing,
// weighted edges.
//
// adj maps each neighbor to its edge weight; order keeps neighbors in the
// sequence they were first added so enumeration is deterministic.
type Vertex[K comparable] struct {
	id    K
	adj   map[*Vertex[K]]int64
	order []*Vertex[K]
}

// Edge is a read-only snapshot of one recorded edge From -> To.
type Edge[K comparable] struct {
	From   K
	To     K
	Weight int64
}

// Graph owns a set of vertices keyed by K.
//
// vertices is the catalog; keys records insertion order.
type Graph[K comparable] struct {
	vertices map[K]*Vertex[K]
	keys     []K
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{vertices: make(map[K]*Vertex[K])}
}

// newVertex allocates a Vertex with an empty adjacency set.
func newVertex[K comparable](id K) *Vertex[K] {
	return &Vertex[K]{id: id, adj: make(map[*Vertex[K]]int64)}
}
