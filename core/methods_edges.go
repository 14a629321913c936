// File: methods_edges.go
// Role: Edge insertion and enumeration.
//
// Determinism:
//   - Edges() yields sources in vertex insertion order, then each source's
//     neighbors in neighbor insertion order.

package core

import (
	"fmt"
	"iter"
)

// AddEdge records a one-directional edge from -> to with the given weight.
//
// Steps:
//  1. Look up both endpoints; a missing one fails with ErrKeyNotFound
//     naming the key. Vertices are never auto-created here.
//  2. Delegate to Vertex.AddNeighbor; a repeated edge is a no-op and keeps
//     its first weight.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K, weight int64) error {
	src, ok := g.vertices[from]
	if !ok {
		return fmt.Errorf("%w: edge source %v", ErrKeyNotFound, from)
	}
	dst, ok := g.vertices[to]
	if !ok {
		return fmt.Errorf("%w: edge target %v", ErrKeyNotFound, to)
	}
	src.AddNeighbor(dst, weight)

	return nil
}

// HasEdge reports whether the edge from -> to is recorded.
func (g *Graph[K]) HasEdge(from, to K) bool {
	src, ok := g.vertices[from]
	if !ok {
		return false
	}
	dst, ok := g.vertices[to]
	if !ok {
		return false
	}

	return src.HasNeighbor(dst)
}

// Edges returns a restartable sequence over every recorded edge.
func (g *Graph[K]) Edges() iter.Seq[Edge[K]] {
	return func(yield func(Edge[K]) bool) {
		for v := range g.All() {
			for n, w := range v.Neighbors() {
				if !yield(Edge[K]{From: v.id, To: n.id, Weight: w}) {
					return
				}
			}
		}
	}
}

// EdgeCount returns the number of recorded edges, including those added
// directly through Vertex.AddNeighbor.
// Complexity: O(V).
func (g *Graph[K]) EdgeCount() int {
	n := 0
	for _, v := range g.vertices {
		n += v.Degree()
	}

	return n
}
