// File: methods_vertices.go
// Role: Vertex lifecycle on Graph and adjacency queries on Vertex.
//
// Determinism:
//   - Vertices() and All() follow insertion order.
//   - Neighbors(), NeighborIDs() follow neighbor insertion order.

package core

import (
	"fmt"
	"iter"
	"maps"
	"strings"
)

// ID returns the identity key of the vertex.
func (v *Vertex[K]) ID() K { return v.id }

// AddNeighbor records an edge v -> target with the given weight, unless
// target is already a neighbor. Repeated calls are silent no-ops, so the
// first weight wins and cannot be updated in place. A nil target is
// ignored.
//
// Complexity: O(1) amortized.
func (v *Vertex[K]) AddNeighbor(target *Vertex[K], weight int64) bool {
	if target == nil {
		return false
	}
	if _, exists := v.adj[target]; exists {
		return false
	}
	v.adj[target] = weight
	v.order = append(v.order, target)

	return true
}

// Neighbors returns a live, read-only view over the adjacency set in
// insertion order, yielding (neighbor, weight) pairs. The sequence is
// restartable; it must not be consumed while v is being mutated.
func (v *Vertex[K]) Neighbors() iter.Seq2[*Vertex[K], int64] {
	return func(yield func(*Vertex[K], int64) bool) {
		for _, n := range v.order {
			if !yield(n, v.adj[n]) {
				return
			}
		}
	}
}

// NeighborMap returns a copy of the neighbor -> weight mapping. Mutating
// the copy does not affect the graph.
func (v *Vertex[K]) NeighborMap() map[*Vertex[K]]int64 {
	return maps.Clone(v.adj)
}

// NeighborIDs returns the keys of all neighbors in insertion order.
func (v *Vertex[K]) NeighborIDs() []K {
	ids := make([]K, len(v.order))
	for i, n := range v.order {
		ids[i] = n.id
	}

	return ids
}

// HasNeighbor reports whether target is a recorded neighbor of v.
func (v *Vertex[K]) HasNeighbor(target *Vertex[K]) bool {
	_, ok := v.adj[target]
	return ok
}

// Degree returns the number of outgoing edges.
func (v *Vertex[K]) Degree() int { return len(v.order) }

// EdgeWeight returns the weight of the edge v -> target.
// Returns ErrKeyNotFound if target is not a recorded neighbor.
func (v *Vertex[K]) EdgeWeight(target *Vertex[K]) (int64, error) {
	w, ok := v.adj[target]
	if !ok {
		if target == nil {
			return 0, fmt.Errorf("%w: nil neighbor of %v", ErrKeyNotFound, v.id)
		}
		return 0, fmt.Errorf("%w: %v is not a neighbor of %v", ErrKeyNotFound, target.id, v.id)
	}

	return w, nil
}

// String renders the vertex as "<id> adjacent to [<neighbor ids>]".
func (v *Vertex[K]) String() string {
	ids := make([]string, len(v.order))
	for i, n := range v.order {
		ids[i] = fmt.Sprint(n.id)
	}

	return fmt.Sprintf("%v adjacent to [%s]", v.id, strings.Join(ids, " "))
}

// AddVertex creates and stores a new vertex for key and returns it.
//
// Duplicate policy: if key is already present the call fails with
// ErrDuplicateVertex and the stored vertex, its edges and the vertex
// count are left unchanged. Use EnsureVertex for idempotent inserts.
//
// Complexity: O(1) amortized.
func (g *Graph[K]) AddVertex(key K) (*Vertex[K], error) {
	if _, exists := g.vertices[key]; exists {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateVertex, key)
	}

	return g.insert(key), nil
}

// EnsureVertex returns the vertex for key, creating it if missing.
func (g *Graph[K]) EnsureVertex(key K) *Vertex[K] {
	if v, exists := g.vertices[key]; exists {
		return v
	}

	return g.insert(key)
}

func (g *Graph[K]) insert(key K) *Vertex[K] {
	v := newVertex(key)
	g.vertices[key] = v
	g.keys = append(g.keys, key)

	return v
}

// Vertex returns the vertex stored under key.
// Returns ErrKeyNotFound if key was never added; it never auto-creates.
func (g *Graph[K]) Vertex(key K) (*Vertex[K], error) {
	v, ok := g.vertices[key]
	if !ok {
		return nil, fmt.Errorf("%w: vertex %v", ErrKeyNotFound, key)
	}

	return v, nil
}

// HasVertex reports whether key is stored in the graph.
func (g *Graph[K]) HasVertex(key K) bool {
	_, ok := g.vertices[key]
	return ok
}

// Vertices returns all vertex keys in insertion order. The slice is a
// copy owned by the caller.
func (g *Graph[K]) Vertices() []K {
	out := make([]K, len(g.keys))
	copy(out, g.keys)

	return out
}

// All returns a finite, restartable sequence over every vertex in
// insertion order. Each pass re-enumerates the current state; mutating
// the graph during a pass is not supported.
func (g *Graph[K]) All() iter.Seq[*Vertex[K]] {
	return func(yield func(*Vertex[K]) bool) {
		for _, k := range g.keys {
			if !yield(g.vertices[k]) {
				return
			}
		}
	}
}

// VertexCount returns the number of stored vertices.
func (g *Graph[K]) VertexCount() int { return len(g.vertices) }
