// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted hop distances from a source vertex.
//
// What
//
//   - BFS(g, s) explores vertices in non-decreasing distance from s and
//     returns Levels: vertex key → hop count. Unreached keys are absent.
//   - ShortestPath(g, s, t) runs the same traversal but returns as soon as
//     t shows up as a direct neighbor of the vertex being expanded. The
//     partial map holds t at its hop distance plus everything discovered
//     so far. If t is unreachable the result equals BFS(g, s).
//   - Edge weights stored in the graph play no role in either traversal.
//
// Discovery rule
//
//	A vertex receives its level when it is first discovered, before it
//	is queued. Each vertex is therefore queued at most once and keeps the
//	level of its first discovery, which is its minimum hop count.
//
// Determinism
//
//	core.Vertex.Neighbors enumerates in insertion order, so both the
//	visit sequence and any early-exit result are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the level map
//
// Usage
//
//	levels, err := bfs.BFS(g, "Karen")
//	levels, err := bfs.ShortestPath(g, 1, 6, bfs.WithMaxDepth[int](4))
//
// Options
//
//   - WithOnEnqueue(fn): hook when a vertex is discovered.
//   - WithOnVisit(fn):   hook when a vertex is dequeued; an error aborts.
//   - WithMaxDepth(d):   stop exploring beyond depth d (>0), 0 = no limit.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - core.ErrKeyNotFound if the source vertex does not exist.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
//
// Concurrency
//
//	Traversals only read the graph. They are safe to run in parallel as
//	long as nobody mutates the graph meanwhile.
package bfs
