package bfs

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[K comparable] struct {
	v     *core.Vertex[K]
	depth int
}

// walker encapsulates mutable BFS state.
type walker[K comparable] struct {
	opts   Options[K]
	queue  []queueItem[K]
	head   int
	levels Levels[K]

	// target is consulted only when hasTarget is set (ShortestPath).
	target    K
	hasTarget bool
}

// BFS runs breadth-first search on g starting from source and returns the
// level of every reachable vertex. Edge weights are ignored.
// Returns ErrGraphNil, core.ErrKeyNotFound for an unknown source,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS[K comparable](g *core.Graph[K], source K, opts ...Option[K]) (Levels[K], error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.levels, nil
}

// ShortestPath runs the same traversal as BFS but stops as soon as a
// dequeued vertex has target as a direct, not yet discovered neighbor:
// target is recorded at level+1 and the partial level map is returned
// without draining the queue. If target is never met the full BFS level
// map is returned and target is absent from it. source == target is not
// special-cased.
func ShortestPath[K comparable](g *core.Graph[K], source, target K, opts ...Option[K]) (Levels[K], error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return nil, err
	}
	w.target, w.hasTarget = target, true
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.levels, nil
}

// newWalker validates inputs and seeds the queue with (source, 0).
func newWalker[K comparable](g *core.Graph[K], source K, opts []Option[K]) (*walker[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[K]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	start, err := g.Vertex(source)
	if err != nil {
		return nil, fmt.Errorf("bfs: source: %w", err)
	}

	n := g.VertexCount()
	w := &walker[K]{
		opts:   o,
		queue:  make([]queueItem[K], 0, n),
		levels: make(Levels[K], n),
	}
	w.enqueue(start, 0)

	return w, nil
}

// enqueue marks v discovered at depth d, calls OnEnqueue and queues it.
func (w *walker[K]) enqueue(v *core.Vertex[K], d int) {
	w.levels[v.ID()] = d
	w.opts.OnEnqueue(v.ID(), d)
	w.queue = append(w.queue, queueItem[K]{v: v, depth: d})
}

// loop processes the queue until it is empty, the target is found, or a
// hook fails.
func (w *walker[K]) loop() error {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++

		if err := w.opts.OnVisit(item.v.ID(), item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.v.ID(), err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		if w.hasTarget && w.reachesTarget(item.v) {
			w.levels[w.target] = next
			return nil
		}
		for nbr := range item.v.Neighbors() {
			if _, seen := w.levels[nbr.ID()]; !seen {
				w.enqueue(nbr, next)
			}
		}
	}

	return nil
}

// reachesTarget reports whether target is an undiscovered direct neighbor of v.
func (w *walker[K]) reachesTarget(v *core.Vertex[K]) bool {
	if _, seen := w.levels[w.target]; seen {
		return false
	}
	for nbr := range v.Neighbors() {
		if nbr.ID() == w.target {
			return true
		}
	}

	return false
}
