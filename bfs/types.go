// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Levels maps every reached vertex key to its distance in edge hops from
// the source. A key absent from Levels was not reached.
type Levels[K comparable] map[K]int

// Distance returns the hop count to k and whether k was reached.
func (l Levels[K]) Distance(k K) (int, bool) {
	d, ok := l[k]
	return d, ok
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when BFS or ShortestPath is invoked.
type Option[K comparable] func(*Options[K])

// Options holds parameters and callbacks to customize a traversal.
type Options[K comparable] struct {
	// OnEnqueue is called when a vertex is first discovered and queued.
	OnEnqueue func(id K, depth int)

	// OnVisit is called when a vertex is dequeued. If it returns an error,
	// the traversal aborts and propagates that error.
	OnVisit func(id K, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no depth limit and no-op hooks.
func DefaultOptions[K comparable]() Options[K] {
	return Options[K]{
		OnEnqueue: func(K, int) {},
		OnVisit:   func(K, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue[K comparable](fn func(id K, depth int)) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on dequeue; returning an error
// from this callback stops the traversal.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}
