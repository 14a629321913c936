// Package builder provides deterministic fixture constructors for
// core.Graph[string]: the demo friends network, stars and chains.
//
// The package offers the following key components:
//
//   - BuildGraph(bopts, cons...): creates a graph and applies Constructor
//     closures in order, wrapping the first failure.
//   - Constructors:
//     – Social():              the friends network from the social demo.
//     – Star(center, leaves…): one-directional spokes center → leaf.
//     – Chain(n):              v0 → v1 → … → v(n-1).
//   - Options (BuilderOption):
//     – WithIDScheme(fn) / WithSymbNumb(prefix) / WithExcelColumnIDs():
//     vertex labels for Chain.
//     – WithSeed(seed) / WithRand(r): RNG handed to the weight function.
//     – WithWeightFn(fn): per-edge weight generator (default: constant 0).
//
// Guarantees:
//
//   - Same options and constructor order produce identical graphs,
//     including vertex, neighbor and edge enumeration order.
//   - Constructors never panic; invalid parameters yield sentinel errors.
//     Option constructors panic on nil functions (programmer error).
//   - Constructors use EnsureVertex, so composing fixtures that share
//     vertices (e.g. a Star whose center is a Chain vertex) merges them.
//
// Errors:
//
//	ErrTooFewVertices  - size parameter below the constructor minimum.
//	ErrConstructFailed - nil constructor passed to BuildGraph.
//	core errors        - wrapped with the constructor name.
package builder
