// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertices cfg.idFn(0..n-1), edges idFn(i-1) → idFn(i) in increasing i.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a directed path of n vertices.
func Chain(n int) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			g.EnsureVertex(cfg.idFn(i))
		}
		for i := 1; i < n; i++ {
			u, v := cfg.idFn(i-1), cfg.idFn(i)
			w := cfg.weight()
			if err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodChain, u, v, w, err)
			}
		}

		return nil
	}
}
