// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// impl_star.go - implementation of Star(center, leaves...) constructor.
//
// Contract:
//   - At least one leaf (else ErrTooFewVertices).
//   - Spokes are one-directional center → leaf, emitted in argument order.
//   - Weight policy: cfg.weightFn(cfg.rng) per spoke.
//
// Complexity: O(len(leaves)).

package builder

import (
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

const (
	methodStar    = "Star"
	minStarLeaves = 1
)

// Star returns a Constructor that builds a star with hub center and the
// given leaves. Leaves have no outgoing edges, so BFS from a leaf reaches
// only the leaf itself.
func Star(center string, leaves ...string) Constructor {
	return func(g *core.Graph[string], cfg builderConfig) error {
		if len(leaves) < minStarLeaves {
			return fmt.Errorf("%s: leaves=%d < min=%d: %w", methodStar, len(leaves), minStarLeaves, ErrTooFewVertices)
		}

		g.EnsureVertex(center)
		for _, leaf := range leaves {
			g.EnsureVertex(leaf)
			w := cfg.weight()
			if err := g.AddEdge(center, leaf, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodStar, center, leaf, w, err)
			}
		}

		return nil
	}
}
