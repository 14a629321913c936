// SPDX-License-Identifier: MIT
// Package: socialgraph/builder
//
// config.go - resolved, immutable configuration shared by constructors.

package builder

import "math/rand"

// builderConfig is resolved once per BuildGraph call from BuilderOptions.
type builderConfig struct {
	// idFn maps a zero-based index to a vertex ID (Chain).
	idFn IDFn

	// rng is handed to weightFn; nil unless WithSeed/WithRand was used.
	rng *rand.Rand

	// weightFn produces the weight of each emitted edge.
	weightFn func(*rand.Rand) int64
}

// defaultEdgeWeight matches the core default for unweighted edges.
const defaultEdgeWeight = int64(0)

// newBuilderConfig applies opts over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     SymbolNumberIDFn(defaultIDPrefix),
		weightFn: func(*rand.Rand) int64 { return defaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
