// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for the core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socialgraph/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"

	VertexX = "X"
	VertexY = "Y"
)

// Common weights used across core tests.
const (
	Weight0 = 0
	Weight3 = 3
	Weight5 = 5
	Weight7 = 7
)

// newGraphWith returns a graph holding ids in order, failing the test on
// any insertion error.
func newGraphWith(t testing.TB, ids ...string) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, id := range ids {
		_, err := g.AddVertex(id)
		require.NoError(t, err, "AddVertex(%q)", id)
	}

	return g
}

// mustVertex fetches id from g or fails the test.
func mustVertex(t testing.TB, g *core.Graph[string], id string) *core.Vertex[string] {
	t.Helper()
	v, err := g.Vertex(id)
	require.NoError(t, err, "Vertex(%q)", id)

	return v
}
