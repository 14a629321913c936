package bfs_test

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
)

// printLevels prints levels ordered by distance, then by key.
func printLevels(levels bfs.Levels[string]) {
	keys := slices.Collect(maps.Keys(levels))
	slices.SortFunc(keys, func(a, b string) int {
		if levels[a] != levels[b] {
			return levels[a] - levels[b]
		}
		return strings.Compare(a, b)
	})
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s:%d", k, levels[k])
	}
	fmt.Println(strings.Join(parts, " "))
}

// ExampleBFS_friends computes degrees of separation in a small friend graph.
// Friendship is mutual, so every edge is added in both directions.
func ExampleBFS_friends() {
	g := core.NewGraph[string]()
	for _, name := range []string{"Ann", "Bob", "Cat", "Dan", "Eve"} {
		g.EnsureVertex(name)
	}
	friends := [][2]string{{"Ann", "Bob"}, {"Bob", "Cat"}, {"Cat", "Dan"}, {"Ann", "Eve"}}
	for _, f := range friends {
		_ = g.AddEdge(f[0], f[1], 0)
		_ = g.AddEdge(f[1], f[0], 0)
	}

	levels, err := bfs.BFS(g, "Ann")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	printLevels(levels)
	// Output:
	// Ann:0 Bob:1 Eve:1 Cat:2 Dan:3
}

// ExampleShortestPath shows the early exit: vertices behind the target's
// parent are never expanded.
func ExampleShortestPath() {
	g := core.NewGraph[int]()
	for k := 1; k <= 10; k++ {
		g.EnsureVertex(k)
	}
	for _, e := range [][2]int{{1, 2}, {1, 3}, {2, 4}, {2, 6}, {2, 5}} {
		_ = g.AddEdge(e[0], e[1], 0)
	}

	levels, err := bfs.ShortestPath(g, 1, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d, _ := levels.Distance(6)
	fmt.Println(len(levels), "vertices discovered, distance to 6 =", d)
	// Output:
	// 4 vertices discovered, distance to 6 = 2
}

// ExampleBFS_depthLimitOnChain applies WithMaxDepth to a 10-vertex chain.
func ExampleBFS_depthLimitOnChain() {
	g := core.NewGraph[string]()
	for i := 0; i < 10; i++ {
		g.EnsureVertex(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < 9; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), 0)
	}

	var order []string
	_, err := bfs.BFS(g, "v0",
		bfs.WithMaxDepth[string](2),
		bfs.WithOnVisit(func(id string, _ int) error { order = append(order, id); return nil }),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [v0 v1 v2]
}

// ExampleShortestPath_routers finds the fewest hops between two routers.
//
//	R1 ── R2 ── R3
//	│     │
//	R4 ── R5 ── R6
//
// Links are bidirectional, so each one is added as two edges.
func ExampleShortestPath_routers() {
	g := core.NewGraph[string]()
	for _, r := range []string{"R1", "R2", "R3", "R4", "R5", "R6"} {
		g.EnsureVertex(r)
	}
	links := [][2]string{
		{"R1", "R2"}, {"R2", "R3"},
		{"R1", "R4"}, {"R4", "R5"},
		{"R2", "R5"}, {"R5", "R6"},
	}
	for _, l := range links {
		_ = g.AddEdge(l[0], l[1], 0)
		_ = g.AddEdge(l[1], l[0], 0)
	}

	levels, err := bfs.ShortestPath(g, "R1", "R6")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	hops, _ := levels.Distance("R6")
	fmt.Printf("R1 -> R6: %d hops (%d vertices discovered)\n", hops, len(levels))
	// Output:
	// R1 -> R6: 3 hops (6 vertices discovered)
}
