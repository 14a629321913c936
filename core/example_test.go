package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialgraph/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph keyed by strings and add three vertices.
	g := core.NewGraph[string]()
	for _, id := range []string{"A", "B", "C"} {
		if _, err := g.AddVertex(id); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	// 2) Edges are one-directional; add the reverse explicitly if needed.
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 0)

	// 3) Inspect.
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Edge A→B exists?", g.HasEdge("A", "B"))
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))
	for v := range g.All() {
		fmt.Println(v)
	}

	// Output:
	// Vertices: [A B C]
	// Edge A→B exists? true
	// Edge B→A exists? false
	// A adjacent to [B]
	// B adjacent to [C]
	// C adjacent to []
}

// ExampleGraph_AddEdge shows that unknown endpoints are reported, not created.
func ExampleGraph_AddEdge() {
	g := core.NewGraph[int]()
	_, _ = g.AddVertex(1)

	err := g.AddEdge(1, 2, 0)
	fmt.Println(errors.Is(err, core.ErrKeyNotFound), g.HasVertex(2))

	// Output:
	// true false
}

// ExampleVertex_EdgeWeight shows that the first recorded weight wins.
func ExampleVertex_EdgeWeight() {
	g := core.NewGraph[string]()
	a, _ := g.AddVertex("a")
	b, _ := g.AddVertex("b")

	_ = g.AddEdge("a", "b", 4)
	_ = g.AddEdge("a", "b", 9) // ignored

	w, _ := a.EdgeWeight(b)
	fmt.Println(w)

	// Output:
	// 4
}
