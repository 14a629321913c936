package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/socialgraph/core"
)

// reserved holds the characters the format uses as delimiters.
const reserved = ",()"

// Write encodes g in the edge-list format. Every edge carries its weight
// explicitly. Vertex names that are empty or contain whitespace, commas
// or parentheses fail with ErrInvalidName before anything is written.
func Write(w io.Writer, g *core.Graph[string]) error {
	vertices := g.Vertices()
	for _, v := range vertices {
		if v == "" || strings.ContainsAny(v, reserved) || len(strings.Fields(v)) != 1 {
			return fmt.Errorf("%w: %q", ErrInvalidName, v)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Marker)
	fmt.Fprintln(bw, strings.Join(vertices, ","))
	for e := range g.Edges() {
		fmt.Fprintf(bw, "(%s,%s,%d)\n", e.From, e.To, e.Weight)
	}

	return bw.Flush()
}

// Listing prints the human-readable summary of g: vertex and edge counts
// followed by one "(from ,to, weight)" line per edge.
func Listing(w io.Writer, g *core.Graph[string]) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Vertices:", g.VertexCount())
	fmt.Fprintln(bw, "# Edges: ", g.EdgeCount())
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Edge List:")
	for e := range g.Edges() {
		fmt.Fprintf(bw, "(%s ,%s, %d)\n", e.From, e.To, e.Weight)
	}

	return bw.Flush()
}
