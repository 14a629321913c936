package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/socialgraph/core"
)

// Marker is the only graph marker the format defines.
const Marker = "G"

// EdgeSpec is one parsed edge token. Line is the 1-based input line.
type EdgeSpec struct {
	From   string
	To     string
	Weight int64
	Line   int
}

// Document is the parsed form of an edge-list input.
type Document struct {
	Vertices []string
	Edges    []EdgeSpec
}

// token is a whitespace-delimited word and the line it came from.
type token struct {
	text string
	line int
}

// Load opens path and parses it.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Parse reads an edge-list document from r.
func Parse(r io.Reader) (*Document, error) {
	toks, err := tokenize(r)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrMissingHeader
	}
	if toks[0].text != Marker {
		return nil, fmt.Errorf("%w: got %q", ErrMissingHeader, toks[0].text)
	}
	if len(toks) < 2 {
		return nil, fmt.Errorf("%w: no vertex list after marker", ErrBadVertexList)
	}

	doc := &Document{}
	for _, name := range strings.Split(toks[1].text, ",") {
		if name == "" {
			return nil, fmt.Errorf("%w: line %d: empty vertex name", ErrBadVertexList, toks[1].line)
		}
		doc.Vertices = append(doc.Vertices, name)
	}

	for _, tk := range toks[2:] {
		e, err := parseEdge(tk)
		if err != nil {
			return nil, err
		}
		doc.Edges = append(doc.Edges, e)
	}

	return doc, nil
}

func tokenize(r io.Reader) ([]token, error) {
	var toks []token
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		for _, f := range strings.Fields(sc.Text()) {
			toks = append(toks, token{text: f, line: line})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return toks, nil
}

// parseEdge decodes "(from,to)" or "(from,to,weight)".
func parseEdge(tk token) (EdgeSpec, error) {
	body, ok := strings.CutPrefix(tk.text, "(")
	if ok {
		body, ok = strings.CutSuffix(body, ")")
	}
	if !ok {
		return EdgeSpec{}, fmt.Errorf("%w: line %d: %q is not parenthesized", ErrBadEdge, tk.line, tk.text)
	}

	parts := strings.Split(body, ",")
	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" || parts[1] == "" {
		return EdgeSpec{}, fmt.Errorf("%w: line %d: %q", ErrBadEdge, tk.line, tk.text)
	}

	e := EdgeSpec{From: parts[0], To: parts[1], Line: tk.line}
	if len(parts) == 3 {
		w, err := strconv.ParseInt(parts[2], 10, 64)
		if err != nil {
			return EdgeSpec{}, fmt.Errorf("%w: line %d: %q", ErrBadWeight, tk.line, parts[2])
		}
		e.Weight = w
	}

	return e, nil
}

// Graph builds a core.Graph from the document: vertices in list order,
// then edges in input order.
func (d *Document) Graph() (*core.Graph[string], error) {
	g := core.NewGraph[string]()
	for _, v := range d.Vertices {
		if _, err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("edgelist: vertex list: %w", err)
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", e.Line, err)
		}
	}

	return g, nil
}
