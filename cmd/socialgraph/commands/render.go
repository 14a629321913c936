package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/edgelist"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	levelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFCC00"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// levelsReport is the serializable form of a traversal result.
type levelsReport struct {
	Source  string         `json:"source" yaml:"source"`
	Target  string         `json:"target,omitempty" yaml:"target,omitempty"`
	Found   *bool          `json:"found,omitempty" yaml:"found,omitempty"`
	Levels  map[string]int `json:"levels" yaml:"levels"`
	Visited int            `json:"visited" yaml:"visited"`
}

// graphReport is the serializable form of a whole graph.
type graphReport struct {
	Vertices []string     `json:"vertices" yaml:"vertices"`
	Edges    []edgeReport `json:"edges" yaml:"edges"`
}

type edgeReport struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

func newLevelsReport(source string, levels bfs.Levels[string]) levelsReport {
	return levelsReport{Source: source, Levels: levels, Visited: len(levels)}
}

func newPathReport(source, target string, levels bfs.Levels[string]) levelsReport {
	r := newLevelsReport(source, levels)
	_, found := levels.Distance(target)
	r.Target, r.Found = target, &found

	return r
}

func newGraphReport(g *core.Graph[string]) graphReport {
	r := graphReport{Vertices: g.Vertices(), Edges: []edgeReport{}}
	for e := range g.Edges() {
		r.Edges = append(r.Edges, edgeReport{From: e.From, To: e.To, Weight: e.Weight})
	}

	return r
}

// renderer writes reports in the configured format.
type renderer struct {
	out   io.Writer
	cfg   Config
	style func(lipgloss.Style, string) string
}

func newRenderer(out io.Writer, cfg Config) renderer {
	r := renderer{out: out, cfg: cfg}
	r.style = func(_ lipgloss.Style, s string) string { return s }
	if cfg.Color {
		r.style = func(st lipgloss.Style, s string) string { return st.Render(s) }
	}

	return r
}

// structured handles yaml and json; it reports false for text.
func (r renderer) structured(v any) (bool, error) {
	switch r.cfg.Format {
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("render yaml: %w", err)
		}
		return true, enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("render json: %w", err)
		}
		return true, nil
	default:
		return false, nil
	}
}

// Levels prints a traversal result. Text output lists one vertex per
// line ordered by level, then by name.
func (r renderer) Levels(rep levelsReport) error {
	if done, err := r.structured(rep); done {
		return err
	}

	title := "Levels from " + rep.Source
	if rep.Target != "" {
		title = fmt.Sprintf("Path %s -> %s", rep.Source, rep.Target)
	}
	fmt.Fprintln(r.out, r.style(titleStyle, title))

	names := slices.Collect(maps.Keys(rep.Levels))
	slices.SortFunc(names, func(a, b string) int {
		if d := rep.Levels[a] - rep.Levels[b]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	for _, n := range names {
		fmt.Fprintf(r.out, "  %-*s %s\n", width, n, r.style(levelStyle, fmt.Sprint(rep.Levels[n])))
	}

	if rep.Found != nil {
		if *rep.Found {
			fmt.Fprintf(r.out, "distance: %d\n", rep.Levels[rep.Target])
		} else {
			fmt.Fprintln(r.out, r.style(dimStyle, "target not reachable"))
		}
	}
	fmt.Fprintln(r.out, r.style(dimStyle, fmt.Sprintf("%d vertices discovered", rep.Visited)))

	return nil
}

// Graph prints a whole graph; text output uses the edge-list listing.
func (r renderer) Graph(g *core.Graph[string]) error {
	if done, err := r.structured(newGraphReport(g)); done {
		return err
	}

	return edgelist.Listing(r.out, g)
}
