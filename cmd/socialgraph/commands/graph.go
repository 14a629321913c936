package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/bfs"
	"github.com/katalvlaran/socialgraph/builder"
	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/edgelist"
)

// loadGraph reads an edge-list file and builds its graph.
func (a *app) loadGraph(path string) (*core.Graph[string], error) {
	doc, err := edgelist.Load(path)
	if err != nil {
		return nil, err
	}
	g, err := doc.Graph()
	if err != nil {
		return nil, err
	}
	a.log.Info("graph loaded", "file", path, "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return g, nil
}

// traversalOpts logs every visit at debug level and applies the depth limit.
func (a *app) traversalOpts(maxDepth int) []bfs.Option[string] {
	return []bfs.Option[string]{
		bfs.WithMaxDepth[string](maxDepth),
		bfs.WithOnVisit(func(id string, depth int) error {
			a.log.Debug("visit", "vertex", id, "depth", depth)
			return nil
		}),
	}
}

// runTraversal runs BFS, or ShortestPath when target is non-empty, and
// renders the result.
func (a *app) runTraversal(out io.Writer, g *core.Graph[string], source, target string, maxDepth int) error {
	opts := a.traversalOpts(maxDepth)
	r := newRenderer(out, a.cfg)

	if target == "" {
		levels, err := bfs.BFS(g, source, opts...)
		if err != nil {
			return err
		}
		return r.Levels(newLevelsReport(source, levels))
	}

	if !g.HasVertex(target) {
		return fmt.Errorf("target %q: %w", target, core.ErrKeyNotFound)
	}
	levels, err := bfs.ShortestPath(g, source, target, opts...)
	if err != nil {
		return err
	}
	if _, ok := levels.Distance(target); !ok {
		a.log.Warn("target not reachable", "source", source, "target", target)
	}

	return r.Levels(newPathReport(source, target, levels))
}

func newEdgesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edges <file>",
		Short: "Print the vertices and edges of an edge-list file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			return newRenderer(cmd.OutOrStdout(), a.cfg).Graph(g)
		},
	}
}

func newBFSCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "bfs <file> <source>",
		Short: "Print the hop distance of every vertex reachable from source",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			return a.runTraversal(cmd.OutOrStdout(), g, args[1], "", maxDepth)
		},
	}
	addMaxDepthFlag(cmd.Flags(), &maxDepth)

	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "path <file> <source> <target>",
		Short: "Search from source and stop as soon as target is found",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			return a.runTraversal(cmd.OutOrStdout(), g, args[1], args[2], maxDepth)
		},
	}
	addMaxDepthFlag(cmd.Flags(), &maxDepth)

	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	var showGraph bool
	cmd := &cobra.Command{
		Use:   "demo [source] [target]",
		Short: "Run a traversal on the built-in social network",
		Long: `demo builds the built-in twelve-person social network and runs BFS from
source (default William). With a target it runs the early-exit search.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := builder.BuildGraph(nil, builder.Social())
			if err != nil {
				return err
			}
			a.log.Info("demo graph built", "vertices", g.VertexCount(), "edges", g.EdgeCount())

			out := cmd.OutOrStdout()
			if showGraph {
				return newRenderer(out, a.cfg).Graph(g)
			}

			source, target := "William", ""
			if len(args) > 0 {
				source = args[0]
			}
			if len(args) > 1 {
				target = args[1]
			}
			return a.runTraversal(out, g, source, target, 0)
		},
	}
	cmd.Flags().BoolVar(&showGraph, "graph", false, "print the demo graph instead of traversing it")

	return cmd
}
