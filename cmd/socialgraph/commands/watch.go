package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/socialgraph/core"
	"github.com/katalvlaran/socialgraph/edgelist"
)

func newWatchCmd(a *app) *cobra.Command {
	var maxDepth int
	cmd := &cobra.Command{
		Use:   "watch <file> <source>",
		Short: "Re-run BFS from source every time the edge-list file changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return a.watch(ctx, cmd, args[0], args[1], maxDepth)
		},
	}
	addMaxDepthFlag(cmd.Flags(), &maxDepth)

	return cmd
}

// watch prints the initial traversal, then one more per successful
// reload, until ctx is done.
func (a *app) watch(ctx context.Context, cmd *cobra.Command, path, source string, maxDepth int) error {
	w, err := edgelist.NewWatcher(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if err := a.runTraversal(out, w.Graph(), source, "", maxDepth); err != nil {
		return err
	}

	w.OnChange(func(g *core.Graph[string]) {
		a.log.Info("graph reloaded", "file", path, "vertices", g.VertexCount())
		if err := a.runTraversal(out, g, source, "", maxDepth); err != nil {
			a.log.Error("traversal failed", "error", err)
		}
	})
	w.OnError(func(err error) {
		a.log.Error("reload failed", "file", path, "error", err)
	})

	stop, err := w.Watch()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer stop()

	a.log.Info("watching", "file", path, "source", source)
	<-ctx.Done()

	return nil
}
