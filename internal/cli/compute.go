// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/components"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/graphio"
	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/internal/watch"
	pk "github.com/katalvlaran/spanforest/prim_kruskal"
)

// ErrRootRequired indicates prim was run without --root or a configured root.
var ErrRootRequired = errors.New("prim: a root node is required (--root or root in config)")

// computeFn turns a loaded graph into a printable result.
type computeFn func(g *core.Graph[string]) (graphio.Result, error)

func newKruskalCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kruskal <graph.toml>",
		Short: "Minimum spanning forest by Kruskal's algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOnFile(cmd, args[0], pk.MethodKruskal, kruskalResult)
		},
	}
}

func newPrimCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prim <graph.toml>",
		Short: "Minimum spanning tree of the root's component by Prim's algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := a.cfg.Root
			if root == "" {
				return ErrRootRequired
			}

			return a.runOnFile(cmd, args[0], pk.MethodPrim, func(g *core.Graph[string]) (graphio.Result, error) {
				return primResult(g, root)
			})
		},
	}
	cmd.Flags().String("root", "", "start node label")
	_ = a.v.BindPFlag(config.KeyRoot, cmd.Flags().Lookup("root"))

	return cmd
}

func newComponentsCommand(a *app) *cobra.Command {
	var of string
	cmd := &cobra.Command{
		Use:   "components <graph.toml>",
		Short: "Partition the nodes into connected components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if of != "" {
				return a.runOnFile(cmd, args[0], "components", func(g *core.Graph[string]) (graphio.Result, error) {
					return componentOfResult(g, of)
				})
			}

			return a.runOnFile(cmd, args[0], "components", componentsResult)
		},
	}
	cmd.Flags().StringVar(&of, "of", "", "report only the component containing this node")

	return cmd
}

func kruskalResult(g *core.Graph[string]) (graphio.Result, error) {
	edges, total, err := pk.Kruskal[string](g)
	if err != nil {
		return graphio.Result{}, err
	}

	return graphio.TreeResult(pk.MethodKruskal, "", g.NodeCount(), edges, total), nil
}

func primResult(g *core.Graph[string], root string) (graphio.Result, error) {
	edges, total, err := pk.Compute[string](g, pk.NewOptions(
		pk.WithMethod[string](pk.MethodPrim),
		pk.WithRoot(root),
	))
	if err != nil {
		return graphio.Result{}, err
	}

	return graphio.TreeResult(pk.MethodPrim, root, g.NodeCount(), edges, total), nil
}

func componentsResult(g *core.Graph[string]) (graphio.Result, error) {
	cc, err := components.ConnectedComponents[string](g)
	if err != nil {
		return graphio.Result{}, err
	}

	return graphio.ComponentsResult(g.NodeCount(), cc), nil
}

func componentOfResult(g *core.Graph[string], label string) (graphio.Result, error) {
	c, err := components.ComponentOf[string](g, core.NewNode(label))
	if err != nil {
		return graphio.Result{}, err
	}

	res := graphio.ComponentsResult(g.NodeCount(), [][]core.Node[string]{c})
	res.Root = label

	return res, nil
}

// runOnFile computes once, or on every change of path in watch mode.
func (a *app) runOnFile(cmd *cobra.Command, path, algorithm string, fn computeFn) error {
	once := func() error {
		return a.computeAndPrint(cmd, path, algorithm, fn)
	}
	if !a.cfg.Watch {
		return once()
	}

	a.lg.Info("watching graph file",
		zap.String("path", path),
		zap.String("algorithm", algorithm),
		zap.Duration("debounce", a.cfg.Debounce),
	)

	return watch.Run(cmd.Context(), path, a.cfg.Debounce, a.lg, once)
}

func (a *app) computeAndPrint(cmd *cobra.Command, path, algorithm string, fn computeFn) error {
	g, err := graphio.Load(path)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := fn(g)
	if err != nil {
		return fmt.Errorf("%s: %w", algorithm, err)
	}
	a.lg.Info("computed",
		zap.String("algorithm", algorithm),
		zap.String("path", path),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Duration("duration", time.Since(start)),
		zap.Int("result_size", resultSize(res)),
	)

	return printResult(cmd.OutOrStdout(), a.cfg.Output, res)
}

func resultSize(res graphio.Result) int {
	if res.Components != nil {
		return len(res.Components)
	}

	return len(res.Edges)
}
