// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/graphio"
)

// ErrUnknownTopology indicates a generate argument outside generateKinds.
var ErrUnknownTopology = errors.New("generate: unknown topology")

var generateKinds = []string{"path", "cycle", "star", "complete", "grid", "random"}

type generateFlags struct {
	n          int
	cols       int
	p          float64
	seed       int64
	maxWeight  int
	unweighted bool
	out        string
}

func newGenerateCommand(a *app) *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:       "generate <" + strings.Join(generateKinds, "|") + ">",
		Short:     "Write a synthetic graph document",
		Args:      cobra.ExactArgs(1),
		ValidArgs: generateKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.n, "n", 8, "number of nodes (rows for grid)")
	fl.IntVar(&f.cols, "cols", 0, "grid columns (default n)")
	fl.Float64Var(&f.p, "p", 0.3, "edge probability for random")
	fl.Int64Var(&f.seed, "seed", 1, "random seed")
	fl.IntVar(&f.maxWeight, "max-weight", 0, "draw whole weights from [1,max-weight] (default: every weight 1)")
	fl.BoolVar(&f.unweighted, "unweighted", false, "emit edges without weights")
	fl.StringVar(&f.out, "out", "", "write to this file instead of stdout")

	return cmd
}

func constructorFor(kind string, f generateFlags) (builder.Constructor, error) {
	switch kind {
	case "path":
		return builder.Path(f.n), nil
	case "cycle":
		return builder.Cycle(f.n), nil
	case "star":
		return builder.Star(f.n), nil
	case "complete":
		return builder.Complete(f.n), nil
	case "grid":
		cols := f.cols
		if cols == 0 {
			cols = f.n
		}
		return builder.Grid(f.n, cols), nil
	case "random":
		return builder.RandomSparse(f.n, f.p), nil
	default:
		return nil, fmt.Errorf("%w %q (want one of %s)", ErrUnknownTopology, kind, strings.Join(generateKinds, ", "))
	}
}

func (a *app) generate(cmd *cobra.Command, kind string, f generateFlags) error {
	cons, err := constructorFor(kind, f)
	if err != nil {
		return err
	}

	bopts := []builder.BuilderOption{builder.WithSeed(f.seed)}
	switch {
	case f.unweighted:
		bopts = append(bopts, builder.WithoutWeights())
	case f.maxWeight > 0:
		bopts = append(bopts, builder.WithIntegerWeight(f.maxWeight))
	case f.maxWeight < 0:
		return fmt.Errorf("generate: --max-weight must be positive, got %d", f.maxWeight)
	}

	g, err := builder.BuildGraph(bopts, cons)
	if err != nil {
		return err
	}
	a.lg.Info("generated",
		zap.String("topology", kind),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int64("seed", f.seed),
	)

	if f.out != "" {
		return graphio.Save(f.out, g)
	}

	return graphio.Encode(cmd.OutOrStdout(), g)
}
