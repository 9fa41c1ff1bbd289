// SPDX-License-Identifier: MIT

// Package cli implements the spanforest command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/internal/logging"
)

// Option customizes the command tree built by NewRootCommand.
type Option func(*app)

// WithLogger replaces the logger otherwise built from log_level.
func WithLogger(lg *zap.Logger) Option {
	return func(a *app) { a.lg = lg }
}

// WithViper supplies the viper instance flags and config are bound to.
func WithViper(v *viper.Viper) Option {
	return func(a *app) { a.v = v }
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfg     config.Config
	lg      *zap.Logger
	ownsLog bool
}

// NewRootCommand builds the spanforest command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{}
	for _, o := range opts {
		o(a)
	}
	if a.v == nil {
		a.v = viper.New()
	}

	root := &cobra.Command{
		Use:           "spanforest",
		Short:         "Minimum spanning forests and connected components of weighted graphs",
		Long:          "spanforest reads undirected weighted graphs from TOML documents and reports Kruskal or Prim spanning forests and connected components.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.ownsLog {
				_ = a.lg.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .spanforest.yaml)")
	pf.StringP("output", "o", config.OutputTable, "output format: table or toml")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.Bool("watch", false, "recompute whenever the graph file changes")
	pf.Duration("debounce", 0, "quiet period before a change triggers a recompute (default 200ms)")
	// Unchanged flags fall back to file, env and then config defaults.
	_ = a.v.BindPFlag(config.KeyOutput, pf.Lookup("output"))
	_ = a.v.BindPFlag(config.KeyLogLevel, pf.Lookup("log-level"))
	_ = a.v.BindPFlag(config.KeyWatch, pf.Lookup("watch"))
	_ = a.v.BindPFlag(config.KeyDebounce, pf.Lookup("debounce"))

	root.AddCommand(
		newKruskalCommand(a),
		newPrimCommand(a),
		newComponentsCommand(a),
		newGenerateCommand(a),
	)

	return root
}

// setup resolves configuration and the logger once flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	if err := config.Init(a.v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.lg == nil {
		lg, err := logging.NewWithWriter(cfg.LogLevel, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.lg = lg
		a.ownsLog = true
	}

	return nil
}

// Execute runs the command tree under ctx, printing any error to stderr.
func Execute(ctx context.Context, root *cobra.Command) error {
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}

	return nil
}
