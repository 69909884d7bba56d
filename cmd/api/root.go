package main

import (
	"context"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"salary-viz-service/internal/config"
	"salary-viz-service/internal/logging"
)

type rootOptions struct {
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "salary-viz",
		Short: "Cross-filtered salary charts",
		Long: `salary-viz loads a salary dataset, aggregates it per experience level and country,
and serves bar, choropleth, scatter and parallel-coordinates charts that share one filter.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (YAML)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override log.level")

	root.AddCommand(
		newServeCmd(opts),
		newRenderCmd(opts),
		newImportCmd(opts),
	)
	return root
}

func execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// setup loads the config and builds the logger every command shares.
func (o *rootOptions) setup() (*config.Config, *pterm.Logger, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, nil, err
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
