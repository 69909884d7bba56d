package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/usecase"
)

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var (
		outDir    string
		dimension string
		filter    string
		highlight string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every chart to SVG files",
		Example: `  salary-viz render --out charts
  salary-viz render --out charts --filter EN,SE
  salary-viz render --out charts --dimension company_size --filter L`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			a, err := bootstrap(ctx, cfg, logger)
			if a != nil {
				defer a.Close()
			}
			if err != nil {
				return err
			}

			if filter != "" || dimension != "" {
				sel, err := a.filterUC.Execute(ctx, usecase.SetFilterInput{
					Dimension: dimension,
					Values:    splitList(filter),
				})
				if err != nil {
					return err
				}
				logger.Info("filter applied", logger.Args("dimension", sel.Dimension, "values", sel.Values))
			}
			if highlight != "" {
				if err := a.highlightUC.Execute(ctx, domain.NormalizeCategory(highlight)); err != nil {
					return err
				}
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return errors.Wrapf(err, "failed to create %s", outDir)
			}

			names := a.chartUC.Names()
			bar := pb.New(len(names))
			bar.SetWriter(cmd.ErrOrStderr())
			bar.Start()
			defer bar.Finish()

			for _, name := range names {
				out, err := a.chartUC.Execute(ctx, name)
				if err != nil {
					return err
				}
				if !out.Rendered {
					return errors.Errorf("chart %s was not rendered", name)
				}

				path := filepath.Join(outDir, name+".svg")
				if err := os.WriteFile(path, out.Image, 0o644); err != nil {
					return errors.Wrapf(err, "failed to write %s", path)
				}
				logger.Debug("chart written", logger.Args("path", path, "size", humanize.Bytes(uint64(len(out.Image)))))
				bar.Increment()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "charts", "output directory")
	cmd.Flags().StringVar(&dimension, "dimension", "", "filter dimension (default experience_level)")
	cmd.Flags().StringVar(&filter, "filter", "", "comma separated categories to keep")
	cmd.Flags().StringVar(&highlight, "highlight", "", "category to highlight")
	return cmd
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
