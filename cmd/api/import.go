package main

import (
	"github.com/cheggaaa/pb/v3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"salary-viz-service/internal/config"
	csvsource "salary-viz-service/internal/salaries/adapters/csv"
	"salary-viz-service/internal/salaries/adapters/postgres"
	"salary-viz-service/internal/salaries/core/usecase"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy a CSV file into the postgres salaries table",
		Long: `import loads a CSV file with the configured column mapping and inserts every valid
record into postgres. Re-running the same import does not create duplicates.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup()
			if err != nil {
				return err
			}
			if cfg.Postgres.DSN == "" {
				return errors.New("postgres.dsn (or POSTGRES_DSN) is required")
			}
			if file == "" {
				file = cfg.Data.Path
			}

			ctx := cmd.Context()
			a := &app{logger: logger}
			db, err := a.openDB(ctx, cfg.Postgres)
			if err != nil {
				return err
			}
			defer a.Close()

			writer := postgres.NewRecordWriter(postgres.NewSQLDB(db))
			if err := writer.EnsureSchema(ctx); err != nil {
				return errors.Wrap(err, "failed to create schema")
			}

			data := cfg.Data
			data.Source = config.SourceCSV
			loader, err := usecase.NewLoadDatasetUseCase(csvsource.NewSource(file, data.Comma()), loaderOptions(data), logger)
			if err != nil {
				return err
			}

			bar := pb.New(0)
			bar.SetWriter(cmd.ErrOrStderr())
			started := false
			res, err := usecase.NewImportRecordsUseCase(loader, writer).Execute(ctx, usecase.ImportInput{
				Start: func(total int) {
					bar.SetTotal(int64(total))
					bar.Start()
					started = true
				},
				Progress: func() { bar.Increment() },
			})
			if started {
				bar.Finish()
			}
			if err != nil {
				return err
			}

			logger.Info("import finished", logger.Args(
				"file", file,
				"created", res.Created,
				"duplicates", res.Duplicates,
				"excluded", res.Excluded,
			))
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "csv", "", "CSV file to import (default data.path)")
	return cmd
}
