package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"

	"salary-viz-service/internal/config"
	csvsource "salary-viz-service/internal/salaries/adapters/csv"
	"salary-viz-service/internal/salaries/adapters/geojson"
	"salary-viz-service/internal/salaries/adapters/postgres"
	"salary-viz-service/internal/salaries/adapters/render"
	"salary-viz-service/internal/salaries/core/crossfilter"
	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
	"salary-viz-service/internal/salaries/core/usecase"
	"salary-viz-service/internal/salaries/core/views"
)

// app is the wired core: one State, the four views and the use cases driving them.
type app struct {
	logger *pterm.Logger
	db     *sql.DB

	state  *crossfilter.State
	views  []views.View
	loader *usecase.LoadDatasetUseCase

	datasetUC   *usecase.DatasetUseCase
	filterUC    *usecase.SetFilterUseCase
	highlightUC *usecase.HighlightUseCase
	chartUC     *usecase.GetChartUseCase
}

// bootstrap wires everything and loads the dataset and the boundaries concurrently. A dataset
// load failure still returns a usable app, with an error wrapping usecase.ErrLoadFailure.
// A boundary load failure returns no app: a map without regions is never published.
func bootstrap(ctx context.Context, cfg *config.Config, logger *pterm.Logger) (*app, error) {
	a := &app{logger: logger}

	source, err := a.openSource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.loader, err = usecase.NewLoadDatasetUseCase(source, loaderOptions(cfg.Data), logger)
	if err != nil {
		a.Close()
		return nil, err
	}

	var (
		ds      *domain.Dataset
		regions []domain.Region
		geoErr  error
		g       errgroup.Group
	)
	g.Go(func() error {
		var err error
		ds, err = a.loader.Execute(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		regions, err = geojson.NewSource(cfg.Geo.Location, cfg.Geo.Timeout).LoadRegions(ctx)
		if err != nil {
			geoErr = fmt.Errorf("%w: boundaries from %s: %w", usecase.ErrLoadFailure, cfg.Geo.Location, err)
			return geoErr
		}
		return nil
	})
	loadErr := g.Wait()

	if geoErr != nil {
		logger.Error("boundaries not loaded", logger.Args("location", cfg.Geo.Location, "error", geoErr.Error()))
		a.Close()
		return nil, geoErr
	}

	a.wire(cfg, regions)

	if loadErr != nil {
		logger.Error("dataset not loaded", logger.Args("error", loadErr.Error()))
		return a, loadErr
	}
	if err := a.state.ReplaceDataset(ctx, ds); err != nil {
		return a, err
	}
	return a, nil
}

func (a *app) openSource(ctx context.Context, cfg *config.Config) (ports.RecordSourcePort, error) {
	switch cfg.Data.Source {
	case config.SourcePostgres:
		db, err := a.openDB(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		return postgres.NewRecordSource(postgres.NewSQLDB(db), cfg.Data.WorkYears...), nil
	default:
		return csvsource.NewSource(cfg.Data.Path, cfg.Data.Comma()), nil
	}
}

func (a *app) openDB(ctx context.Context, pc config.PostgresConfig) (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	db, err := postgres.Open(ctx, pc.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	db.SetMaxOpenConns(pc.MaxOpenConns)
	db.SetMaxIdleConns(pc.MaxIdleConns)
	db.SetConnMaxLifetime(pc.ConnMaxLifetime)
	a.db = db
	return db, nil
}

func (a *app) wire(cfg *config.Config, regions []domain.Region) {
	renderer := render.New()

	fields := make([]domain.Field, 0, len(cfg.Charts.ParallelFields))
	for _, f := range cfg.Charts.ParallelFields {
		fields = append(fields, domain.Field(f))
	}

	a.views = []views.View{
		views.NewBarView(renderer, domain.Reduction(cfg.Charts.BarReduction), a.logger),
		views.NewChoroplethView(renderer, regions, a.logger),
		views.NewScatterView(renderer, a.logger),
		views.NewParallelView(renderer, fields, a.logger),
	}

	a.state = crossfilter.NewState(a.logger)
	views.Register(a.state, a.views...)

	serial := usecase.NewSerializedState(a.state)
	a.datasetUC = usecase.NewDatasetUseCase(a.loader, serial, a.logger)
	a.filterUC = usecase.NewSetFilterUseCase(serial)
	a.highlightUC = usecase.NewHighlightUseCase(serial)
	a.chartUC = usecase.NewGetChartUseCase(serial, a.views...)
}

func (a *app) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

// loaderOptions maps the config's logical column names. The postgres source always returns
// the default header names, so column overrides only apply to files.
func loaderOptions(d config.DataConfig) usecase.LoaderOptions {
	var opts usecase.LoaderOptions
	if d.Source != config.SourcePostgres && len(d.Columns) > 0 {
		opts.Columns = make(usecase.Columns, len(d.Columns))
		for k, v := range d.Columns {
			opts.Columns[usecase.Column(k)] = v
		}
	}
	for _, c := range d.Required {
		opts.Required = append(opts.Required, usecase.Column(c))
	}
	return opts
}
