package usecase

import (
	"context"
	"time"

	"github.com/pterm/pterm"

	"salary-viz-service/internal/salaries/core/domain"
)

type DatasetLoader interface {
	Execute(ctx context.Context) (*domain.Dataset, error)
}

type DatasetInfo struct {
	ID         string
	Source     string
	LoadedAt   time.Time
	Records    int
	Excluded   int
	Categories map[domain.Dimension][]string
}

type DatasetUseCase struct {
	loader DatasetLoader
	state  FilterState
	logger *pterm.Logger
}

func NewDatasetUseCase(loader DatasetLoader, state FilterState, logger *pterm.Logger) *DatasetUseCase {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return &DatasetUseCase{loader: loader, state: state, logger: logger}
}

// Reload loads a fresh Dataset and publishes it, which refreshes every view. On failure the
// previously published Dataset stays in place.
func (uc *DatasetUseCase) Reload(ctx context.Context) (DatasetInfo, error) {
	ds, err := uc.loader.Execute(ctx)
	if err != nil {
		uc.logger.Error("dataset reload failed", uc.logger.Args("error", err.Error()))
		return DatasetInfo{}, err
	}
	if err := uc.state.ReplaceDataset(ctx, ds); err != nil {
		return DatasetInfo{}, err
	}
	return infoOf(ds), nil
}

func (uc *DatasetUseCase) Info(ctx context.Context) (DatasetInfo, error) {
	ds := uc.state.Snapshot().Dataset
	if ds == nil {
		return DatasetInfo{}, ErrDatasetNotLoaded
	}
	return infoOf(ds), nil
}

func infoOf(ds *domain.Dataset) DatasetInfo {
	cats := make(map[domain.Dimension][]string, 4)
	for _, d := range []domain.Dimension{
		domain.DimensionExperienceLevel,
		domain.DimensionEmploymentType,
		domain.DimensionCompanySize,
		domain.DimensionCountry,
	} {
		cats[d] = ds.Categories(d)
	}
	return DatasetInfo{
		ID:         ds.ID.String(),
		Source:     ds.Source,
		LoadedAt:   ds.LoadedAt,
		Records:    ds.Len(),
		Excluded:   ds.Excluded,
		Categories: cats,
	}
}
