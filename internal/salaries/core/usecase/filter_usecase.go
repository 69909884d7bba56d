package usecase

import (
	"context"
	"errors"

	"salary-viz-service/internal/salaries/core/crossfilter"
	"salary-viz-service/internal/salaries/core/domain"
)

var (
	ErrInvalidDimension = errors.New("invalid filter dimension")
	ErrDatasetNotLoaded = errors.New("dataset not loaded")
)

// FilterState is the part of crossfilter.State the use cases drive.
type FilterState interface {
	SetFilter(ctx context.Context, sel domain.FilterSelection) (domain.FilterSelection, error)
	Highlight(ctx context.Context, key string) error
	ReplaceDataset(ctx context.Context, ds *domain.Dataset) error
	Snapshot() crossfilter.Snapshot
}

type SetFilterInput struct {
	Dimension string // "" means experience_level
	Values    []string
}

type SetFilterUseCase struct {
	state FilterState
}

func NewSetFilterUseCase(state FilterState) *SetFilterUseCase {
	return &SetFilterUseCase{state: state}
}

// Execute validates the dimension and replaces the shared selection. The returned selection
// has unknown values removed.
func (uc *SetFilterUseCase) Execute(ctx context.Context, in SetFilterInput) (domain.FilterSelection, error) {
	dim := domain.Dimension(in.Dimension)
	if dim == "" {
		dim = domain.DimensionExperienceLevel
	}
	if !dim.Valid() {
		return domain.FilterSelection{}, ErrInvalidDimension
	}

	if uc.state.Snapshot().Dataset == nil {
		return domain.FilterSelection{}, ErrDatasetNotLoaded
	}

	return uc.state.SetFilter(ctx, domain.FilterSelection{Dimension: dim, Values: in.Values})
}

// Current returns the selection in effect.
func (uc *SetFilterUseCase) Current() domain.FilterSelection {
	return uc.state.Snapshot().Selection
}

type HighlightUseCase struct {
	state FilterState
}

func NewHighlightUseCase(state FilterState) *HighlightUseCase {
	return &HighlightUseCase{state: state}
}

func (uc *HighlightUseCase) Execute(ctx context.Context, key string) error {
	if uc.state.Snapshot().Dataset == nil {
		return ErrDatasetNotLoaded
	}
	return uc.state.Highlight(ctx, key)
}
