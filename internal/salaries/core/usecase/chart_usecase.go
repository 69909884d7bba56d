package usecase

import (
	"context"
	"errors"

	"salary-viz-service/internal/salaries/core/views"
)

var ErrUnknownChart = errors.New("unknown chart")

type GetChartUseCase struct {
	state FilterState
	views map[string]views.View
	order []string
}

func NewGetChartUseCase(state FilterState, vs ...views.View) *GetChartUseCase {
	uc := &GetChartUseCase{state: state, views: make(map[string]views.View, len(vs))}
	for _, v := range vs {
		uc.views[v.Name()] = v
		uc.order = append(uc.order, v.Name())
	}
	return uc
}

// Execute returns the last output of the named view. Views refresh on every State event,
// so this never re-aggregates.
func (uc *GetChartUseCase) Execute(ctx context.Context, name string) (views.Output, error) {
	v, ok := uc.views[name]
	if !ok {
		return views.Output{}, ErrUnknownChart
	}
	if uc.state.Snapshot().Dataset == nil {
		return views.Output{}, ErrDatasetNotLoaded
	}

	return v.Snapshot(), nil
}

// Names lists the chart names in registration order.
func (uc *GetChartUseCase) Names() []string {
	return append([]string(nil), uc.order...)
}
