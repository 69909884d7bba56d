package views

import (
	"context"
	"fmt"
	"slices"

	"github.com/pterm/pterm"

	"salary-viz-service/internal/salaries/core/aggregate"
	"salary-viz-service/internal/salaries/core/crossfilter"
	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
)

var DefaultParallelDimensions = domain.Dimensions{
	Width:  500,
	Height: 500,
	Margin: domain.Margin{Top: 25, Right: 20, Bottom: 20, Left: 35},
}

var DefaultParallelFields = []domain.Field{
	domain.FieldWorkYear,
	domain.FieldSalary,
	domain.FieldRemoteRatio,
	domain.FieldCostOfLiving,
}

// ParallelView draws one line per visible record across the configured numeric axes.
// A record missing any axis value is not drawn.
type ParallelView struct {
	base
	renderer ports.ParallelRendererPort
	fields   []domain.Field
}

func NewParallelView(renderer ports.ParallelRendererPort, fields []domain.Field, logger *pterm.Logger) *ParallelView {
	fields = slices.DeleteFunc(slices.Clone(fields), func(f domain.Field) bool { return !f.Valid() })
	if len(fields) == 0 {
		fields = slices.Clone(DefaultParallelFields)
	}
	return &ParallelView{
		base:     newBase(NameParallel, DefaultParallelDimensions, logger),
		renderer: renderer,
		fields:   fields,
	}
}

func (v *ParallelView) Notify(ctx context.Context, ev crossfilter.Event) {
	refresh(ctx, v, &v.base, ev)
}

func (v *ParallelView) Update(ctx context.Context, ds *domain.Dataset) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	p := v.build(ds)

	img, err := v.renderer.RenderParallel(ctx, p, v.dims)
	if err != nil {
		return fmt.Errorf("render %s: %w", v.name, err)
	}
	v.store(ds, p, img)
	return nil
}

func (v *ParallelView) build(ds *domain.Dataset) domain.ParallelPlot {
	records := aggregate.Filter(ds.Records(), v.selection)

	var lines []domain.ParallelLine
	columns := make([][]float64, len(v.fields))
	for _, r := range records {
		vals := make([]float64, 0, len(v.fields))
		for _, f := range v.fields {
			x, ok := r.Value(f)
			if !ok {
				break
			}
			vals = append(vals, x)
		}
		if len(vals) != len(v.fields) {
			continue
		}
		for i, x := range vals {
			columns[i] = append(columns[i], x)
		}
		lines = append(lines, domain.ParallelLine{Key: r.ExperienceLevel, Values: vals})
	}

	axes := make([]domain.Axis, len(v.fields))
	for i, f := range v.fields {
		lo, hi := aggregate.Extent(columns[i])
		axes[i] = domain.Axis{Field: f, Min: lo, Max: hi}
	}

	return domain.ParallelPlot{
		Title:     "Salary Dimensions",
		Axes:      axes,
		Lines:     lines,
		Highlight: v.highlight,
	}
}
