package views

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"

	"salary-viz-service/internal/salaries/core/aggregate"
	"salary-viz-service/internal/salaries/core/crossfilter"
	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
)

var DefaultBarDimensions = domain.Dimensions{
	Width:  700,
	Height: 300,
	Margin: domain.Margin{Top: 30, Right: 60, Bottom: 50, Left: 150},
}

// BarView shows salary per experience level. With ReductionMean the bars are sorted
// ascending; with ReductionSum they keep first-seen order.
type BarView struct {
	base
	renderer  ports.BarRendererPort
	reduction domain.Reduction
}

func NewBarView(renderer ports.BarRendererPort, reduction domain.Reduction, logger *pterm.Logger) *BarView {
	if !reduction.Valid() {
		reduction = domain.ReductionMean
	}
	return &BarView{
		base:      newBase(NameBar, DefaultBarDimensions, logger),
		renderer:  renderer,
		reduction: reduction,
	}
}

func (v *BarView) Notify(ctx context.Context, ev crossfilter.Event) {
	refresh(ctx, v, &v.base, ev)
}

func (v *BarView) Update(ctx context.Context, ds *domain.Dataset) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	chart := v.build(ds)

	img, err := v.renderer.RenderBar(ctx, chart, v.dims)
	if err != nil {
		return fmt.Errorf("render %s: %w", v.name, err)
	}
	v.store(ds, chart, img)
	return nil
}

func (v *BarView) build(ds *domain.Dataset) domain.BarChart {
	records := aggregate.Filter(ds.Records(), v.selection)
	buckets := aggregate.Aggregate(records, aggregate.ByExperienceLevel, domain.FieldSalary, v.reduction)

	title := "Total Salary by Experience Level"
	if v.reduction == domain.ReductionMean {
		aggregate.SortByValue(buckets)
		title = "Average Salary by Experience Level"
	}

	return domain.BarChart{
		Title:     title,
		Reduction: v.reduction,
		Buckets:   buckets,
		YMax:      aggregate.MaxValue(buckets),
		Highlight: v.highlight,
	}
}
