package views

import (
	"context"
	"fmt"
	"math"

	"github.com/pterm/pterm"

	"salary-viz-service/internal/salaries/core/aggregate"
	"salary-viz-service/internal/salaries/core/crossfilter"
	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
)

var DefaultScatterDimensions = domain.Dimensions{
	Width:  500,
	Height: 500,
	Margin: domain.Margin{Top: 25, Right: 20, Bottom: 20, Left: 35},
}

// ScatterView plots average cost of living against average salary per country.
// Countries with no cost-of-living data have no y position and are left out.
type ScatterView struct {
	base
	renderer ports.ScatterRendererPort
}

func NewScatterView(renderer ports.ScatterRendererPort, logger *pterm.Logger) *ScatterView {
	return &ScatterView{
		base:     newBase(NameScatter, DefaultScatterDimensions, logger),
		renderer: renderer,
	}
}

func (v *ScatterView) Notify(ctx context.Context, ev crossfilter.Event) {
	if ev.Kind == crossfilter.EventHighlight {
		return
	}
	refresh(ctx, v, &v.base, ev)
}

func (v *ScatterView) Update(ctx context.Context, ds *domain.Dataset) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	p := v.build(ds)

	img, err := v.renderer.RenderScatter(ctx, p, v.dims)
	if err != nil {
		return fmt.Errorf("render %s: %w", v.name, err)
	}
	v.store(ds, p, img)
	return nil
}

func (v *ScatterView) build(ds *domain.Dataset) domain.ScatterPlot {
	records := aggregate.Filter(ds.Records(), v.selection)

	p := domain.ScatterPlot{Title: "Cost of Living vs. Average Salary by Country"}
	for _, ca := range aggregate.CountryAverages(records) {
		if !ca.HasCostOfLiving {
			continue
		}
		p.Points = append(p.Points, ca)
		p.XMax = math.Max(p.XMax, ca.AverageSalary)
		p.YMax = math.Max(p.YMax, ca.AverageCostOfLiving)
	}
	return p
}
