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

var DefaultChoroplethDimensions = domain.Dimensions{
	Width:  500,
	Height: 500,
	Margin: domain.Margin{Top: 25, Right: 20, Bottom: 20, Left: 35},
}

// ChoroplethView joins mean salary per country code with the boundary regions.
// A region without data gets 0; a data key without a region is never painted.
type ChoroplethView struct {
	base
	renderer ports.ChoroplethRendererPort
	regions  []domain.Region
}

func NewChoroplethView(renderer ports.ChoroplethRendererPort, regions []domain.Region, logger *pterm.Logger) *ChoroplethView {
	return &ChoroplethView{
		base:     newBase(NameChoropleth, DefaultChoroplethDimensions, logger),
		renderer: renderer,
		regions:  slices.Clone(regions),
	}
}

func (v *ChoroplethView) Notify(ctx context.Context, ev crossfilter.Event) {
	if ev.Kind == crossfilter.EventHighlight {
		return
	}
	refresh(ctx, v, &v.base, ev)
}

func (v *ChoroplethView) Update(ctx context.Context, ds *domain.Dataset) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	m := v.build(ds)

	img, err := v.renderer.RenderChoropleth(ctx, m, v.dims)
	if err != nil {
		return fmt.Errorf("render %s: %w", v.name, err)
	}
	v.store(ds, m, img)
	return nil
}

func (v *ChoroplethView) build(ds *domain.Dataset) domain.ChoroplethMap {
	records := aggregate.Filter(ds.Records(), v.selection)
	buckets := aggregate.Aggregate(records, aggregate.ByCountryCode, domain.FieldSalary, domain.ReductionMean)

	byKey := make(map[string]float64, len(buckets))
	for _, b := range buckets {
		byKey[b.Key] = b.Value
	}

	known := make(map[string]struct{}, len(v.regions))
	values := make([]domain.RegionValue, 0, len(v.regions))
	for _, r := range v.regions {
		known[r.ID] = struct{}{}
		val, ok := byKey[r.ID]
		values = append(values, domain.RegionValue{ID: r.ID, Name: r.Name, Value: val, Data: ok})
	}

	var unmatched []string
	for _, b := range buckets {
		if _, ok := known[b.Key]; !ok {
			unmatched = append(unmatched, b.Key)
		}
	}

	return domain.ChoroplethMap{
		Title:     "Average Salary by Country",
		Regions:   values,
		Shapes:    v.regions,
		Unmatched: unmatched,
		MaxValue:  aggregate.MaxValue(buckets),
	}
}
