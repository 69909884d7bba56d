package ports

import (
	"context"

	"salary-viz-service/internal/salaries/core/domain"
)

// The renderers are the external drawing collaborator. They receive chart-ready data
// and return an encoded image; the core owns none of the drawing.

type BarRendererPort interface {
	RenderBar(ctx context.Context, c domain.BarChart, dims domain.Dimensions) ([]byte, error)
}

type ChoroplethRendererPort interface {
	RenderChoropleth(ctx context.Context, m domain.ChoroplethMap, dims domain.Dimensions) ([]byte, error)
}

type ScatterRendererPort interface {
	RenderScatter(ctx context.Context, p domain.ScatterPlot, dims domain.Dimensions) ([]byte, error)
}

type ParallelRendererPort interface {
	RenderParallel(ctx context.Context, p domain.ParallelPlot, dims domain.Dimensions) ([]byte, error)
}
