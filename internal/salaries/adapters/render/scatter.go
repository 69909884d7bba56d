package render

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"salary-viz-service/internal/salaries/core/domain"
)

var steelBlue = drawing.ColorFromHex("4682b4")

func (r *Renderer) RenderScatter(ctx context.Context, p domain.ScatterPlot, dims domain.Dimensions) ([]byte, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if len(p.Points) == 0 || p.XMax <= 0 || p.YMax <= 0 {
		return placeholderBytes(p.Title, dims.Width, dims.Height), nil
	}

	xs := make([]float64, 0, len(p.Points)+1)
	ys := make([]float64, 0, len(p.Points)+1)
	for _, pt := range p.Points {
		xs = append(xs, pt.AverageSalary)
		ys = append(ys, pt.AverageCostOfLiving)
	}
	if len(xs) == 1 {
		// a series needs two points to produce a range
		xs = append(xs, xs[0])
		ys = append(ys, ys[0])
	}

	ch := chart.Chart{
		Title:  p.Title,
		Width:  dims.Width,
		Height: dims.Height,
		Background: chart.Style{Padding: chart.Box{
			Top:    dims.Margin.Top + 20,
			Left:   dims.Margin.Left,
			Right:  dims.Margin.Right,
			Bottom: dims.Margin.Bottom,
		}},
		XAxis: chart.XAxis{
			Name:           "Average Salary (USD)",
			Range:          &chart.ContinuousRange{Min: 0, Max: p.XMax * 1.05},
			ValueFormatter: formatUSD,
		},
		YAxis: chart.YAxis{
			Name:  "Cost of Living Index",
			Range: &chart.ContinuousRange{Min: 0, Max: p.YMax * 1.05},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Countries",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    steelBlue,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to render scatter plot")
	}
	return buf.Bytes(), nil
}
