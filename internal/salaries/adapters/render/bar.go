package render

import (
	"bytes"
	"context"

	"github.com/pkg/errors"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"salary-viz-service/internal/salaries/core/domain"
)

// dimmed bars when another key is highlighted
const dimAlpha = 80

func (r *Renderer) RenderBar(ctx context.Context, c domain.BarChart, dims domain.Dimensions) ([]byte, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	if len(c.Buckets) == 0 || c.YMax <= 0 {
		return placeholderBytes(c.Title, dims.Width, dims.Height), nil
	}

	colors := newOrdinal(set1)
	bars := make([]chart.Value, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		col := drawing.ColorFromHex(colors.color(b.Key))
		if c.Highlight != "" && c.Highlight != b.Key {
			col = col.WithAlpha(dimAlpha)
		}
		bars = append(bars, chart.Value{
			Label: domain.ExperienceLabel(b.Key),
			Value: b.Value,
			Style: chart.Style{FillColor: col, StrokeColor: col},
		})
	}

	bc := chart.BarChart{
		Title:  c.Title,
		Width:  dims.Width,
		Height: dims.Height,
		Background: chart.Style{Padding: chart.Box{
			Top:    dims.Margin.Top + 20,
			Left:   dims.Margin.Left,
			Right:  dims.Margin.Right,
			Bottom: dims.Margin.Bottom,
		}},
		BarWidth: barWidth(dims, len(bars)),
		Bars:     bars,
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: 0, Max: c.YMax},
			ValueFormatter: formatUSD,
		},
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.SVG, &buf); err != nil {
		return nil, errors.Wrap(err, "failed to render bar chart")
	}
	return buf.Bytes(), nil
}

func barWidth(dims domain.Dimensions, n int) int {
	w, _ := dims.Inner()
	if n == 0 || w == 0 {
		return 0
	}
	// leave a third of each slot as spacing
	return max(w*2/(3*n), 4)
}
