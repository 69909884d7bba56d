package render

import (
	"bytes"
	"context"
	"slices"

	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"
	"github.com/dustin/go-humanize"

	"salary-viz-service/internal/salaries/core/domain"
)

var axisLabels = map[domain.Field]string{
	domain.FieldSalary:       "Salary (USD)",
	domain.FieldCostOfLiving: "Cost of Living",
	domain.FieldRemoteRatio:  "Remote Ratio",
	domain.FieldWorkYear:     "Work Year",
}

func axisLabel(f domain.Field) string {
	if l, ok := axisLabels[f]; ok {
		return l
	}
	return string(f)
}

func tickLabel(f domain.Field, v float64) string {
	switch f {
	case domain.FieldSalary:
		return usd(v)
	case domain.FieldWorkYear:
		return humanize.Ftoa(v)
	}
	return humanize.FormatFloat("#,###.#", v)
}

func (r *Renderer) RenderParallel(ctx context.Context, p domain.ParallelPlot, dims domain.Dimensions) ([]byte, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	w, h := dims.Inner()
	if len(p.Axes) < 2 || len(p.Lines) == 0 || w == 0 || h == 0 {
		return placeholderBytes(p.Title, dims.Width, dims.Height), nil
	}

	left, top := dims.Margin.Left, dims.Margin.Top
	step := float64(w) / float64(len(p.Axes)-1)
	xs := make([]int, len(p.Axes))
	scales := make([]scale.Linear, len(p.Axes))
	for i, a := range p.Axes {
		xs[i] = left + int(float64(i)*step)
		scales[i] = scale.Linear{Min: a.Min, Max: a.Max, Clamp: true}
	}
	yOf := func(i int, v float64) int {
		t := 0.5
		if p.Axes[i].Max > p.Axes[i].Min {
			t = scales[i].Map(v)
		}
		return top + int(float64(h)*(1-t))
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(dims.Width, dims.Height, fontStyle)
	canvas.Rect(0, 0, dims.Width, dims.Height, "fill:#ffffff")
	if p.Title != "" {
		canvas.Text(dims.Width/2, max(top/2, 14), p.Title, `text-anchor="middle" font-size="14px"`)
	}

	colors := newOrdinal(category10)
	canvas.Group(`fill="none"`)
	for _, l := range p.Lines {
		if len(l.Values) != len(p.Axes) {
			continue
		}
		ys := make([]int, len(l.Values))
		for i, v := range l.Values {
			ys[i] = yOf(i, v)
		}
		opacity := "0.5"
		if p.Highlight != "" {
			opacity = "0.05"
			if l.Key == p.Highlight {
				opacity = "0.9"
			}
		}
		canvas.Polyline(xs, ys, "stroke:#"+colors.color(l.Key)+";stroke-opacity:"+opacity)
	}
	canvas.Gend()

	for i, a := range p.Axes {
		canvas.Line(xs[i], top, xs[i], top+h, "stroke:#333333;stroke-width:1")
		canvas.Text(xs[i], top+h+14, axisLabel(a.Field), `text-anchor="middle" font-weight="bold"`)
		canvas.Text(xs[i]+4, top+h-2, tickLabel(a.Field, a.Min), `fill="#666666"`)
		canvas.Text(xs[i]+4, top+10, tickLabel(a.Field, a.Max), `fill="#666666"`)
	}

	// legend, top right of the plot area
	var keys []string
	for _, l := range p.Lines {
		if !slices.Contains(keys, l.Key) {
			keys = append(keys, l.Key)
		}
	}
	for i, k := range keys {
		x, y := left+w-110, top+24+i*14
		canvas.Rect(x, y-9, 10, 10, "fill:#"+colors.color(k))
		canvas.Text(x+14, y, domain.ExperienceLabel(k))
	}

	canvas.End()
	return buf.Bytes(), nil
}
