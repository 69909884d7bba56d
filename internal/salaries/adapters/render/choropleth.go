package render

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/aclements/go-moremath/scale"
	svg "github.com/ajstarks/svgo"

	"salary-viz-service/internal/salaries/core/domain"
)

// projection is an equirectangular fit of the shapes' bounding box into the inner box.
type projection struct {
	minLon, maxLat float64
	k              float64
	x0, y0         float64
}

func fitProjection(shapes []domain.Region, dims domain.Dimensions) (projection, bool) {
	minLon, minLat := math.Inf(1), math.Inf(1)
	maxLon, maxLat := math.Inf(-1), math.Inf(-1)
	for _, s := range shapes {
		for _, poly := range s.Polygons {
			for _, ring := range poly {
				for _, pt := range ring {
					minLon, maxLon = math.Min(minLon, pt[0]), math.Max(maxLon, pt[0])
					minLat, maxLat = math.Min(minLat, pt[1]), math.Max(maxLat, pt[1])
				}
			}
		}
	}
	w, h := dims.Inner()
	if math.IsInf(minLon, 1) || maxLon == minLon || maxLat == minLat || w == 0 || h == 0 {
		return projection{}, false
	}

	k := math.Min(float64(w)/(maxLon-minLon), float64(h)/(maxLat-minLat))
	return projection{
		minLon: minLon,
		maxLat: maxLat,
		k:      k,
		x0:     float64(dims.Margin.Left) + (float64(w)-(maxLon-minLon)*k)/2,
		y0:     float64(dims.Margin.Top) + (float64(h)-(maxLat-minLat)*k)/2,
	}, true
}

func (p projection) point(pt [2]float64) (float64, float64) {
	return p.x0 + (pt[0]-p.minLon)*p.k, p.y0 + (p.maxLat-pt[1])*p.k
}

func (p projection) path(polys [][][][2]float64) string {
	var b strings.Builder
	for _, poly := range polys {
		for _, ring := range poly {
			for i, pt := range ring {
				x, y := p.point(pt)
				if i == 0 {
					fmt.Fprintf(&b, "M%.1f %.1f", x, y)
				} else {
					fmt.Fprintf(&b, "L%.1f %.1f", x, y)
				}
			}
			if len(ring) > 0 {
				b.WriteString("Z")
			}
		}
	}
	return b.String()
}

func (r *Renderer) RenderChoropleth(ctx context.Context, m domain.ChoroplethMap, dims domain.Dimensions) ([]byte, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}
	proj, ok := fitProjection(m.Shapes, dims)
	if !ok {
		return placeholderBytes(m.Title, dims.Width, dims.Height), nil
	}

	values := make(map[string]domain.RegionValue, len(m.Regions))
	for _, rv := range m.Regions {
		values[rv.ID] = rv
	}
	color := scale.Linear{Min: 0, Max: m.MaxValue, Clamp: true}
	// regions without a data row take the color of value 0
	zeroFill := interpolate(oranges, 0).String()
	if m.MaxValue > 0 {
		zeroFill = interpolate(oranges, color.Map(0)).String()
	}

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(dims.Width, dims.Height, fontStyle)
	canvas.Rect(0, 0, dims.Width, dims.Height, "fill:#ffffff")
	if m.Title != "" {
		canvas.Text(dims.Width/2, max(dims.Margin.Top/2, 14), m.Title, `text-anchor="middle" font-size="14px"`)
	}

	for _, s := range m.Shapes {
		d := proj.path(s.Polygons)
		if d == "" {
			continue
		}
		fill := zeroFill
		label := s.Name + ": no data"
		if rv, ok := values[s.ID]; ok && rv.Data {
			t := 1.0
			if m.MaxValue > 0 {
				t = color.Map(rv.Value)
			}
			fill = interpolate(oranges, t).String()
			label = s.Name + ": " + usd(rv.Value)
		}
		canvas.Group(fmt.Sprintf(`id="%s"`, s.ID))
		canvas.Title(label)
		canvas.Path(d, "fill:"+fill+";stroke:#ffffff;stroke-width:0.5")
		canvas.Gend()
	}

	legend(canvas, m.MaxValue, dims)
	canvas.End()
	return buf.Bytes(), nil
}

// legend draws the color ramp with its bounds under the map.
func legend(canvas *svg.SVG, maxValue float64, dims domain.Dimensions) {
	const steps, sw, sh = 9, 20, 10
	x := dims.Margin.Left
	y := dims.Height - sh - 16
	for i := 0; i < steps; i++ {
		c := interpolate(oranges, float64(i)/float64(steps-1))
		canvas.Rect(x+i*sw, y, sw, sh, "fill:"+c.String())
	}
	canvas.Text(x, y+sh+12, usd(0), `fill="#666666"`)
	canvas.Text(x+steps*sw, y+sh+12, usd(maxValue), `text-anchor="end" fill="#666666"`)
}
