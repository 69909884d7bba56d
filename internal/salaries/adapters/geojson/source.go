package geojson

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"salary-viz-service/internal/salaries/core/domain"
	"salary-viz-service/internal/salaries/core/ports"
)

// Source loads country boundaries from a GeoJSON FeatureCollection on disk or over HTTP.
type Source struct {
	location string
	timeout  time.Duration
	fetch    func(ctx context.Context, location string) ([]byte, error)
}

var _ ports.BoundarySourcePort = (*Source)(nil)

// NewSource accepts a file path or an http(s) URL. A zero timeout means none.
func NewSource(location string, timeout time.Duration) *Source {
	s := &Source{location: location, timeout: timeout}
	if isURL(location) {
		s.fetch = s.fetchURL
	} else {
		s.fetch = readFile
	}
	return s
}

func (s *Source) LoadRegions(ctx context.Context) ([]domain.Region, error) {
	data, err := s.fetch(ctx, s.location)
	if err != nil {
		return nil, err
	}
	regions, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", s.location)
	}
	return regions, nil
}

func isURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

func (s *Source) fetchURL(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a := fiber.Get(url)
	if s.timeout > 0 {
		a.Timeout(s.timeout)
	}
	if err := a.Parse(); err != nil {
		return nil, errors.Wrapf(err, "invalid url %s", url)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, errors.Wrapf(errs[0], "failed to fetch %s", url)
	}
	if code != fiber.StatusOK {
		return nil, errors.Errorf("failed to fetch %s: status %d", url, code)
	}
	return body, nil
}

// Parse reads the features of a FeatureCollection. The feature id is the join key; features
// without an id fall back to properties.iso_a3. Features with neither are skipped.
func Parse(data []byte) ([]domain.Region, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid json")
	}
	doc := gjson.ParseBytes(data)
	if t := doc.Get("type").String(); t != "FeatureCollection" {
		return nil, errors.Errorf("expected FeatureCollection, got %q", t)
	}

	var regions []domain.Region
	doc.Get("features").ForEach(func(_, f gjson.Result) bool {
		id := f.Get("id").String()
		if id == "" {
			id = f.Get("properties.iso_a3").String()
		}
		if id == "" {
			return true
		}
		regions = append(regions, domain.Region{
			ID:       domain.NormalizeCategory(id),
			Name:     f.Get("properties.name").String(),
			Polygons: polygons(f.Get("geometry")),
		})
		return true
	})

	return regions, nil
}

func polygons(geom gjson.Result) [][][][2]float64 {
	coords := geom.Get("coordinates")
	switch geom.Get("type").String() {
	case "Polygon":
		return [][][][2]float64{rings(coords)}
	case "MultiPolygon":
		var out [][][][2]float64
		for _, p := range coords.Array() {
			out = append(out, rings(p))
		}
		return out
	}
	return nil
}

func rings(polygon gjson.Result) [][][2]float64 {
	var out [][][2]float64
	for _, ring := range polygon.Array() {
		var pts [][2]float64
		for _, pt := range ring.Array() {
			xy := pt.Array()
			if len(xy) < 2 {
				continue
			}
			pts = append(pts, [2]float64{xy[0].Float(), xy[1].Float()})
		}
		out = append(out, pts)
	}
	return out
}
