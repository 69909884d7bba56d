// Package views holds the four chart views. Each view re-derives its own filtered records,
// aggregates them, and hands the result to its renderer. Views never share aggregates and
// never reach into each other; cross-highlighting goes through crossfilter.State.
package views

import (
	"context"
	"sync"

	"github.com/pterm/pterm"

	"salary-viz-service/internal/salaries/core/crossfilter"
	"salary-viz-service/internal/salaries/core/domain"
)

const (
	NameBar        = "bar"
	NameChoropleth = "choropleth"
	NameScatter    = "scatter"
	NameParallel   = "parallel"
)

type View interface {
	crossfilter.Subscriber

	Name() string
	Configure(container string, dims domain.Dimensions)
	// Update re-aggregates ds under the view's current selection and re-renders.
	Update(ctx context.Context, ds *domain.Dataset) error
	Snapshot() Output
}

// Output is the last thing a view produced.
type Output struct {
	Name      string
	Container string
	DatasetID string
	Selection domain.FilterSelection
	Data      any // domain.BarChart, domain.ChoroplethMap, domain.ScatterPlot or domain.ParallelPlot
	Image     []byte
	Rendered  bool
}

// Register subscribes views to s in the given order.
func Register(s *crossfilter.State, vs ...View) {
	for _, v := range vs {
		s.Subscribe(v)
	}
}

type base struct {
	name string

	mu        sync.Mutex
	container string
	dims      domain.Dimensions
	selection domain.FilterSelection
	highlight string
	out       Output

	logger *pterm.Logger
}

func newBase(name string, dims domain.Dimensions, logger *pterm.Logger) base {
	if logger == nil {
		logger = pterm.DefaultLogger.WithLevel(pterm.LogLevelDisabled)
	}
	return base{
		name:      name,
		container: "#" + name,
		dims:      dims,
		logger:    logger,
		out:       Output{Name: name, Container: "#" + name},
	}
}

func (b *base) Name() string { return b.name }

func (b *base) Configure(container string, dims domain.Dimensions) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.container = container
	b.dims = dims
	b.out.Container = container
}

func (b *base) Snapshot() Output {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.out
}

// apply copies the event's selection and highlight into the view.
func (b *base) apply(ev crossfilter.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.selection = ev.Selection
	b.highlight = ev.Highlight
}

// store must be called with b.mu held.
func (b *base) store(ds *domain.Dataset, data any, img []byte) {
	id := ""
	if ds != nil {
		id = ds.ID.String()
	}
	b.out = Output{
		Name:      b.name,
		Container: b.container,
		DatasetID: id,
		Selection: b.selection,
		Data:      data,
		Image:     img,
		Rendered:  true,
	}
}

// refresh is the shared Notify body.
func refresh(ctx context.Context, v View, b *base, ev crossfilter.Event) {
	b.apply(ev)
	if err := v.Update(ctx, ev.Dataset); err != nil {
		b.logger.Error("view refresh failed", b.logger.Args(
			"view", b.name,
			"event", string(ev.Kind),
			"error", err.Error(),
		))
	}
}
