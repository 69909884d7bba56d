package render

import (
	"bytes"
	"context"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/dustin/go-humanize"

	"salary-viz-service/internal/salaries/core/ports"
)

// Renderer draws every chart kind as SVG. It holds no state and is safe for concurrent use.
type Renderer struct{}

var (
	_ ports.BarRendererPort        = (*Renderer)(nil)
	_ ports.ChoroplethRendererPort = (*Renderer)(nil)
	_ ports.ScatterRendererPort    = (*Renderer)(nil)
	_ ports.ParallelRendererPort   = (*Renderer)(nil)
)

func New() *Renderer {
	return &Renderer{}
}

const fontStyle = `font-family="Roboto,Helvetica,Arial,sans-serif" font-size="12px"`

// placeholder is drawn instead of a chart when there is nothing to plot.
func placeholder(w io.Writer, title string, width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 300, 150
	}
	canvas := svg.New(w)
	canvas.Start(width, height, fontStyle)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")
	if title != "" {
		canvas.Text(width/2, 20, title, `text-anchor="middle" font-size="14px"`)
	}
	canvas.Text(width/2, height/2, "No data", `text-anchor="middle" fill="#888888"`)
	canvas.End()
}

func placeholderBytes(title string, width, height int) []byte {
	var buf bytes.Buffer
	placeholder(&buf, title, width, height)
	return buf.Bytes()
}

func usd(v float64) string {
	return "$" + humanize.Comma(int64(v))
}

func formatUSD(v any) string {
	if f, ok := v.(float64); ok {
		return usd(f)
	}
	return fmt.Sprint(v)
}

func checkContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ctx.Err()
}
