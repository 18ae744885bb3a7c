package report

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/user/lutplot/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Default chart dimensions in points.
const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Options control chart rendering.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = vg.Points(DefaultWidth)
	}
	if o.Height <= 0 {
		o.Height = vg.Points(DefaultHeight)
	}
	return o
}

var (
	exactColor  = color.RGBA{B: 255, A: 255}
	approxColor = color.RGBA{R: 255, A: 255}
	errColor    = color.RGBA{R: 128, B: 128, A: 255}
	gray        = color.Gray{Y: 128}
)

// RenderComparison draws the exact function and the table approximation as
// two solid lines over the shared domain and returns the chart as PNG
// bytes. A table with no data rows renders as an empty chart.
func RenderComparison(t *parser.Table, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "f(x)"
	p.Add(plotter.NewGrid())

	if t.Len() > 0 {
		exact, err := plotter.NewLine(xys(t.Domain, t.Exact))
		if err != nil {
			return nil, fmt.Errorf("failed to create exact-function line: %v", err)
		}
		exact.Color = exactColor
		exact.LineStyle.Width = vg.Points(1.5)
		p.Add(exact)
		p.Legend.Add("exact", exact)

		approx, err := plotter.NewLine(xys(t.Domain, t.Approx))
		if err != nil {
			return nil, fmt.Errorf("failed to create approximation line: %v", err)
		}
		approx.Color = approxColor
		approx.LineStyle.Width = vg.Points(1.5)
		p.Add(approx)
		p.Legend.Add("approximation", approx)
	}

	p.Legend.Top = true
	p.Legend.XOffs = vg.Points(-10)

	return renderPNG(p, opts)
}

// xys pairs two equal-length column slices into plotter points.
func xys(domain, values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(domain))
	for i := range pts {
		pts[i].X = domain[i]
		pts[i].Y = values[i]
	}
	return pts
}

// renderPNG draws the plot into a buffer instead of a file so callers can
// route the image to a window, a PNG on disk, or a PDF page.
func renderPNG(p *plot.Plot, opts Options) ([]byte, error) {
	writer, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to create plot writer: %v", err)
	}
	buf := new(bytes.Buffer)
	if _, err := writer.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to write plot to buffer: %v", err)
	}
	return buf.Bytes(), nil
}
