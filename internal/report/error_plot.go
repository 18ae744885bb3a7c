package report

import (
	"fmt"

	"github.com/user/lutplot/internal/analysis"
	"github.com/user/lutplot/internal/parser"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// RenderError draws the pointwise error of the approximation against the
// exact values, with a dashed zero line for reference, and returns the
// chart as PNG bytes.
func RenderError(t *parser.Table, c *analysis.Comparison, opts Options) ([]byte, error) {
	opts = opts.withDefaults()

	p := plot.New()
	if opts.Title != "" {
		p.Title.Text = fmt.Sprintf("%s (error)", opts.Title)
	}
	p.X.Label.Text = "x"
	p.Y.Label.Text = "approximation - exact"
	p.Add(plotter.NewGrid())

	if t.Len() > 0 {
		zero, err := plotter.NewLine(plotter.XYs{
			{X: t.Domain[0], Y: 0},
			{X: t.Domain[t.Len()-1], Y: 0},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create zero line: %v", err)
		}
		zero.Color = gray
		zero.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(zero)

		line, err := plotter.NewLine(xys(t.Domain, c.Errors))
		if err != nil {
			return nil, fmt.Errorf("failed to create error line: %v", err)
		}
		line.Color = errColor
		line.LineStyle.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add("error", line)
		p.Legend.Top = true
	}

	return renderPNG(p, opts)
}
