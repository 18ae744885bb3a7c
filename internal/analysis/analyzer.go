package analysis

import (
	"fmt"
	"math"

	"github.com/user/lutplot/internal/parser"
)

// Compare computes the pointwise error series and its summary statistics
// for a parsed table. The column slices are equal-length by construction,
// so Compare cannot fail; an empty table yields NaN statistics.
func Compare(t *parser.Table) *Comparison {
	c := &Comparison{
		Errors:     make([]float64, 0, t.Len()),
		NumPoints:  t.Len(),
		MaxAbsErr:  math.NaN(),
		WorstX:     math.NaN(),
		MeanAbsErr: math.NaN(),
		RMSErr:     math.NaN(),
	}
	if t.Len() == 0 {
		return c
	}

	// NaN values (a "nan" token parses as a valid float) poison the sums,
	// so mean and RMS go NaN on their own; the max tracks only finite
	// comparisons and stays NaN when no error is comparable.
	var sumAbs, sumSq float64
	maxAbs := math.NaN()
	for i := 0; i < t.Len(); i++ {
		e := t.Approx[i] - t.Exact[i]
		c.Errors = append(c.Errors, e)

		abs := math.Abs(e)
		sumAbs += abs
		sumSq += e * e
		if !math.IsNaN(abs) && (math.IsNaN(maxAbs) || abs > maxAbs) {
			maxAbs = abs
			c.WorstX = t.Domain[i]
		}
	}

	n := float64(t.Len())
	c.MaxAbsErr = maxAbs
	c.MeanAbsErr = sumAbs / n
	c.RMSErr = math.Sqrt(sumSq / n)
	return c
}

// Summary formats the comparison statistics as a single human-readable line.
func (c *Comparison) Summary() string {
	if c.NumPoints == 0 {
		return "0 points, no error statistics"
	}
	return fmt.Sprintf("%d points, max |err| %.6g at x=%.6g, mean |err| %.6g, rms %.6g",
		c.NumPoints, c.MaxAbsErr, c.WorstX, c.MeanAbsErr, c.RMSErr)
}
