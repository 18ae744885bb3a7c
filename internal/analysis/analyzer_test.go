package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/lutplot/internal/parser"
)

func sampleTable() *parser.Table {
	return &parser.Table{
		Path:   "sample",
		Header: "header",
		Domain: []float64{0, 1, 2},
		Exact:  []float64{1, 2, 3},
		Approx: []float64{2, 4, 8},
	}
}

func TestCompare(t *testing.T) {
	c := Compare(sampleTable())

	require.Equal(t, 3, c.NumPoints)
	assert.Equal(t, []float64{1, 2, 5}, c.Errors)
	assert.InDelta(t, 5, c.MaxAbsErr, 1e-12)
	assert.InDelta(t, 2, c.WorstX, 1e-12)
	assert.InDelta(t, 8.0/3.0, c.MeanAbsErr, 1e-12)
	assert.InDelta(t, math.Sqrt(10), c.RMSErr, 1e-12)
}

func TestCompareNegativeErrors(t *testing.T) {
	table := &parser.Table{
		Domain: []float64{0, 1},
		Exact:  []float64{5, 5},
		Approx: []float64{2, 6},
	}
	c := Compare(table)

	assert.Equal(t, []float64{-3, 1}, c.Errors)
	assert.InDelta(t, 3, c.MaxAbsErr, 1e-12)
	assert.InDelta(t, 0, c.WorstX, 1e-12)
}

func TestCompareAllNaN(t *testing.T) {
	table := &parser.Table{
		Domain: []float64{0, 1},
		Exact:  []float64{math.NaN(), math.NaN()},
		Approx: []float64{1, 2},
	}
	c := Compare(table)

	require.Equal(t, 2, c.NumPoints)
	assert.True(t, math.IsNaN(c.MaxAbsErr))
	assert.True(t, math.IsNaN(c.WorstX))
	assert.True(t, math.IsNaN(c.MeanAbsErr))
	assert.True(t, math.IsNaN(c.RMSErr))
}

func TestCompareMixedNaN(t *testing.T) {
	table := &parser.Table{
		Domain: []float64{0, 1},
		Exact:  []float64{math.NaN(), 2},
		Approx: []float64{1, 5},
	}
	c := Compare(table)

	// The max only ranks comparable errors; the sums stay NaN.
	assert.InDelta(t, 3, c.MaxAbsErr, 1e-12)
	assert.InDelta(t, 1, c.WorstX, 1e-12)
	assert.True(t, math.IsNaN(c.MeanAbsErr))
	assert.True(t, math.IsNaN(c.RMSErr))
}

func TestCompareEmptyTable(t *testing.T) {
	c := Compare(&parser.Table{})

	assert.Equal(t, 0, c.NumPoints)
	assert.Empty(t, c.Errors)
	assert.True(t, math.IsNaN(c.MaxAbsErr))
	assert.True(t, math.IsNaN(c.WorstX))
	assert.True(t, math.IsNaN(c.MeanAbsErr))
	assert.True(t, math.IsNaN(c.RMSErr))
}

func TestSummary(t *testing.T) {
	c := Compare(sampleTable())
	s := c.Summary()
	assert.Contains(t, s, "3 points")
	assert.Contains(t, s, "max |err| 5")
	assert.Contains(t, s, "x=2")

	empty := Compare(&parser.Table{})
	assert.Equal(t, "0 points, no error statistics", empty.Summary())
}
