package report

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/lutplot/internal/analysis"
	"github.com/user/lutplot/internal/parser"
)

func sampleTable() *parser.Table {
	return &parser.Table{
		Path:   "sample",
		Header: "# x func impl",
		Domain: []float64{0, 1, 2},
		Exact:  []float64{1, 2, 3},
		Approx: []float64{2, 4, 8},
	}
}

// decodePNG asserts the bytes are a decodable PNG and returns its bounds.
func decodePNG(t *testing.T, data []byte) (width, height int) {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRenderComparison(t *testing.T) {
	data, err := RenderComparison(sampleTable(), Options{Title: "sample"})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	w, h := decodePNG(t, data)
	assert.Greater(t, w, 0)
	assert.Greater(t, h, 0)
	// Default options keep the 2:1 aspect ratio.
	assert.InDelta(t, 2.0, float64(w)/float64(h), 0.01)
}

func TestRenderComparisonEmptyTable(t *testing.T) {
	table := &parser.Table{Path: "empty", Header: "header"}
	data, err := RenderComparison(table, Options{Title: "empty"})
	require.NoError(t, err)

	w, h := decodePNG(t, data)
	assert.Greater(t, w, 0)
	assert.Greater(t, h, 0)
}

func TestRenderError(t *testing.T) {
	table := sampleTable()
	c := analysis.Compare(table)

	data, err := RenderError(table, c, Options{Title: "sample"})
	require.NoError(t, err)
	w, h := decodePNG(t, data)
	assert.Greater(t, w, 0)
	assert.Greater(t, h, 0)
}

func TestRenderErrorEmptyTable(t *testing.T) {
	table := &parser.Table{}
	c := analysis.Compare(table)

	data, err := RenderError(table, c, Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBuildPDFReport(t *testing.T) {
	table := sampleTable()
	c := analysis.Compare(table)

	comparison, err := RenderComparison(table, Options{Title: "sample"})
	require.NoError(t, err)
	errChart, err := RenderError(table, c, Options{Title: "sample"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.pdf")
	err = BuildPDFReport(path, table, c, map[string][]byte{
		"comparison": comparison,
		"error":      errChart,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "expected a PDF header")
}

func TestBuildPDFReportNoData(t *testing.T) {
	table := &parser.Table{Path: "empty", Header: "header"}
	c := analysis.Compare(table)

	comparison, err := RenderComparison(table, Options{Title: "empty"})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.pdf")
	err = BuildPDFReport(path, table, c, map[string][]byte{"comparison": comparison})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
