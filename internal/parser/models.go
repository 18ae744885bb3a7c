package parser

// Record is one data row of a plot table: a sample point and the two
// values computed at it, in file column order (x, exact, approximation).
type Record struct {
	X      float64
	Exact  float64
	Approx float64
}

// Table holds the parsed contents of one plot table file as parallel
// column slices. The three slices always have equal length and preserve
// file order.
type Table struct {
	Path   string
	Header string
	Domain []float64
	Exact  []float64
	Approx []float64
}

// Len returns the number of data rows in the table.
func (t *Table) Len() int {
	return len(t.Domain)
}

// Append adds one record to the end of the column slices.
func (t *Table) Append(r Record) {
	t.Domain = append(t.Domain, r.X)
	t.Exact = append(t.Exact, r.Exact)
	t.Approx = append(t.Approx, r.Approx)
}
