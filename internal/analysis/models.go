package analysis

// Comparison holds the pointwise error between a table approximation and
// the exact function values, plus summary statistics over that series.
// Statistics are NaN when the table has no data rows.
type Comparison struct {
	// Errors is Approx - Exact per row, in table order.
	Errors []float64

	NumPoints  int
	MaxAbsErr  float64
	WorstX     float64 // x at which |error| peaks
	MeanAbsErr float64
	RMSErr     float64
}
