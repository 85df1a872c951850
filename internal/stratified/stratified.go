// Package stratified aggregates per-region benchmark counts from a
// stratified intersection table and derives overall performance metrics.
package stratified

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/nate-d-olson/giab-truvari-pipe/internal/bench"
)

// The intersection table has no header row; columns are positional. The
// first three are region coordinates and are unused downstream.
var columns = []string{"chrom", "start", "end", "tpbase", "tp", "fn", "fp"}

// Counts holds the four match-count sums across all regions.
type Counts struct {
	TPBase float64
	TP     float64
	FN     float64
	FP     float64
}

// LoadCounts reads the tab-separated intersection table at path and sums the
// four count columns across all rows.
func LoadCounts(path string) (Counts, error) {
	f, err := os.Open(path)
	if err != nil {
		return Counts{}, fmt.Errorf("stratified table %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter('\t'),
		dataframe.HasHeader(false),
		dataframe.Names(columns...),
	)
	if df.Err != nil {
		return Counts{}, fmt.Errorf("parsing %s: %w", path, df.Err)
	}

	return Counts{
		TPBase: df.Col("tpbase").Sum(),
		TP:     df.Col("tp").Sum(),
		FN:     df.Col("fn").Sum(),
		FP:     df.Col("fp").Sum(),
	}, nil
}

// Metrics passes the summed counts to the performance-metrics formula.
func (c Counts) Metrics() (precision, recall, f1 float64) {
	return bench.PerformanceMetrics(c.TPBase, c.TP, c.FN, c.FP)
}

// MetricsTable packages the three rates as a single-row dataframe for
// printing.
func MetricsTable(precision, recall, f1 float64) dataframe.DataFrame {
	return dataframe.New(
		series.New([]float64{precision}, series.Float, "precision"),
		series.New([]float64{recall}, series.Float, "recall"),
		series.New([]float64{f1}, series.Float, "f1"),
	)
}
