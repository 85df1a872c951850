package stratified

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nate-d-olson/giab-truvari-pipe/internal/bench"
)

func writeTSV(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "hapdiff_AllTRandHP.tsv")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadCounts(t *testing.T) {
	// chrom start end tpbase tp fn fp
	path := writeTSV(t,
		"chr1\t100\t200\t4\t3\t1\t0\n"+
			"chr1\t500\t900\t2\t2\t0\t1\n"+
			"chr2\t10\t50\t4\t3\t1\t0\n")

	counts, err := LoadCounts(path)
	require.NoError(t, err)

	assert.Equal(t, Counts{TPBase: 10, TP: 8, FN: 2, FP: 1}, counts)
}

// The aggregator is a pure pass-through of the sums into the formula.
func TestMetricsMatchesFormula(t *testing.T) {
	counts := Counts{TPBase: 10, TP: 8, FN: 2, FP: 1}

	p, r, f1 := counts.Metrics()
	wantP, wantR, wantF1 := bench.PerformanceMetrics(10, 8, 2, 1)

	assert.Equal(t, wantP, p)
	assert.Equal(t, wantR, r)
	assert.Equal(t, wantF1, f1)
}

func TestLoadCountsMissingFile(t *testing.T) {
	_, err := LoadCounts(filepath.Join(t.TempDir(), "nope.tsv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.tsv")
}

func TestMetricsTable(t *testing.T) {
	df := MetricsTable(0.8889, 0.8333, 0.8602)

	require.NoError(t, df.Err)
	assert.Equal(t, 1, df.Nrow())
	assert.Equal(t, []string{"precision", "recall", "f1"}, df.Names())
	assert.InDelta(t, 0.8889, df.Col("precision").Val(0).(float64), 1e-12)
}
