package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nate-d-olson/giab-truvari-pipe/internal/bench"
)

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "bench_results"), 0o755))
	rs := &bench.ResultSet{Records: []bench.Record{
		{Chrom: "chr1", Start: 100, End: 160, State: bench.StateTP, SVType: "DEL", SizeBin: "[50,100)"},
		{Chrom: "chr1", Start: 300, End: 360, State: bench.StateFN, SVType: "INS", SizeBin: "[50,100)"},
	}}
	require.NoError(t, bench.WriteArtifact(filepath.Join(dir, "bench_results", "hapdiff_R9_phased_refine.gob.gz"), rs))

	stdout, _, err := runCLI(t, "plot")
	require.NoError(t, err)
	assert.Contains(t, stdout, "hapdiff_R9_phased_combined.png")

	f, err := os.Open(filepath.Join(dir, "bench_results", "hapdiff_R9_phased_combined.png"))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck
	_, err = png.DecodeConfig(f)
	assert.NoError(t, err)
}

func TestPlotCommandMissingArtifact(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := runCLI(t, "plot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hapdiff_R9_phased_refine.gob.gz")
}
