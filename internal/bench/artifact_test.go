package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArtifactRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refine.gob.gz")

	rs := &ResultSet{Records: []Record{
		{Chrom: "chr2", Start: 1000, End: 1350, State: StateTP, SVType: "DEL", SizeBin: "[300,400)"},
		{Chrom: "chrX", Start: 50, End: 60, State: StateFN, SVType: "INS", SizeBin: "[0,50)"},
	}}

	require.NoError(t, WriteArtifact(path, rs))

	got, err := ReadArtifact(path)
	require.NoError(t, err)
	assert.Equal(t, rs.Records, got.Records)
}

func TestReadArtifactMissing(t *testing.T) {
	_, err := ReadArtifact(filepath.Join(t.TempDir(), "nope.gob.gz"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.gob.gz")
}

func TestReadArtifactNotGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gob.gz")
	require.NoError(t, os.WriteFile(path, []byte("not a gzip stream"), 0o644))

	_, err := ReadArtifact(path)
	assert.Error(t, err)
}
