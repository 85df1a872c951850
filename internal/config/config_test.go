package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
}

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "snakemake", cfg.Workflow.Binary)
	assert.Equal(t, 20, cfg.Workflow.Cores)
	require.NotNil(t, cfg.Workflow.Verbose)
	assert.True(t, *cfg.Workflow.Verbose)
	require.NotNil(t, cfg.Workflow.RerunIncomplete)
	assert.True(t, *cfg.Workflow.RerunIncomplete)

	assert.Equal(t, "summary_reports/combined_summary_report.csv", cfg.Report.SummaryCSV)
	assert.Equal(t, "README-eval-template.md", cfg.Report.Template)
	assert.Equal(t, "giab-evaluation-README.md", cfg.Report.Output)
	assert.Equal(t, "Truvari Analysis", cfg.Report.PipelineName)
	assert.Equal(t, "v4.2.2-dev", cfg.Report.TruvariVersion)
	assert.Equal(t, "hapdiff_AllTRandHP.tsv", cfg.Stratified.Table)
}

func TestLoadNoFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoadMergesOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
workflow:
  cores: 8
  verbose: false
report:
  pipeline_name: Hapdiff Analysis
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Workflow.Cores)
	require.NotNil(t, cfg.Workflow.Verbose)
	assert.False(t, *cfg.Workflow.Verbose)
	assert.Equal(t, "Hapdiff Analysis", cfg.Report.PipelineName)

	// Untouched fields keep defaults.
	assert.Equal(t, "snakemake", cfg.Workflow.Binary)
	assert.Equal(t, DefaultSummaryCSV, cfg.Report.SummaryCSV)
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "workflow:\n  cores: 2\n")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workflow.Cores)
}

func TestLoadEmptyFileIsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoadSchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		content string
		substr  string
	}{
		{
			name:    "cores below minimum",
			content: "workflow:\n  cores: 0\n",
			substr:  "/workflow/cores",
		},
		{
			name:    "wrong type",
			content: "workflow:\n  cores: twenty\n",
			substr:  "/workflow/cores",
		},
		{
			name:    "unknown top-level key",
			content: "snakemake:\n  cores: 4\n",
			substr:  "invalid " + FileName,
		},
		{
			name:    "not yaml",
			content: "{{{{",
			substr:  "YAML parse error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tc.content)

			_, err := Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.substr)
		})
	}
}
