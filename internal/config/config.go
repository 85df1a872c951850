// Package config provides the pipeline configuration loaded from
// .giab-pipe.yaml. Every path and version constant the pipeline uses lives
// here; the defaults reproduce the historical hard-coded values, so running
// without a config file behaves exactly as before.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file searched for when loading.
const FileName = ".giab-pipe.yaml"

// Default values. New() references them and no other code should duplicate
// them.
const (
	DefaultWorkflowBinary = "snakemake"
	DefaultWorkflowCores  = 20

	DefaultSummaryCSV      = "summary_reports/combined_summary_report.csv"
	DefaultReadmeTemplate  = "README-eval-template.md"
	DefaultReadmeOutput    = "giab-evaluation-README.md"
	DefaultPipelineName    = "Truvari Analysis"
	DefaultPipelineVersion = "1.2.0"

	// Manually tracked from `truvari version`; never probed at runtime.
	DefaultTruvariVersion = "v4.2.2-dev"

	DefaultPlotArtifact = "bench_results/hapdiff_R9_phased_refine.gob.gz"
	DefaultPlotOutput   = "bench_results/hapdiff_R9_phased_combined.png"

	DefaultStratifiedTable = "hapdiff_AllTRandHP.tsv"
)

// WorkflowConfig controls the Snakemake invocation.
type WorkflowConfig struct {
	Binary          string `yaml:"binary,omitempty"`
	Cores           int    `yaml:"cores,omitempty"`
	Verbose         *bool  `yaml:"verbose,omitempty"`
	RerunIncomplete *bool  `yaml:"rerun_incomplete,omitempty"`
}

// ReportConfig holds the summary-table and README-render paths and the
// version constants substituted into the README.
type ReportConfig struct {
	SummaryCSV      string `yaml:"summary_csv,omitempty"`
	Template        string `yaml:"template,omitempty"`
	Output          string `yaml:"output,omitempty"`
	PipelineName    string `yaml:"pipeline_name,omitempty"`
	PipelineVersion string `yaml:"pipeline_version,omitempty"`
	TruvariVersion  string `yaml:"truvari_version,omitempty"`
}

// PlotConfig holds the size-bin plot paths.
type PlotConfig struct {
	Artifact string `yaml:"artifact,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

// StratifiedConfig holds the stratified-metrics input path.
type StratifiedConfig struct {
	Table string `yaml:"table,omitempty"`
}

// Config is the top-level configuration loaded from .giab-pipe.yaml.
type Config struct {
	Workflow   WorkflowConfig   `yaml:"workflow,omitempty"`
	Report     ReportConfig     `yaml:"report,omitempty"`
	Plot       PlotConfig       `yaml:"plot,omitempty"`
	Stratified StratifiedConfig `yaml:"stratified,omitempty"`
}

// New returns a Config with all defaults populated.
func New() *Config {
	return &Config{
		Workflow: WorkflowConfig{
			Binary:          DefaultWorkflowBinary,
			Cores:           DefaultWorkflowCores,
			Verbose:         boolPtr(true),
			RerunIncomplete: boolPtr(true),
		},
		Report: ReportConfig{
			SummaryCSV:      DefaultSummaryCSV,
			Template:        DefaultReadmeTemplate,
			Output:          DefaultReadmeOutput,
			PipelineName:    DefaultPipelineName,
			PipelineVersion: DefaultPipelineVersion,
			TruvariVersion:  DefaultTruvariVersion,
		},
		Plot: PlotConfig{
			Artifact: DefaultPlotArtifact,
			Output:   DefaultPlotOutput,
		},
		Stratified: StratifiedConfig{
			Table: DefaultStratifiedTable,
		},
	}
}

// Load finds .giab-pipe.yaml by walking up from startDir (max 10 levels),
// validates it against the embedded schema, and fills in missing fields with
// defaults. If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*Config, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	if errs := validateBytes(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid %s:\n  %s", FileName, strings.Join(errs, "\n  "))
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// findConfigFile walks up from dir looking for .giab-pipe.yaml (max 10
// levels). Returns os.ErrNotExist if no config file is found.
func findConfigFile(dir string) ([]byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *Config) {
	if src.Workflow.Binary != "" {
		dst.Workflow.Binary = src.Workflow.Binary
	}
	if src.Workflow.Cores != 0 {
		dst.Workflow.Cores = src.Workflow.Cores
	}
	if src.Workflow.Verbose != nil {
		dst.Workflow.Verbose = src.Workflow.Verbose
	}
	if src.Workflow.RerunIncomplete != nil {
		dst.Workflow.RerunIncomplete = src.Workflow.RerunIncomplete
	}

	if src.Report.SummaryCSV != "" {
		dst.Report.SummaryCSV = src.Report.SummaryCSV
	}
	if src.Report.Template != "" {
		dst.Report.Template = src.Report.Template
	}
	if src.Report.Output != "" {
		dst.Report.Output = src.Report.Output
	}
	if src.Report.PipelineName != "" {
		dst.Report.PipelineName = src.Report.PipelineName
	}
	if src.Report.PipelineVersion != "" {
		dst.Report.PipelineVersion = src.Report.PipelineVersion
	}
	if src.Report.TruvariVersion != "" {
		dst.Report.TruvariVersion = src.Report.TruvariVersion
	}

	if src.Plot.Artifact != "" {
		dst.Plot.Artifact = src.Plot.Artifact
	}
	if src.Plot.Output != "" {
		dst.Plot.Output = src.Plot.Output
	}

	if src.Stratified.Table != "" {
		dst.Stratified.Table = src.Stratified.Table
	}
}

func boolPtr(b bool) *bool {
	return &b
}
