package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"text/template"
)

// Module paths whose versions are substituted into the README.
const (
	DataFrameModule   = "github.com/go-gota/gota"
	TableWriterModule = "github.com/olekukonko/tablewriter"
)

// Fields holds every value substituted into the README template. Template
// placeholders must reference exactly these names; a placeholder outside
// this set fails the render.
type Fields struct {
	PipelineName       string
	DateOfRun          string
	SnakemakeVersion   string
	PipelineVersion    string
	TruvariVersion     string
	DataFrameVersion   string
	TableWriterVersion string
	SummaryTable       string
}

// RenderReadme fills the template at templatePath with fields and writes the
// result to outPath, replacing any prior file. The template is required; a
// missing or unreadable template, an unknown placeholder, and a failed write
// are all errors.
func RenderReadme(templatePath, outPath string, fields Fields) error {
	if _, err := os.Stat(templatePath); err != nil {
		return fmt.Errorf("readme template %s not found: %w", templatePath, err)
	}

	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", templatePath, err)
	}

	t, err := template.New(filepath.Base(templatePath)).Option("missingkey=error").Parse(string(raw))
	if err != nil {
		return fmt.Errorf("parsing %s: %w", templatePath, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, fields); err != nil {
		return fmt.Errorf("rendering %s: %w", templatePath, err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// ModuleVersion returns the version of a dependency as recorded in the
// binary's build info, or "unknown" outside a module-aware build (e.g. some
// test binaries).
func ModuleVersion(path string) string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range bi.Deps {
		if dep.Path == path {
			return dep.Version
		}
	}
	return "unknown"
}
