package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/nate-d-olson/giab-truvari-pipe/internal/config"
)

// Starter template containing every placeholder the run command substitutes.
const readmeTemplate = `# {{.PipelineName}} evaluation

- Run date: {{.DateOfRun}}
- Pipeline version: {{.PipelineVersion}}
- Snakemake version: {{.SnakemakeVersion}}
- Truvari version: {{.TruvariVersion}}
- gota version: {{.DataFrameVersion}}
- tablewriter version: {{.TableWriterVersion}}

## Benchmark summary

{{.SummaryTable}}
`

func newInitCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Scaffold the pipeline configuration and README template",
		Long: `Write a .giab-pipe.yaml with the default configuration and a starter
README-eval-template.md containing all supported placeholders.

Use --interactive to be prompted for the pipeline name, truvari version, and
core count. The prompt is skipped when stdin is not a terminal.

If no directory is specified, the current directory is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommandE(cmd, args, interactive)
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for pipeline settings")

	return cmd
}

func initCommandE(cmd *cobra.Command, args []string, interactive bool) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	cfg := config.New()
	if interactive && term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runConfigForm(cfg); err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(cfgPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cfgPath, err)
	}

	tmplPath := filepath.Join(dir, cfg.Report.Template)
	if err := os.WriteFile(tmplPath, []byte(readmeTemplate), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmplPath, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Initialized pipeline scaffold:") //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", cfgPath)                 //nolint:errcheck
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", tmplPath)                //nolint:errcheck

	return nil
}

func runConfigForm(cfg *config.Config) error {
	cores := strconv.Itoa(cfg.Workflow.Cores)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Pipeline name").
				Placeholder(config.DefaultPipelineName).
				Value(&cfg.Report.PipelineName),
			huh.NewInput().
				Title("Truvari version").
				Description("Manually tracked from `truvari version`; not probed at runtime").
				Value(&cfg.Report.TruvariVersion),
			huh.NewInput().
				Title("Snakemake cores").
				Value(&cores).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 {
						return fmt.Errorf("must be a positive integer")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	n, err := strconv.Atoi(strings.TrimSpace(cores))
	if err != nil {
		return fmt.Errorf("invalid core count %q", cores)
	}
	cfg.Workflow.Cores = n
	return nil
}
