package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nate-d-olson/giab-truvari-pipe/internal/config"
	"github.com/nate-d-olson/giab-truvari-pipe/internal/report"
	"github.com/nate-d-olson/giab-truvari-pipe/internal/workflow"
)

func newRunCommand() *cobra.Command {
	var skipPipeline bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the Snakemake workflow and render the evaluation README",
		Long: `Run the Truvari analysis pipeline end to end.

Invokes the Snakemake workflow, converts the combined summary report into a
Markdown table, and fills in the README template with pipeline and run
information. The three steps run strictly in sequence; the first failure
stops the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommandE(cmd, skipPipeline)
		},
	}

	cmd.Flags().BoolVar(&skipPipeline, "skip-pipeline", false,
		"Skip running the Snakemake workflow and only rebuild the summary table and README")

	return cmd
}

func runCommandE(cmd *cobra.Command, skipPipeline bool) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	runner := &workflow.Runner{
		Binary:          cfg.Workflow.Binary,
		Cores:           cfg.Workflow.Cores,
		Verbose:         *cfg.Workflow.Verbose,
		RerunIncomplete: *cfg.Workflow.RerunIncomplete,
		Stdout:          out,
		Stderr:          cmd.ErrOrStderr(),
	}

	if !skipPipeline {
		fmt.Fprintln(out, "Running the Snakemake workflow...") //nolint:errcheck
		if err := runner.Run(ctx); err != nil {
			return fmt.Errorf("snakemake workflow failed: %w", err)
		}
	}

	fmt.Fprintf(out, "Loading %s...\n", cfg.Report.SummaryCSV) //nolint:errcheck
	table, err := report.BuildSummaryTable(cfg.Report.SummaryCSV)
	if err != nil {
		return err
	}

	fields := report.Fields{
		PipelineName:       cfg.Report.PipelineName,
		DateOfRun:          time.Now().Format("2006-01-02"),
		SnakemakeVersion:   runner.Version(ctx),
		PipelineVersion:    cfg.Report.PipelineVersion,
		TruvariVersion:     cfg.Report.TruvariVersion,
		DataFrameVersion:   report.ModuleVersion(report.DataFrameModule),
		TableWriterVersion: report.ModuleVersion(report.TableWriterModule),
		SummaryTable:       table,
	}

	fmt.Fprintf(out, "Writing %s...\n", cfg.Report.Output) //nolint:errcheck
	if err := report.RenderReadme(cfg.Report.Template, cfg.Report.Output, fields); err != nil {
		return err
	}

	fmt.Fprintln(out, "Finished!") //nolint:errcheck
	return nil
}
