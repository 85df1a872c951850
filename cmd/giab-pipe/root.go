package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "giab-pipe",
		Short: "Driver for the GIAB Truvari benchmarking pipeline",
		Long: `giab-pipe drives the GIAB Truvari analysis workflow.

It runs the Snakemake workflow, collates the combined summary report into a
Markdown table, and renders the evaluation README. Companion commands plot
size-bin counts per benchmark state and aggregate stratified performance
metrics. Each command is independently invocable and shares no state with
the others.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newPlotCommand())
	cmd.AddCommand(newMetricsCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
