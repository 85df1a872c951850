package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nate-d-olson/giab-truvari-pipe/internal/bench"
	"github.com/nate-d-olson/giab-truvari-pipe/internal/config"
	"github.com/nate-d-olson/giab-truvari-pipe/internal/plotting"
)

func newPlotCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "Render size-bin count plots per benchmark state",
		Long: `Render one grouped bar chart per match state (tpbase, tp, fp, fn) from
the refined benchmark results artifact: record counts per size bin, grouped
by SV type, combined into a single 2x2 PNG.`,
		Args: cobra.NoArgs,
		RunE: plotCommandE,
	}
}

func plotCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	rs, err := bench.ReadArtifact(cfg.Plot.Artifact)
	if err != nil {
		return err
	}

	if err := plotting.RenderStateGrid(rs, cfg.Plot.Output); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", cfg.Plot.Output) //nolint:errcheck
	return nil
}
