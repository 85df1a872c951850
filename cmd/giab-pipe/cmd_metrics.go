package main

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/nate-d-olson/giab-truvari-pipe/internal/config"
	"github.com/nate-d-olson/giab-truvari-pipe/internal/stratified"
)

func newMetricsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "metrics",
		Short: "Aggregate stratified counts into precision/recall/F1",
		Long: `Sum the tpbase/tp/fn/fp columns of the stratified intersection table
and derive overall precision, recall, and F1 from the sums.`,
		Args: cobra.NoArgs,
		RunE: metricsCommandE,
	}
}

func metricsCommandE(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	counts, err := stratified.LoadCounts(cfg.Stratified.Table)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, c := range []struct {
		label string
		value float64
	}{
		{"tpbase", counts.TPBase},
		{"tp", counts.TP},
		{"fn", counts.FN},
		{"fp", counts.FP},
	} {
		fmt.Fprintf(out, "%s %.0f\n", runewidth.FillRight(c.label+":", 8), c.value) //nolint:errcheck
	}

	precision, recall, f1 := counts.Metrics()
	fmt.Fprintln(out, stratified.MetricsTable(precision, recall, f1)) //nolint:errcheck
	return nil
}
