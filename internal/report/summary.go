// Package report builds the Markdown summary table from the combined
// summary report and renders the evaluation README from its template.
package report

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/olekukonko/tablewriter"
)

// BuildSummaryTable loads the combined summary CSV and renders it as a
// pipe-delimited Markdown table: header row, float columns at 4 decimal
// places, no row index. The file is required; a missing or unreadable file
// is an error.
func BuildSummaryTable(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("summary report %s not found: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	df := dataframe.ReadCSV(f)
	if df.Err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, df.Err)
	}

	return markdownTable(df), nil
}

// markdownTable renders a dataframe as a Markdown pipe table. Column types
// drive cell formatting: float cells get exactly 4 decimals, everything else
// is emitted verbatim.
func markdownTable(df dataframe.DataFrame) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(df.Names())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("|")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("-")
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})

	types := df.Types()
	for _, rec := range df.Records()[1:] {
		row := make([]string, len(rec))
		for i, cell := range rec {
			if types[i] == series.Float {
				if v, err := strconv.ParseFloat(cell, 64); err == nil {
					cell = strconv.FormatFloat(v, 'f', 4, 64)
				}
			}
			row[i] = cell
		}
		table.Append(row)
	}

	table.Render()
	return strings.TrimRight(buf.String(), "\n")
}
