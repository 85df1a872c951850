// Package plotting renders the per-state size-bin count panels as a single
// combined PNG.
package plotting

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/nate-d-olson/giab-truvari-pipe/internal/bench"
)

const (
	gridRows = 2
	gridCols = 2

	canvasWidth  = 20 * vg.Inch
	canvasHeight = 16 * vg.Inch
)

var barWidth = vg.Points(14)

// RenderStateGrid draws one grouped bar chart per match state — record
// counts per size bin, grouped by SV type — tiled 2x2, and writes the
// combined figure to outPath, replacing any prior file. A state with no
// records produces an empty panel rather than an error.
func RenderStateGrid(rs *bench.ResultSet, outPath string) error {
	plots := make([][]*plot.Plot, gridRows)
	for i := range plots {
		plots[i] = make([]*plot.Plot, gridCols)
	}

	for i, state := range bench.States {
		tab := bench.CrossTab(rs.ByState(state))
		p, err := statePanel(state, tab)
		if err != nil {
			return err
		}
		plots[i/gridCols][i%gridCols] = p
	}

	img := vgimg.New(canvasWidth, canvasHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: gridRows,
		Cols: gridCols,
		PadX: vg.Millimeter * 5,
		PadY: vg.Millimeter * 5,
	}

	canvases := plot.Align(plots, tiles, dc)
	for r := 0; r < gridRows; r++ {
		for c := 0; c < gridCols; c++ {
			plots[r][c].Draw(canvases[r][c])
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close() //nolint:errcheck
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// statePanel builds one panel: a bar per (size bin, SV type) cell, bars of
// the same SV type sharing a color and legend entry. Only categories present
// in the cross-tab appear, so empty bins never show as gaps.
func statePanel(state bench.State, tab *bench.CountTable) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s by svtype and szbin", state)
	p.X.Label.Text = "szbin"
	p.Y.Label.Text = "count"

	n := len(tab.SVTypes)
	for i, svType := range tab.SVTypes {
		vals := make(plotter.Values, len(tab.SizeBins))
		for j, bin := range tab.SizeBins {
			vals[j] = float64(tab.Count(bin, svType))
		}

		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return nil, fmt.Errorf("bar chart for %s/%s: %w", state, svType, err)
		}
		bars.LineStyle.Width = 0
		bars.Color = plotutil.Color(i)
		bars.Offset = barWidth * vg.Length(float64(i)-float64(n-1)/2)

		p.Add(bars)
		p.Legend.Add(svType, bars)
	}

	if len(tab.SizeBins) > 0 {
		p.NominalX(tab.SizeBins...)
	}
	p.Legend.Top = true
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}
