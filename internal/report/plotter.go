// Package report renders reconstructed windfield tables as PNG time-series
// plots and as a self-contained interactive HTML report.
package report

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/equinor/camille/internal/units"
	"github.com/equinor/camille/internal/windfield"
)

// series extracts one (time, value) line from a table, skipping rows where
// the value is not plottable.
func series(times []int64, values []float64) plotter.XYs {
	pts := make(plotter.XYs, 0, len(values))
	t0 := int64(0)
	if len(times) > 0 {
		t0 = times[0]
	}
	for i, v := range values {
		if !isFinite(v) {
			continue
		}
		elapsed := time.Duration(times[i] - t0).Seconds()
		pts = append(pts, plotter.XY{X: elapsed, Y: v})
	}
	return pts
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// linePlot builds one titled plot with a single line series.
func linePlot(title, yLabel string, pts plotter.XYs) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "elapsed (s)"
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build line for %s: %w", title, err)
	}
	line.Width = vg.Points(1)
	p.Add(line)
	p.Add(plotter.NewGrid())
	return p, nil
}

// SavePlots writes one PNG per headline series (speed, direction, shear,
// veer) into outputDir and returns the written file paths.
func SavePlots(t *windfield.Table, outputDir string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	dirDeg := make([]float64, len(t.DirUpr))
	for i, d := range t.DirUpr {
		dirDeg[i] = units.Degrees(d)
	}

	plots := []struct {
		name   string
		yLabel string
		values []float64
	}{
		{"speed_upr", "wind speed (m/s)", t.SpeedUpr},
		{"dir_upr", "wind direction (deg)", dirDeg},
		{"shear", "shear coefficient", t.Shear},
		{"veer", "veer (rad/m)", t.Veer},
	}

	var files []string
	for _, pl := range plots {
		p, err := linePlot(pl.name, pl.yLabel, series(t.Time, pl.values))
		if err != nil {
			return files, err
		}
		file := filepath.Join(outputDir, pl.name+".png")
		if err := p.Save(10*vg.Inch, 4*vg.Inch, file); err != nil {
			return files, fmt.Errorf("failed to save %s: %w", file, err)
		}
		files = append(files, file)
	}
	return files, nil
}
