package report

import (
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/equinor/camille/internal/units"
	"github.com/equinor/camille/internal/windfield"
	"github.com/equinor/camille/internal/windstats"
)

// lineChart builds one interactive line chart over the table's time axis.
// NaN rows become gaps rather than being dropped, so the x axis stays
// aligned across charts.
func lineChart(title, subtitle, yName string, times []int64, values []float64) *charts.Line {
	x := make([]string, len(times))
	y := make([]opts.LineData, len(values))
	for i := range times {
		x[i] = time.Unix(0, times[i]).UTC().Format("15:04:05")
		if isFinite(values[i]) {
			y[i] = opts.LineData{Value: values[i]}
		} else {
			y[i] = opts.LineData{Value: "-"}
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "360px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	line.SetXAxis(x)
	line.AddSeries(title, y)
	return line
}

// WriteHTML renders the table's headline series as one HTML page of
// interactive charts, with a per-series summary in each subtitle.
func WriteHTML(t *windfield.Table, path string) error {
	dirDeg := make([]float64, len(t.DirUpr))
	for i, d := range t.DirUpr {
		dirDeg[i] = units.Degrees(d)
	}

	page := components.NewPage()
	page.PageTitle = "Windfield reconstruction"

	sections := []struct {
		title  string
		yName  string
		values []float64
	}{
		{"Upper plane wind speed", "m/s", t.SpeedUpr},
		{"Lower plane wind speed", "m/s", t.SpeedLwr},
		{"Upper plane wind direction", "deg", dirDeg},
		{"Shear coefficient", "", t.Shear},
		{"Veer", "rad/m", t.Veer},
	}
	for _, s := range sections {
		sum := windstats.Summarize(s.values)
		subtitle := fmt.Sprintf("n=%d mean=%.3f stddev=%.3f min=%.3f max=%.3f",
			sum.Count, sum.Mean, sum.StdDev, sum.Min, sum.Max)
		page.AddCharts(lineChart(s.title, subtitle, s.yName, t.Time, s.values))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	return nil
}
