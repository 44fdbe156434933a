package charts

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"benchviz/report"
)

// LatencyPercentiles renders latency_percentiles.png: three bars per test
// (p50, p90, p99) side by side, grouped by test in document order. Absent
// percentiles draw as zero-height bars.
func LatencyPercentiles(doc *report.Document, dir string) error {
	n := len(doc.Tests)
	labels := make([]string, n)
	p50 := make(plotter.Values, n)
	p90 := make(plotter.Values, n)
	p99 := make(plotter.Values, n)
	for i, t := range doc.Tests {
		labels[i] = t.Name
		p50[i] = t.P50LatencyMs
		p90[i] = t.P90LatencyMs
		p99[i] = t.P99LatencyMs
	}

	p := plot.New()
	p.Title.Text = "Performance Benchmarks - Latency Percentiles"
	p.X.Label.Text = "Test Scenario"
	p.Y.Label.Text = "Latency (ms)"

	width := vg.Points(12)
	series := []struct {
		name   string
		values plotter.Values
		color  color.RGBA
	}{
		{"p50", p50, color.RGBA{R: 144, G: 238, B: 144, A: 255}}, // light green
		{"p90", p90, color.RGBA{R: 255, G: 165, B: 0, A: 255}},   // orange
		{"p99", p99, color.RGBA{R: 255, G: 0, B: 0, A: 255}},     // red
	}

	for i, s := range series {
		bar, err := plotter.NewBarChart(s.values, width)
		if err != nil {
			return fmt.Errorf("failed to create %s bars: %w", s.name, err)
		}
		bar.LineStyle.Width = 0
		bar.Color = s.color
		// one bar width apart, centered on the group: -w, 0, +w
		bar.Offset = width * vg.Length(i-1)

		p.Add(bar)
		p.Legend.Add(s.name, bar)
	}

	p.Legend.Top = true
	p.NominalX(labels...)
	p.X.Min = -0.5
	p.X.Max = float64(n) - 0.5
	p.Y.Min = 0

	path := filepath.Join(dir, "latency_percentiles.png")
	if err := p.Save(14*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	fmt.Printf("✓ Saved: %s\n", path)
	return nil
}
