// Package charts renders the benchmark chart artifacts with gonum/plot.
// Each exported function builds its own plot, saves one image into the
// output directory and announces the written path on stdout.
package charts

import (
	"fmt"
	"image/color"
	"path/filepath"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"benchviz/report"
)

var steelBlue = color.RGBA{R: 70, G: 130, B: 180, A: 255}

// RPSComparison renders rps_comparison.png: one bar per test in document
// order, annotated with the integer RPS value.
func RPSComparison(doc *report.Document, dir string) error {
	values := make(plotter.Values, len(doc.Tests))
	labels := make([]string, len(doc.Tests))
	for i, t := range doc.Tests {
		values[i] = t.RequestsPerSecond
		labels[i] = t.Name
	}

	p := plot.New()
	p.Title.Text = "Performance Benchmarks - Throughput Comparison"
	p.X.Label.Text = "Test Scenario"
	p.Y.Label.Text = "Requests per Second"

	bar, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return fmt.Errorf("failed to create bar chart: %w", err)
	}
	bar.LineStyle.Width = 0
	bar.Color = steelBlue

	p.Add(bar)
	p.NominalX(labels...)

	annotations, err := valueLabels(values)
	if err != nil {
		return fmt.Errorf("failed to create bar labels: %w", err)
	}
	p.Add(annotations)

	p.X.Min = -0.5
	p.X.Max = float64(len(values)) - 0.5
	p.Y.Min = 0
	p.Y.Max *= 1.1 // headroom so the topmost label stays inside the frame

	path := filepath.Join(dir, "rps_comparison.png")
	if err := p.Save(14*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	fmt.Printf("✓ Saved: %s\n", path)
	return nil
}

// valueLabels places a thousands-separated integer label above each bar.
func valueLabels(values plotter.Values) (*plotter.Labels, error) {
	pr := message.NewPrinter(language.English)

	xys := make(plotter.XYs, len(values))
	texts := make([]string, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
		texts[i] = pr.Sprintf("%d", int(v))
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YBottom
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}
	return labels, nil
}
