package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"benchviz/report"
)

// maxLabelLen keeps heatmap row labels readable; longer names are cut.
const maxLabelLen = 40

var heatmapMetrics = []string{"RPS", "Avg Latency", "p50", "p90", "p99"}

// metricMatrix builds one row per test: RPS in thousands first, then the
// latency columns in ms.
func metricMatrix(tests []report.TestResult) [][]float64 {
	m := make([][]float64, len(tests))
	for i, t := range tests {
		m[i] = []float64{
			t.RequestsPerSecond / 1000,
			t.AvgLatencyMs,
			t.P50LatencyMs,
			t.P90LatencyMs,
			t.P99LatencyMs,
		}
	}
	return m
}

// normalizeColumns scales each column by its own maximum so every entry
// lands in [0, 1]. A column whose maximum is 0 is left as all zeros. The
// minimum is not shifted, so values near zero stay near zero.
func normalizeColumns(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}

	out := make([][]float64, len(m))
	for i := range out {
		out[i] = make([]float64, len(m[i]))
	}

	for col := range m[0] {
		colMax := 0.0
		for row := range m {
			if m[row][col] > colMax {
				colMax = m[row][col]
			}
		}
		if colMax == 0 {
			continue
		}
		for row := range m {
			out[row][col] = m[row][col] / colMax
		}
	}
	return out
}

// lightText reports whether a cell needs a light label to stay readable
// against its background. The 0.5 boundary itself renders dark.
func lightText(normalized float64) bool {
	return normalized > 0.5
}

func truncateName(name string) string {
	if len(name) > maxLabelLen {
		return name[:maxLabelLen]
	}
	return name
}

// heatGrid adapts the normalized matrix to gonum's GridXYZ. Matrix row 0
// is drawn at the top, matching the document's reading order.
type heatGrid struct {
	vals [][]float64
}

func (g heatGrid) Dims() (c, r int)   { return len(g.vals[0]), len(g.vals) }
func (g heatGrid) Z(c, r int) float64 { return g.vals[len(g.vals)-1-r][c] }
func (g heatGrid) X(c int) float64    { return float64(c) }
func (g heatGrid) Y(r int) float64    { return float64(r) }

// PerformanceHeatmap renders performance_heatmap.png: the normalized
// metric grid with a diverging color scale, a colorbar, and every cell
// annotated with its original value.
func PerformanceHeatmap(doc *report.Document, dir string) error {
	matrix := metricMatrix(doc.Tests)
	normalized := normalizeColumns(matrix)
	rows := len(matrix)
	cols := len(heatmapMetrics)

	colors := moreland.SmoothBlueRed()
	colors.SetMin(0)
	colors.SetMax(1)

	hm := plotter.NewHeatMap(heatGrid{vals: normalized}, colors.Palette(255))
	hm.Min = 0
	hm.Max = 1

	p := plot.New()
	p.Title.Text = "Performance Benchmarks - Normalized Heatmap"
	p.X.Label.Text = "Metric"
	p.Y.Label.Text = "Test Scenario"
	p.Add(hm)
	p.NominalX(heatmapMetrics...)

	names := make([]string, rows)
	for i, t := range doc.Tests {
		names[rows-1-i] = truncateName(t.Name)
	}
	p.NominalY(names...)

	annotations, err := cellLabels(matrix, normalized)
	if err != nil {
		return fmt.Errorf("failed to create cell labels: %w", err)
	}
	p.Add(annotations)

	p.X.Min = -0.5
	p.X.Max = float64(cols) - 0.5
	p.Y.Min = -0.5
	p.Y.Max = float64(rows) - 0.5

	// colorbar on its own axes, composed to the right of the grid
	cb := plot.New()
	cb.HideX()
	cb.Y.Label.Text = "Normalized Value (0-1)"
	bar := &plotter.ColorBar{ColorMap: colors}
	bar.Vertical = true
	cb.Add(bar)

	const gridWidth = 10 * vg.Inch
	const barWidth = 2 * vg.Inch
	height := vg.Length(math.Max(8, float64(rows)*0.5)) * vg.Inch

	img := vgimg.New(gridWidth+barWidth, height)
	dc := draw.New(img)
	p.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	cb.Draw(draw.Crop(dc, gridWidth, 0, 0, 0))

	path := filepath.Join(dir, "performance_heatmap.png")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	fmt.Printf("✓ Saved: %s\n", path)
	return nil
}

// cellLabels annotates every cell with its original (non-normalized)
// value: "k" for the pre-divided RPS column, "ms" for the latency columns.
// Text color follows the contrast rule against the cell background.
func cellLabels(matrix, normalized [][]float64) (*plotter.Labels, error) {
	rows := len(matrix)
	cols := len(heatmapMetrics)

	xys := make(plotter.XYs, 0, rows*cols)
	texts := make([]string, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(rows - 1 - r)})
			unit := "ms"
			if c == 0 {
				unit = "k"
			}
			texts = append(texts, fmt.Sprintf("%.1f%s", matrix[r][c], unit))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}

	i := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			style := &labels.TextStyle[i]
			style.XAlign = text.XCenter
			style.YAlign = text.YCenter
			style.Font.Size = vg.Points(8)
			if lightText(normalized[r][c]) {
				style.Color = color.White
			} else {
				style.Color = color.Black
			}
			i++
		}
	}
	return labels, nil
}
