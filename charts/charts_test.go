package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benchviz/report"
)

func sampleDoc() *report.Document {
	return &report.Document{
		Timestamp:   "2025-11-02T10:00:00Z",
		APIURL:      "http://localhost:3000",
		RedirectURL: "http://localhost:3001",
		Tests: []report.TestResult{
			{
				Name:              "API: Create short URL",
				RequestsPerSecond: 12345,
				AvgLatencyMs:      4.2,
				P50LatencyMs:      3.1,
				P90LatencyMs:      8.4,
				P99LatencyMs:      15.7,
				Errors:            "0",
			},
			{
				Name:              strings.Repeat("a very long scenario name ", 4),
				RequestsPerSecond: 48210,
				AvgLatencyMs:      1.1,
				Errors:            "none",
			},
			{
				Name:              "Mixed read/write",
				RequestsPerSecond: 330,
				AvgLatencyMs:      22,
				P50LatencyMs:      18,
				P90LatencyMs:      41,
				P99LatencyMs:      96,
				Errors:            "2",
			},
		},
	}
}

func TestChartArtifacts(t *testing.T) {
	dir := t.TempDir()
	doc := sampleDoc()

	require.NoError(t, RPSComparison(doc, dir))
	require.NoError(t, LatencyPercentiles(doc, dir))
	require.NoError(t, PerformanceHeatmap(doc, dir))

	for _, name := range []string{
		"rps_comparison.png",
		"latency_percentiles.png",
		"performance_heatmap.png",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Positive(t, info.Size(), name)
	}
}

func TestChartArtifactsSingleTest(t *testing.T) {
	dir := t.TempDir()
	doc := &report.Document{
		Tests: []report.TestResult{
			{Name: "lonely", RequestsPerSecond: 100, AvgLatencyMs: 1, Errors: "0"},
		},
	}

	require.NoError(t, RPSComparison(doc, dir))
	require.NoError(t, LatencyPercentiles(doc, dir))
	require.NoError(t, PerformanceHeatmap(doc, dir))
}

func TestChartArtifactsRandomDocuments(t *testing.T) {
	gofakeit.Seed(42)

	for i := 0; i < 3; i++ {
		n := gofakeit.Number(1, 8)
		tests := make([]report.TestResult, n)
		for j := range tests {
			tests[j] = report.TestResult{
				Name:              gofakeit.Sentence(gofakeit.Number(2, 10)),
				RequestsPerSecond: gofakeit.Float64Range(1, 60000),
				AvgLatencyMs:      gofakeit.Float64Range(0.1, 50),
				P50LatencyMs:      gofakeit.Float64Range(0, 50),
				P90LatencyMs:      gofakeit.Float64Range(0, 80),
				P99LatencyMs:      gofakeit.Float64Range(0, 200),
				Errors:            "0",
			}
		}
		doc := &report.Document{Timestamp: "2025-11-02T10:00:00Z", Tests: tests}

		dir := t.TempDir()
		require.NoError(t, RPSComparison(doc, dir))
		require.NoError(t, LatencyPercentiles(doc, dir))
		require.NoError(t, PerformanceHeatmap(doc, dir))
		require.NoError(t, report.WriteSummary(doc, dir))

		for _, name := range []string{
			"rps_comparison.png",
			"latency_percentiles.png",
			"performance_heatmap.png",
			"summary.txt",
		} {
			info, err := os.Stat(filepath.Join(dir, name))
			require.NoError(t, err, name)
			assert.Positive(t, info.Size(), name)
		}
	}
}
