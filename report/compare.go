package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Comparison is the measured change between a baseline and a current run
// of the same test, in percent.
type Comparison struct {
	Name        string
	Baseline    TestResult
	Current     TestResult
	RPSChange   float64
	AvgChange   float64
	P99Change   float64
	Improvement bool
}

// regression thresholds, in percent
const (
	rpsRegression = -5
	avgRegression = 5
)

// Compare matches tests by name across two documents and computes percent
// changes. Tests present in only one of the documents are skipped. Result
// order follows the current document.
func Compare(baseline, current *Document) []Comparison {
	base := make(map[string]TestResult, len(baseline.Tests))
	for _, t := range baseline.Tests {
		base[t.Name] = t
	}

	comparisons := make([]Comparison, 0, len(current.Tests))
	for _, cur := range current.Tests {
		b, ok := base[cur.Name]
		if !ok {
			continue
		}

		c := Comparison{Name: cur.Name, Baseline: b, Current: cur}
		if b.RequestsPerSecond > 0 {
			c.RPSChange = (cur.RequestsPerSecond - b.RequestsPerSecond) / b.RequestsPerSecond * 100
		}
		if b.AvgLatencyMs > 0 {
			c.AvgChange = (cur.AvgLatencyMs - b.AvgLatencyMs) / b.AvgLatencyMs * 100
		}
		if b.P99LatencyMs > 0 {
			c.P99Change = (cur.P99LatencyMs - b.P99LatencyMs) / b.P99LatencyMs * 100
		}

		// more throughput or less latency counts as an improvement
		c.Improvement = c.RPSChange > 0 || c.AvgChange < 0

		comparisons = append(comparisons, c)
	}

	return comparisons
}

// WriteComparison writes comparison.txt into dir and prints a one-line
// verdict with the improvement and regression counts.
func WriteComparison(comparisons []Comparison, baseline, current *Document, dir string) error {
	path := filepath.Join(dir, "comparison.txt")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create comparison file: %w", err)
	}
	defer f.Close()

	banner := strings.Repeat("=", bannerWidth)
	sep := strings.Repeat("-", bannerWidth)

	fmt.Fprintln(f, banner)
	fmt.Fprintln(f, "BENCHMARK COMPARISON")
	fmt.Fprintln(f, banner)
	fmt.Fprintf(f, "Baseline: %s\n", baseline.Timestamp)
	fmt.Fprintf(f, "Current:  %s\n", current.Timestamp)
	fmt.Fprintln(f)

	fmt.Fprintf(f, "%-42s | %-10s | %-10s | %-10s | %s\n", "Test", "RPS", "Avg Lat", "p99", "Status")
	fmt.Fprintln(f, sep)

	improvements := 0
	regressions := 0
	for _, c := range comparisons {
		status := "no change"
		switch {
		case c.Improvement:
			status = "improved"
			improvements++
		case c.RPSChange < rpsRegression || c.AvgChange > avgRegression:
			status = "regressed"
			regressions++
		}

		fmt.Fprintf(f, "%-42s | %+9.2f%% | %+9.2f%% | %+9.2f%% | %s\n",
			c.Name, c.RPSChange, c.AvgChange, c.P99Change, status)
	}

	fmt.Fprintln(f, sep)
	fmt.Fprintf(f, "Compared tests: %d, improvements: %d, regressions: %d\n",
		len(comparisons), improvements, regressions)

	fmt.Printf("Compared %d tests against baseline: %d improved, %d regressed\n",
		len(comparisons), improvements, regressions)
	fmt.Printf("✓ Saved: %s\n", path)
	return nil
}
