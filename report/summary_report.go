package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const bannerWidth = 70

// TopPerformers returns the n highest-throughput tests. The sort is stable,
// so tests with equal RPS keep their document order across runs.
func TopPerformers(tests []TestResult, n int) []TestResult {
	ranked := make([]TestResult, len(tests))
	copy(ranked, tests)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RequestsPerSecond > ranked[j].RequestsPerSecond
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// WriteSummary renders summary.txt into dir: a ranked top-performers
// section followed by detailed results in original document order.
func WriteSummary(doc *Document, dir string) error {
	path := filepath.Join(dir, "summary.txt")

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	banner := strings.Repeat("=", bannerWidth)
	sep := strings.Repeat("-", bannerWidth)
	pr := message.NewPrinter(language.English)

	fmt.Fprintln(f, banner)
	fmt.Fprintln(f, "PERFORMANCE BENCHMARK SUMMARY")
	fmt.Fprintln(f, banner)
	fmt.Fprintf(f, "Timestamp: %s\n", doc.Timestamp)
	fmt.Fprintf(f, "API URL: %s\n", doc.APIURL)
	fmt.Fprintf(f, "Redirect URL: %s\n", doc.RedirectURL)
	fmt.Fprintln(f, banner)
	fmt.Fprintln(f)

	fmt.Fprintln(f, "TOP PERFORMERS (by RPS):")
	fmt.Fprintln(f, sep)
	for i, t := range TopPerformers(doc.Tests, 3) {
		fmt.Fprintf(f, "%d. %s\n", i+1, t.Name)
		pr.Fprintf(f, "   %.0f requests/second\n\n", t.RequestsPerSecond)
	}

	fmt.Fprintln(f)
	fmt.Fprintln(f, "DETAILED RESULTS:")
	fmt.Fprintln(f, sep)
	for _, t := range doc.Tests {
		fmt.Fprintf(f, "\n%s:\n", t.Name)
		pr.Fprintf(f, "  RPS:         %.0f\n", t.RequestsPerSecond)
		fmt.Fprintf(f, "  Avg Latency: %g ms\n", t.AvgLatencyMs)
		// the p50 field gates all three percentile lines
		if t.P50LatencyMs > 0 {
			fmt.Fprintf(f, "  p50:         %g ms\n", t.P50LatencyMs)
			fmt.Fprintf(f, "  p90:         %g ms\n", t.P90LatencyMs)
			fmt.Fprintf(f, "  p99:         %g ms\n", t.P99LatencyMs)
		}
		fmt.Fprintf(f, "  Errors:      %s\n", t.Errors)
	}

	fmt.Fprintln(f)
	fmt.Fprintln(f, banner)

	fmt.Printf("✓ Saved: %s\n", path)
	return nil
}
