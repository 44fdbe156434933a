// Package report holds the benchmark results document model and the
// text/Excel report writers derived from it.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrNoTests means the document parsed but contains no test results.
var ErrNoTests = errors.New("no test results found")

// TestResult is one named benchmark scenario's measurements.
type TestResult struct {
	Name              string
	RequestsPerSecond float64
	AvgLatencyMs      float64
	P50LatencyMs      float64
	P90LatencyMs      float64
	P99LatencyMs      float64
	Errors            string
}

// Document is a parsed benchmark results file. Tests keep the order they
// had in the source file.
type Document struct {
	Timestamp   string
	APIURL      string
	RedirectURL string
	Tests       []TestResult
}

// flexFloat accepts both JSON numbers and numeric strings. Benchmark
// runners disagree on which one requests_per_second is.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("not a number: %q", s)
	}
	*f = flexFloat(v)
	return nil
}

// opaque preserves the source token for display-only fields. The errors
// field may be a count or a string and is never validated.
type opaque string

func (o *opaque) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = opaque(s)
		return nil
	}
	*o = opaque(string(data))
	return nil
}

// documentJSON mirrors the wire format of benchmark-results.json.
type documentJSON struct {
	Timestamp   string           `json:"timestamp"`
	APIURL      string           `json:"api_url"`
	RedirectURL string           `json:"redirect_url"`
	Tests       []testResultJSON `json:"tests"`
}

type testResultJSON struct {
	Name              string    `json:"name"`
	RequestsPerSecond flexFloat `json:"requests_per_second"`
	AvgLatencyMs      flexFloat `json:"avg_latency_ms"`
	P50LatencyMs      flexFloat `json:"p50_latency_ms"`
	P90LatencyMs      flexFloat `json:"p90_latency_ms"`
	P99LatencyMs      flexFloat `json:"p99_latency_ms"`
	Errors            opaque    `json:"errors"`
}

func (d *documentJSON) toDocument() *Document {
	tests := make([]TestResult, len(d.Tests))
	for i, t := range d.Tests {
		tests[i] = TestResult{
			Name:              t.Name,
			RequestsPerSecond: float64(t.RequestsPerSecond),
			AvgLatencyMs:      float64(t.AvgLatencyMs),
			P50LatencyMs:      float64(t.P50LatencyMs),
			P90LatencyMs:      float64(t.P90LatencyMs),
			P99LatencyMs:      float64(t.P99LatencyMs),
			Errors:            string(t.Errors),
		}
	}

	return &Document{
		Timestamp:   d.Timestamp,
		APIURL:      d.APIURL,
		RedirectURL: d.RedirectURL,
		Tests:       tests,
	}
}

// Load reads and parses a benchmark results file. A missing file surfaces
// the os error (it names the path), bad JSON is wrapped as a parse error,
// and a document without tests fails with ErrNoTests.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc documentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if len(doc.Tests) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoTests)
	}

	return doc.toDocument(), nil
}
