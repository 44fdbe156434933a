package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	baseline := &Document{
		Timestamp: "2025-11-01T10:00:00Z",
		Tests: []TestResult{
			{Name: "create", RequestsPerSecond: 1000, AvgLatencyMs: 10, P99LatencyMs: 40},
			{Name: "removed", RequestsPerSecond: 5},
		},
	}
	current := &Document{
		Timestamp: "2025-11-02T10:00:00Z",
		Tests: []TestResult{
			{Name: "create", RequestsPerSecond: 2000, AvgLatencyMs: 5, P99LatencyMs: 40},
			{Name: "added", RequestsPerSecond: 7},
		},
	}

	comparisons := Compare(baseline, current)
	require.Len(t, comparisons, 1) // only tests present in both documents

	c := comparisons[0]
	assert.Equal(t, "create", c.Name)
	assert.InDelta(t, 100, c.RPSChange, 1e-9)
	assert.InDelta(t, -50, c.AvgChange, 1e-9)
	assert.Zero(t, c.P99Change)
	assert.True(t, c.Improvement)
}

func TestCompareIdenticalDocuments(t *testing.T) {
	doc := &Document{
		Tests: []TestResult{
			{Name: "a", RequestsPerSecond: 1000, AvgLatencyMs: 10, P99LatencyMs: 40},
			{Name: "b", RequestsPerSecond: 2000, AvgLatencyMs: 3, P99LatencyMs: 9},
		},
	}

	comparisons := Compare(doc, doc)
	require.Len(t, comparisons, 2)
	for _, c := range comparisons {
		assert.Zero(t, c.RPSChange)
		assert.Zero(t, c.AvgChange)
		assert.Zero(t, c.P99Change)
		assert.False(t, c.Improvement)
	}
}

func TestCompareZeroBaselineSkipsRatio(t *testing.T) {
	baseline := &Document{Tests: []TestResult{{Name: "a"}}}
	current := &Document{Tests: []TestResult{{Name: "a", RequestsPerSecond: 100, AvgLatencyMs: 2}}}

	comparisons := Compare(baseline, current)
	require.Len(t, comparisons, 1)

	// no baseline value means no percentage, not a division by zero
	assert.Zero(t, comparisons[0].RPSChange)
	assert.Zero(t, comparisons[0].AvgChange)
}

func TestWriteComparison(t *testing.T) {
	dir := t.TempDir()
	baseline := &Document{
		Timestamp: "2025-11-01T10:00:00Z",
		Tests:     []TestResult{{Name: "create", RequestsPerSecond: 1000, AvgLatencyMs: 10}},
	}
	current := &Document{
		Timestamp: "2025-11-02T10:00:00Z",
		Tests:     []TestResult{{Name: "create", RequestsPerSecond: 2000, AvgLatencyMs: 10}},
	}

	comparisons := Compare(baseline, current)
	require.NoError(t, WriteComparison(comparisons, baseline, current, dir))

	data, err := os.ReadFile(filepath.Join(dir, "comparison.txt"))
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "BENCHMARK COMPARISON")
	assert.Contains(t, out, "Baseline: 2025-11-01T10:00:00Z")
	assert.Contains(t, out, "Current:  2025-11-02T10:00:00Z")
	assert.Contains(t, out, "create")
	assert.Contains(t, out, "+100.00%")
	assert.Contains(t, out, "improved")
	assert.Contains(t, out, "improvements: 1, regressions: 0")
}
