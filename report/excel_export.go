package report

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const resultsSheet = "Benchmark Results"

// ExportExcel writes results.xlsx into dir, one row per test in document
// order.
func ExportExcel(doc *Document, dir string) error {
	path := filepath.Join(dir, "results.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(resultsSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	headers := []string{
		"Test", "RPS", "Avg Latency (ms)",
		"p50 (ms)", "p90 (ms)", "p99 (ms)", "Errors",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(resultsSheet, cell, header)
		f.SetCellStyle(resultsSheet, cell, cell, headerStyle)
	}

	for rowIdx, t := range doc.Tests {
		row := rowIdx + 2
		f.SetCellValue(resultsSheet, fmt.Sprintf("A%d", row), t.Name)
		f.SetCellValue(resultsSheet, fmt.Sprintf("B%d", row), t.RequestsPerSecond)
		f.SetCellValue(resultsSheet, fmt.Sprintf("C%d", row), t.AvgLatencyMs)
		f.SetCellValue(resultsSheet, fmt.Sprintf("D%d", row), t.P50LatencyMs)
		f.SetCellValue(resultsSheet, fmt.Sprintf("E%d", row), t.P90LatencyMs)
		f.SetCellValue(resultsSheet, fmt.Sprintf("F%d", row), t.P99LatencyMs)
		f.SetCellValue(resultsSheet, fmt.Sprintf("G%d", row), t.Errors)
	}

	for i := range headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(resultsSheet, col, col, 16)
	}
	f.SetColWidth(resultsSheet, "A", "A", 42)

	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}

	fmt.Printf("✓ Saved: %s\n", path)
	return nil
}
