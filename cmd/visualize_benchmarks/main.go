// Command visualize_benchmarks renders benchmark result JSON into charts
// and a text summary.
//
// Usage:
//
//	visualize_benchmarks [-o dir] [-baseline file] [-excel] benchmark-results.json
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"benchviz/charts"
	"benchviz/report"
)

func main() {
	var (
		outputDir    string
		baselineFile string
		excelExport  bool
	)
	flag.StringVar(&outputDir, "o", "./graphs", "output directory for graphs")
	flag.StringVar(&outputDir, "output", "./graphs", "output directory for graphs")
	flag.StringVar(&baselineFile, "baseline", "", "baseline JSON report to compare against (optional)")
	flag.BoolVar(&excelExport, "excel", false, "also export results.xlsx")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <json_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	jsonFile := flag.Arg(0)

	// fail before touching the output directory
	if _, err := os.Stat(jsonFile); err != nil {
		log.Fatalf("Error: file not found: %s", jsonFile)
	}

	fmt.Printf("Loading benchmark results from: %s\n", jsonFile)
	doc, err := report.Load(jsonFile)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Fatalf("Error: failed to create output directory %s: %v", outputDir, err)
	}

	fmt.Printf("Found %d test results\n", len(doc.Tests))
	fmt.Printf("Generating visualizations in: %s\n\n", outputDir)

	if err := charts.RPSComparison(doc, outputDir); err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := charts.LatencyPercentiles(doc, outputDir); err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := charts.PerformanceHeatmap(doc, outputDir); err != nil {
		log.Fatalf("Error: %v", err)
	}
	if err := report.WriteSummary(doc, outputDir); err != nil {
		log.Fatalf("Error: %v", err)
	}

	if excelExport {
		if err := report.ExportExcel(doc, outputDir); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	if baselineFile != "" {
		baseline, err := report.Load(baselineFile)
		if err != nil {
			log.Fatalf("Error: failed to load baseline: %v", err)
		}
		comparisons := report.Compare(baseline, doc)
		if err := report.WriteComparison(comparisons, baseline, doc, outputDir); err != nil {
			log.Fatalf("Error: %v", err)
		}
	}

	banner := strings.Repeat("=", 70)
	fmt.Println()
	fmt.Println(banner)
	fmt.Println("✓ All visualizations generated successfully!")
	fmt.Println(banner)
	fmt.Printf("\nView results in: %s\n", outputDir)
}
