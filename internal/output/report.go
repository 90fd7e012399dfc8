package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lockbench/latplot/internal/report"
)

// PrintSummary outputs a human-readable run summary.
func PrintSummary(w io.Writer, result *report.Result) {
	fmt.Fprintf(w, "\n--- Latency Report %s ---\n", result.RunID)
	for _, m := range result.Metrics {
		fmt.Fprintf(w, "\n%s -> %s\n", m.Metric, m.Image)
		for _, s := range m.Series {
			sum := s.Summary
			fmt.Fprintf(
				w,
				"  %-8s count=%d min=%dns mean=%dns p50=%dns p90=%dns p99=%dns max=%dns",
				s.Label,
				sum.Count,
				sum.Min,
				sum.Mean,
				sum.P50,
				sum.P90,
				sum.P99,
				sum.Max,
			)
			if s.Dropped > 0 {
				fmt.Fprintf(w, " (off-chart=%d)", s.Dropped)
			}
			fmt.Fprintln(w)
		}
	}
}

// PrintJSONSummary outputs a JSON-formatted run summary.
func PrintJSONSummary(w io.Writer, result *report.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
