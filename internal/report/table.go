package report

import (
	"fmt"
	"io"
	"time"

	"github.com/iliyamo/reservation-bench/internal/bench"
)

// WriteTable renders summaries as a markdown-style table, one row per
// run, suitable for pasting straight into a comparison report.
func WriteTable(w io.Writer, summaries []bench.Summary) {
	fmt.Fprintln(w, "| Users | Isolation Level      | Successful | Failed | Mean Latency |")
	fmt.Fprintln(w, "|-------|----------------------|------------|--------|--------------|")
	for _, s := range summaries {
		fmt.Fprintf(w, "| %5d | %-20s | %10d | %6d | %9.2f ms |\n",
			s.Users, s.Isolation, s.Successes, s.Failures, millis(s.MeanLatency))
	}
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
