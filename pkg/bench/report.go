package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// Report is the immutable reduction of one benchmark run. Set once by the
// runner, never changed. For any run it holds that fastest <= average <=
// slowest; the average may round down because of integer division.
type Report struct {
	fastest    time.Duration
	slowest    time.Duration
	average    time.Duration
	iterations int
}

// Fastest returns the minimum per-iteration sample.
func (r *Report) Fastest() time.Duration { return r.fastest }

// Slowest returns the maximum per-iteration sample.
func (r *Report) Slowest() time.Duration { return r.slowest }

// Average returns the truncating mean over every sample.
func (r *Report) Average() time.Duration { return r.average }

// Iterations returns the number of samples behind the reduction.
func (r *Report) Iterations() int { return r.iterations }

// String renders the summary block. Downstream tooling parses this layout;
// keep it stable.
func (r *Report) String() string {
	return fmt.Sprintf("Slowest: %d ns\nFastest: %d ns\nAverage: %d ns/iter",
		r.slowest.Nanoseconds(), r.fastest.Nanoseconds(), r.average.Nanoseconds())
}

// Write writes the summary block followed by a newline.
func (r *Report) Write(w io.Writer) error {
	_, err := fmt.Fprintln(w, r.String())
	return err
}

// Print writes the summary block to stdout.
func (r *Report) Print() {
	fmt.Println(r.String())
}

// WriteTable renders the report as a small text table for interactive use.
// The String format remains the parseable contract.
func (r *Report) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.Header("Metric", "Value")
	table.Append("Slowest", fmt.Sprintf("%d ns", r.slowest.Nanoseconds()))
	table.Append("Fastest", fmt.Sprintf("%d ns", r.fastest.Nanoseconds()))
	table.Append("Average", fmt.Sprintf("%d ns/iter", r.average.Nanoseconds()))
	table.Append("Iterations", fmt.Sprintf("%d", r.iterations))
	table.Render()
}
