package output

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/probench/probench/internal/report"
)

// Formatter renders reports to a writer.
type Formatter struct {
	w       io.Writer
	scheme  *ColorScheme
	noColor bool
}

// NewFormatter creates a formatter. When noColor is true all styling is
// disabled.
func NewFormatter(w io.Writer, noColor bool) *Formatter {
	scheme := DefaultColorScheme()
	if noColor {
		scheme = NoColorScheme()
	}
	return &Formatter{
		w:       w,
		scheme:  scheme,
		noColor: noColor,
	}
}

// PrintValidation renders a single-pass run: one line per probe in run
// order, then every captured error in full, then a summary line.
func (f *Formatter) PrintValidation(v *report.Validation) {
	for _, rec := range v.Records {
		icon := SuccessIcon(f.noColor)
		if rec.Failed() {
			icon = ErrorIcon(f.noColor)
		}
		fmt.Fprintf(f.w, "%s %s %s\n",
			icon,
			f.scheme.Probe.Sprint(rec.Probe),
			f.scheme.Dim.Sprintf("(%s)", rec.Latency.Round(time.Millisecond)))
	}

	failures := v.Failures()
	if len(failures) > 0 {
		fmt.Fprintln(f.w)
		for _, rec := range failures {
			fmt.Fprintf(f.w, "%s %s: %v\n",
				ErrorIcon(f.noColor), f.scheme.Probe.Sprint(rec.Probe), rec.Err)
		}
	}

	fmt.Fprintln(f.w)
	passed := len(v.Records) - len(failures)
	status := f.scheme.Success
	if len(failures) > 0 {
		status = f.scheme.Error
	}
	fmt.Fprintf(f.w, "%s in %s\n",
		status.Sprintf("%d passed, %d failed", passed, len(failures)),
		f.scheme.Duration.Sprint(v.Elapsed.Round(time.Millisecond)))
}

// PrintBenchmark renders the benchmark report as a per-probe statistics
// table followed by the overall latency distribution.
func (f *Formatter) PrintBenchmark(b *report.Benchmark) {
	tw := tabwriter.NewWriter(f.w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "PROBE\tCOUNT\tMEAN\tMEDIAN\tSTDDEV\tMIN\tMAX\tERRORS")
	for _, name := range b.ProbeNames() {
		s := b.Stats[name]
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
			f.scheme.Probe.Sprint(name),
			s.Count,
			round(s.Mean), round(s.Median), round(s.StdDev),
			round(s.Min), round(s.Max),
			s.Errors)
	}
	tw.Flush()

	fmt.Fprintln(f.w)
	fmt.Fprintf(f.w, "latency  p50 %s  p90 %s  p95 %s  p99 %s\n",
		round(b.Percentiles.P50), round(b.Percentiles.P90),
		round(b.Percentiles.P95), round(b.Percentiles.P99))
	fmt.Fprintf(f.w, "%s invocations, %s errors, %s elapsed (%.1f req/s)\n",
		f.scheme.Highlight.Sprintf("%d", b.Total),
		f.scheme.Error.Sprintf("%d", b.Errors),
		f.scheme.Duration.Sprint(b.Elapsed.Round(time.Millisecond)),
		b.Throughput())
}

// PrintProgress redraws the live progress line.
func (f *Formatter) PrintProgress(completed, total int) {
	fmt.Fprintf(f.w, "\r%s %d/%d", f.scheme.Dim.Sprint("progress"), completed, total)
}

// EndProgress terminates the live progress line.
func (f *Formatter) EndProgress() {
	fmt.Fprintln(f.w)
}

func round(d time.Duration) time.Duration {
	switch {
	case d >= time.Second:
		return d.Round(time.Millisecond)
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond)
	default:
		return d
	}
}
