package report

import (
	"sort"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Latency percentiles come from an HDR histogram covering 1 microsecond to
// 1 hour at 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// LatencyPercentiles is the overall latency distribution of a benchmark run.
type LatencyPercentiles struct {
	P50 time.Duration `json:"p50"`
	P90 time.Duration `json:"p90"`
	P95 time.Duration `json:"p95"`
	P99 time.Duration `json:"p99"`
}

// Benchmark is the aggregate of a load run: per-probe statistics merged
// from every worker's records, an overall latency distribution, and the
// run's wall-clock elapsed time.
type Benchmark struct {
	Stats       map[string]ProbeStats `json:"stats"`
	Percentiles LatencyPercentiles    `json:"percentiles"`
	Total       int                   `json:"total"`
	Errors      int                   `json:"errors"`
	Elapsed     time.Duration         `json:"elapsed"`
}

// NewBenchmark merges the records of all workers into a benchmark report.
// Records may arrive in any order; the result depends only on their
// multiset.
func NewBenchmark(records []Record, elapsed time.Duration) *Benchmark {
	hist := hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs)
	errCount := 0

	for _, rec := range records {
		micros := rec.Latency.Microseconds()
		if micros < histogramMin {
			micros = histogramMin
		}
		if micros > histogramMax {
			micros = histogramMax
		}
		hist.RecordValue(micros)

		if rec.Failed() {
			errCount++
		}
	}

	return &Benchmark{
		Stats: Aggregate(records),
		Percentiles: LatencyPercentiles{
			P50: time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
			P90: time.Duration(hist.ValueAtQuantile(90)) * time.Microsecond,
			P95: time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond,
			P99: time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
		},
		Total:   len(records),
		Errors:  errCount,
		Elapsed: elapsed,
	}
}

// Throughput returns completed invocations per second over the whole run.
func (b *Benchmark) Throughput() float64 {
	if b.Elapsed <= 0 {
		return 0
	}
	return float64(b.Total) / b.Elapsed.Seconds()
}

// ProbeNames returns the probe names present in the report, sorted.
func (b *Benchmark) ProbeNames() []string {
	names := make([]string, 0, len(b.Stats))
	for name := range b.Stats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
