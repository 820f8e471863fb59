package report

import (
	"math"
	"sort"
	"time"
)

// ProbeStats holds per-probe latency statistics over a set of invocation
// records.
type ProbeStats struct {
	Count  int           `json:"count"`
	Mean   time.Duration `json:"mean"`
	Median time.Duration `json:"median"`
	StdDev time.Duration `json:"stdDev"`
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Errors int           `json:"errors"`
}

// Aggregate groups records by probe name and computes per-probe statistics.
//
// The result is deterministic for a given multiset of records regardless of
// arrival order, and no record is dropped or duplicated: the group counts
// always sum to len(records).
func Aggregate(records []Record) map[string]ProbeStats {
	latencies := make(map[string][]time.Duration)
	errors := make(map[string]int)

	for _, rec := range records {
		latencies[rec.Probe] = append(latencies[rec.Probe], rec.Latency)
		if rec.Failed() {
			errors[rec.Probe]++
		}
	}

	stats := make(map[string]ProbeStats, len(latencies))
	for name, samples := range latencies {
		stats[name] = computeStats(samples, errors[name])
	}
	return stats
}

func computeStats(samples []time.Duration, errCount int) ProbeStats {
	sorted := make([]time.Duration, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum time.Duration
	for _, s := range sorted {
		sum += s
	}
	mean := sum / time.Duration(len(sorted))

	// Population standard deviation.
	var sqSum float64
	for _, s := range sorted {
		d := float64(s - mean)
		sqSum += d * d
	}
	stdDev := time.Duration(math.Sqrt(sqSum / float64(len(sorted))))

	return ProbeStats{
		Count:  len(sorted),
		Mean:   mean,
		Median: median(sorted),
		StdDev: stdDev,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Errors: errCount,
	}
}

// median expects sorted input. For an even sample count it averages the two
// middle elements.
func median(sorted []time.Duration) time.Duration {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
