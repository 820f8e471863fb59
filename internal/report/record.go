// Package report defines invocation records and aggregates them into
// validation and benchmark reports.
package report

import "time"

// Record is one completed probe invocation. It is immutable once created:
// executors produce exactly one Record per invocation attempt and the
// aggregator only reads them.
type Record struct {
	// Probe is the probe name, used for grouping and labeling.
	Probe string

	// Start is the wall-clock time the invocation began.
	Start time.Time

	// Latency is the elapsed time of the invocation.
	Latency time.Duration

	// Err is the captured failure, or nil on success. Failures are never
	// re-thrown; they surface only in aggregate form.
	Err error
}

// Failed reports whether the invocation captured an error.
func (r Record) Failed() bool {
	return r.Err != nil
}

// Validation is the aggregate of a single-pass run: one record per selected
// probe, in discovery order.
type Validation struct {
	Records []Record
	Elapsed time.Duration
}

// Failed reports whether any probe in the run captured an error. The batch
// is considered failed iff at least one record carries an error.
func (v *Validation) Failed() bool {
	for _, rec := range v.Records {
		if rec.Failed() {
			return true
		}
	}
	return false
}

// Failures returns the records that captured an error, in run order.
func (v *Validation) Failures() []Record {
	var out []Record
	for _, rec := range v.Records {
		if rec.Failed() {
			out = append(out, rec)
		}
	}
	return out
}
