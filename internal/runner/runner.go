// Package runner executes every selected probe exactly once and collects a
// validation report.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/probench/probench/internal/registry"
	"github.com/probench/probench/internal/report"
	"github.com/probench/probench/pkg/probe"
)

// Run invokes each probe once, in discovery order, with the shared Params.
//
// A probe failure is captured into its record and never aborts the batch:
// every probe is attempted regardless of how its siblings fared. Params is
// treated as read-only for the whole run. The caller inspects the report
// afterward and decides pass/fail.
func Run(ctx context.Context, probes []registry.Probe, params *probe.Params) *report.Validation {
	start := time.Now()
	records := make([]report.Record, 0, len(probes))

	for _, p := range probes {
		records = append(records, Invoke(ctx, p, params))
	}

	return &report.Validation{
		Records: records,
		Elapsed: time.Since(start),
	}
}

// Invoke runs a single probe, converting a panic into a captured error so
// one misbehaving probe cannot take down its host. Exactly one record is
// produced per invocation attempt.
func Invoke(ctx context.Context, p registry.Probe, params *probe.Params) (rec report.Record) {
	rec.Probe = p.Name
	rec.Start = time.Now()

	defer func() {
		rec.Latency = time.Since(rec.Start)
		if r := recover(); r != nil {
			rec.Err = fmt.Errorf("probe %s panicked: %v", p.Name, r)
		}
	}()

	rec.Err = p.Run(ctx, params)
	return rec
}
