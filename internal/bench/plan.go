// Package bench runs probes repeatedly under controlled concurrency and
// merges the per-invocation results into a benchmark report.
//
// A benchmark run has one Master and `threads` servant workers. The Master
// partitions the iteration budget, spawns the servants, accumulates their
// progress, and aggregates their records. Each servant keeps up to
// `simultaneous` probe invocations in flight until its share is exhausted.
package bench

import (
	"github.com/probench/probench/internal/registry"
)

// SelectionPolicy decides which probe a servant invokes next.
type SelectionPolicy string

const (
	// PolicyRoundRobin cycles through the filtered probe list so that every
	// probe receives an equal or near-equal share of the invocations. This
	// is the default.
	PolicyRoundRobin SelectionPolicy = "round-robin"

	// PolicyRandom picks a probe uniformly at random per invocation.
	PolicyRandom SelectionPolicy = "random"
)

// Plan is the work assignment for a load run.
type Plan struct {
	// Count is the total number of probe invocations across all workers.
	Count int

	// Threads is the number of parallel workers.
	Threads int

	// Simultaneous is the number of concurrently in-flight invocations
	// each worker maintains.
	Simultaneous int

	// Filter selects which probes participate.
	Filter registry.Filter

	// Policy is the probe selection policy. Empty means round-robin.
	Policy SelectionPolicy
}

// Validate checks the plan's invariants.
func (p *Plan) Validate() error {
	if p.Count < 1 {
		return &ValidationError{Field: "count", Message: "count must be >= 1"}
	}
	if p.Threads < 1 {
		return &ValidationError{Field: "threads", Message: "threads must be >= 1"}
	}
	if p.Simultaneous < 1 {
		return &ValidationError{Field: "simultaneous", Message: "simultaneous must be >= 1"}
	}
	switch p.Policy {
	case "", PolicyRoundRobin, PolicyRandom:
	default:
		return &ValidationError{Field: "policy", Message: "unknown selection policy: " + string(p.Policy)}
	}
	return nil
}

// Shares partitions Count across Threads workers. The shares always sum to
// Count exactly; the remainder goes to the first Count mod Threads workers,
// one extra each, so no two shares differ by more than 1.
func (p *Plan) Shares() []int {
	base := p.Count / p.Threads
	rem := p.Count % p.Threads

	shares := make([]int, p.Threads)
	for i := range shares {
		shares[i] = base
		if i < rem {
			shares[i]++
		}
	}
	return shares
}

// ValidationError represents a plan validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error on field '" + e.Field + "': " + e.Message
}
