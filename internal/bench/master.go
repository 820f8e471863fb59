package bench

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/probench/probench/internal/registry"
	"github.com/probench/probench/internal/report"
	"github.com/probench/probench/pkg/probe"
)

// State is the Master's lifecycle state.
type State int32

const (
	StateIdle State = iota
	StateDispatching
	StateRunning
	StateCollecting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDispatching:
		return "dispatching"
	case StateRunning:
		return "running"
	case StateCollecting:
		return "collecting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// WorkerFailure reports that a servant terminated abnormally. The run is
// failed as a whole: the Master never redistributes a failed worker's
// remaining share, and a partial benchmark is never returned as success.
type WorkerFailure struct {
	Worker int
	Err    error
}

func (e *WorkerFailure) Error() string {
	return fmt.Sprintf("benchmark worker %d failed: %v", e.Worker, e.Err)
}

func (e *WorkerFailure) Unwrap() error { return e.Err }

// ProgressFunc receives the running total of completed invocations across
// all workers. The Master sums per-worker completion counts itself, so the
// values it delivers never regress and the final value equals the plan's
// Count.
type ProgressFunc func(completed int)

// Master orchestrates a load run: it partitions the iteration budget across
// servant workers, streams their progress to a caller-supplied callback,
// and merges their records into the final benchmark report.
//
// A Master runs once; its state moves Idle -> Dispatching -> Running ->
// Collecting -> Done, or to Failed from any non-Idle state.
type Master struct {
	probes []registry.Probe
	params *probe.Params
	state  atomic.Int32
}

// NewMaster creates a Master over the given probe set. Params must not be
// mutated for the lifetime of the run.
func NewMaster(probes []registry.Probe, params *probe.Params) *Master {
	return &Master{
		probes: probes,
		params: params,
	}
}

// State returns the Master's current state.
func (m *Master) State() State {
	return State(m.state.Load())
}

func (m *Master) setState(s State) {
	m.state.Store(int32(s))
}

func (m *Master) fail(worker int, err error) error {
	m.setState(StateFailed)
	return &WorkerFailure{Worker: worker, Err: err}
}

// Run executes the plan and returns the merged benchmark report.
//
// onProgress may be nil. It is invoked from the Master's goroutine only,
// whenever the aggregate completion count changes.
func (m *Master) Run(ctx context.Context, plan Plan, onProgress ProgressFunc) (*report.Benchmark, error) {
	if m.State() != StateIdle {
		return nil, fmt.Errorf("benchmark master has already run")
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	selected := registry.SelectProbes(m.probes, plan.Filter)
	if len(selected) == 0 {
		return nil, &registry.DiscoveryError{
			Location: "registry",
			Reason:   "no probes match the filter",
		}
	}

	start := time.Now()
	m.setState(StateDispatching)

	shares := plan.Shares()

	// Buffered so servants can always finish without the Master reading:
	// a failed run must not leak worker goroutines blocked on a send.
	ackCh := make(chan int, plan.Threads)
	progressCh := make(chan int, plan.Count)
	resultCh := make(chan servantResult, plan.Threads)

	// The servant context is cancelled once Run returns so that workers
	// still in flight after a failure stop issuing invocations.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for i := 0; i < plan.Threads; i++ {
		s := servant{
			worker:       i,
			probes:       selected,
			share:        shares[i],
			simultaneous: plan.Simultaneous,
			policy:       plan.Policy,
			params:       m.params,
		}
		go s.run(ctx, ackCh, progressCh, resultCh)
	}

	records := make([]report.Record, 0, plan.Count)
	completed := 0
	pending := plan.Threads

	// Dispatching: wait until every worker acknowledges start. Every
	// servant acknowledges exactly once, before any probe work, so this
	// cannot block indefinitely; small shares may finish while we wait.
	for acked := 0; acked < plan.Threads; {
		select {
		case <-ackCh:
			acked++
		case n := <-progressCh:
			completed += n
			if onProgress != nil {
				onProgress(completed)
			}
		case res := <-resultCh:
			if res.err != nil {
				return nil, m.fail(res.worker, res.err)
			}
			records = append(records, res.records...)
			pending--
		}
	}
	m.setState(StateRunning)

	for pending > 0 {
		select {
		case n := <-progressCh:
			completed += n
			if onProgress != nil {
				onProgress(completed)
			}
		case res := <-resultCh:
			if res.err != nil {
				return nil, m.fail(res.worker, res.err)
			}
			records = append(records, res.records...)
			pending--
		}
	}

	m.setState(StateCollecting)

	// Drain progress increments that were buffered behind the final
	// results so the last reported value is exactly the plan count.
	for {
		select {
		case n := <-progressCh:
			completed += n
			if onProgress != nil {
				onProgress(completed)
			}
		default:
			if err := ctx.Err(); err != nil {
				m.setState(StateFailed)
				return nil, err
			}
			if len(records) != plan.Count {
				return nil, m.fail(-1, fmt.Errorf("merged %d records, want %d", len(records), plan.Count))
			}
			bench := report.NewBenchmark(records, time.Since(start))
			m.setState(StateDone)
			return bench, nil
		}
	}
}
