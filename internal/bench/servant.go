package bench

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/probench/probench/internal/registry"
	"github.com/probench/probench/internal/report"
	"github.com/probench/probench/internal/runner"
	"github.com/probench/probench/pkg/probe"
)

// servant executes one worker's share of a load run.
//
// It keeps up to `simultaneous` probe invocations in flight at all times: as
// soon as one completes the next starts, while total starts never exceed the
// share. Probe errors are recorded and count toward the share; they never
// stop the servant.
type servant struct {
	worker       int
	probes       []registry.Probe
	share        int
	simultaneous int
	policy       SelectionPolicy
	params       *probe.Params
}

// servantResult is the message a servant sends the Master on termination.
type servantResult struct {
	worker  int
	records []report.Record
	err     error
}

func (s *servant) run(ctx context.Context, ackCh chan<- int, progressCh chan<- int, resultCh chan<- servantResult) {
	defer func() {
		if r := recover(); r != nil {
			resultCh <- servantResult{
				worker: s.worker,
				err:    fmt.Errorf("worker panicked: %v", r),
			}
		}
	}()

	ackCh <- s.worker

	next := s.selector()
	inflight := make(chan struct{}, s.simultaneous)

	var wg sync.WaitGroup
	var mu sync.Mutex
	records := make([]report.Record, 0, s.share)

	for i := 0; i < s.share; i++ {
		// Stop issuing new invocations once the run is abandoned; the
		// Master treats the short record set as a failed run.
		if ctx.Err() != nil {
			break
		}

		inflight <- struct{}{}
		p := next()

		wg.Add(1)
		go func(p registry.Probe) {
			defer wg.Done()
			defer func() { <-inflight }()

			rec := runner.Invoke(ctx, p, s.params)

			mu.Lock()
			records = append(records, rec)
			mu.Unlock()

			progressCh <- 1
		}(p)
	}

	wg.Wait()
	resultCh <- servantResult{worker: s.worker, records: records}
}

// selector returns the per-invocation probe chooser. Round-robin walks the
// filtered list so that within this servant no two probes' invocation
// counts differ by more than 1.
func (s *servant) selector() func() registry.Probe {
	switch s.policy {
	case PolicyRandom:
		return func() registry.Probe {
			return s.probes[rand.IntN(len(s.probes))]
		}
	default:
		i := 0
		return func() registry.Probe {
			p := s.probes[i%len(s.probes)]
			i++
			return p
		}
	}
}
