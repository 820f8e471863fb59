package runner_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/probench/probench/internal/registry"
	"github.com/probench/probench/internal/runner"
	"github.com/probench/probench/pkg/probe"
)

func succeed(ctx context.Context, p *probe.Params) error { return nil }

func fail(ctx context.Context, p *probe.Params) error { return errors.New("always fails") }

func TestRun_OneRecordPerProbeInOrder(t *testing.T) {
	var probes []registry.Probe
	for i := 0; i < 5; i++ {
		probes = append(probes, registry.Probe{
			Name: fmt.Sprintf("test_%d", i),
			Run:  succeed,
		})
	}

	v := runner.Run(context.Background(), probes, &probe.Params{})

	if len(v.Records) != len(probes) {
		t.Fatalf("len(Records) = %d, want %d", len(v.Records), len(probes))
	}
	for i, r := range v.Records {
		if r.Probe != probes[i].Name {
			t.Errorf("Records[%d].Probe = %q, want %q", i, r.Probe, probes[i].Name)
		}
		if r.Failed() {
			t.Errorf("Records[%d] unexpectedly failed: %v", i, r.Err)
		}
	}
	if v.Failed() {
		t.Error("report Failed() = true with no failing probes")
	}
}

func TestRun_FailureIsolation(t *testing.T) {
	// One always-failing probe among nine that succeed: all ten must be
	// attempted, with exactly one captured error.
	var probes []registry.Probe
	for i := 0; i < 9; i++ {
		probes = append(probes, registry.Probe{
			Name: fmt.Sprintf("test_ok_%d", i),
			Run:  succeed,
		})
	}
	probes = append(probes, registry.Probe{Name: "test_broken", Run: fail})

	v := runner.Run(context.Background(), probes, &probe.Params{})

	if len(v.Records) != 10 {
		t.Fatalf("len(Records) = %d, want 10", len(v.Records))
	}

	failures := v.Failures()
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	if failures[0].Probe != "test_broken" {
		t.Errorf("failed probe = %q, want test_broken", failures[0].Probe)
	}
	if !v.Failed() {
		t.Error("report Failed() = false with a failing probe")
	}
}

func TestRun_ErrorFieldMatchesProbeOutcome(t *testing.T) {
	probes := []registry.Probe{
		{Name: "test_ok", Run: succeed},
		{Name: "test_bad", Run: fail},
	}

	v := runner.Run(context.Background(), probes, &probe.Params{})

	if v.Records[0].Err != nil {
		t.Errorf("test_ok captured error %v, want nil", v.Records[0].Err)
	}
	if v.Records[1].Err == nil {
		t.Error("test_bad captured no error")
	}
}

func TestInvoke_RecoversPanic(t *testing.T) {
	p := registry.Probe{
		Name: "test_panics",
		Run: func(ctx context.Context, p *probe.Params) error {
			panic("kaboom")
		},
	}

	rec := runner.Invoke(context.Background(), p, &probe.Params{})

	if rec.Err == nil {
		t.Fatal("panicking probe produced no captured error")
	}
	if rec.Probe != "test_panics" {
		t.Errorf("record probe = %q, want test_panics", rec.Probe)
	}
}

func TestRun_PanicDoesNotAbortBatch(t *testing.T) {
	probes := []registry.Probe{
		{Name: "test_panics", Run: func(ctx context.Context, p *probe.Params) error { panic("kaboom") }},
		{Name: "test_after", Run: succeed},
	}

	v := runner.Run(context.Background(), probes, &probe.Params{})

	if len(v.Records) != 2 {
		t.Fatalf("len(Records) = %d, want 2", len(v.Records))
	}
	if v.Records[1].Failed() {
		t.Error("probe after the panicking one did not run cleanly")
	}
}
