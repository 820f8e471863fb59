// Package probe defines the contract between the probench engine and
// user-authored probe functions.
//
// A probe is a named, asynchronous, side-effecting check against a running
// backend. The engine knows nothing about what a probe does internally; it
// only invokes the function and records the outcome and elapsed time.
package probe

import (
	"context"
	"time"

	"github.com/probench/probench/internal/httpclient"
)

// Func is a single probe. It exercises the system under test through its
// public interface and returns a non-nil error to signal failure. Probes
// must be safe to invoke concurrently with themselves and with other probes:
// any state they need lives in the (read-only) Params or in the backend.
type Func func(ctx context.Context, p *Params) error

// Params is the shared parameter object handed to every probe invocation.
//
// It is effectively immutable for the duration of a run; the engine never
// mutates it after the run starts, so concurrent reads from any number of
// in-flight invocations are safe.
type Params struct {
	// BaseURL is the root URL of the system under test.
	BaseURL string

	// Client is the HTTP client probes use to reach the system under test.
	Client *httpclient.Client

	// Timeout is the per-request timeout probes should apply. The engine
	// itself imposes no timeout on an invocation.
	Timeout time.Duration

	// Testing tells the backend lifecycle collaborator that this run is a
	// test run. It is threaded explicitly rather than kept as ambient
	// process-wide state.
	Testing bool

	// Vars carries suite-level variables available to probe closures.
	Vars map[string]string
}

// Target is the system-under-test lifecycle collaborator. The caller of a
// run (not the engine) is responsible for bracketing the run with Open and
// Close.
type Target interface {
	Open(ctx context.Context) error
	Close(ctx context.Context) error
}

// NopTarget is a Target whose Open and Close do nothing, for backends that
// need no lifecycle calls.
type NopTarget struct{}

func (NopTarget) Open(context.Context) error  { return nil }
func (NopTarget) Close(context.Context) error { return nil }
