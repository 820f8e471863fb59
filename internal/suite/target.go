package suite

import (
	"context"
	"fmt"

	"github.com/probench/probench/pkg/probe"
)

// Target returns the system-under-test lifecycle collaborator for this
// suite. If the suite declares open/close requests they are executed with
// the given Params; otherwise the target is a no-op.
func (l *Loaded) Target(params *probe.Params) probe.Target {
	if l.open == nil && l.close == nil {
		return probe.NopTarget{}
	}
	return &requestTarget{
		open:   l.open,
		close:  l.close,
		vars:   l.Variables,
		params: params,
	}
}

// requestTarget brackets a run with the suite's declared open and close
// requests against the system under test.
type requestTarget struct {
	open   *RequestSpec
	close  *RequestSpec
	vars   map[string]string
	params *probe.Params
}

func (t *requestTarget) Open(ctx context.Context) error {
	return t.execute(ctx, "open", t.open)
}

func (t *requestTarget) Close(ctx context.Context) error {
	return t.execute(ctx, "close", t.close)
}

func (t *requestTarget) execute(ctx context.Context, phase string, spec *RequestSpec) error {
	if spec == nil {
		return nil
	}

	req := buildRequest(*spec, t.vars)
	if t.params.Testing {
		req.WithQueryParam("testing", "true")
	}

	resp, err := t.params.Client.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("target %s: %w", phase, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("target %s: unexpected status %s", phase, resp.Status)
	}
	return nil
}
