package suite

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/probench/probench/internal/httpclient"
	"github.com/probench/probench/pkg/jsonschema"
	"github.com/probench/probench/pkg/probe"
)

// compile turns a probe declaration into the callable the engine invokes.
// Suite variables are resolved once, at compile time; the closure reads
// only its own locals and the per-run Params, so concurrent invocations
// share no mutable state.
func compile(spec ProbeSpec, vars map[string]string) probe.Func {
	req := spec.Request
	expect := spec.Expect

	return func(ctx context.Context, p *probe.Params) error {
		resp, err := p.Client.Do(ctx, buildRequest(req, vars))
		if err != nil {
			return fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
		}
		return expect.Check(resp)
	}
}

// buildRequest materializes a request declaration, resolving suite
// variables into its string fields.
func buildRequest(req RequestSpec, vars map[string]string) *httpclient.Request {
	r := httpclient.NewRequest(req.Method, resolve(req.Path, vars))
	for key, value := range req.Headers {
		r.WithHeader(key, resolve(value, vars))
	}
	for key, value := range req.Query {
		r.WithQueryParam(key, resolve(value, vars))
	}
	if req.Body != nil {
		if s, ok := req.Body.(string); ok {
			r.WithBody(resolve(s, vars))
		} else {
			r.WithBody(req.Body)
		}
	}
	return r
}

// Check verifies the response against the expectation, returning the first
// failed check.
func (e Expectation) Check(resp *httpclient.Response) error {
	if e.Status != 0 {
		if resp.StatusCode != e.Status {
			return fmt.Errorf("expected status %d, got %d", e.Status, resp.StatusCode)
		}
	} else if !resp.IsSuccess() {
		return fmt.Errorf("expected success, got %s", resp.Status)
	}

	body := resp.BodyString()

	if e.BodyContains != "" && !strings.Contains(body, e.BodyContains) {
		return fmt.Errorf("body does not contain %q", e.BodyContains)
	}

	for _, assertion := range e.JSON {
		if err := assertion.check(body); err != nil {
			return err
		}
	}

	if e.Schema != "" {
		valid, errs := jsonschema.ValidateWithErrors(body, e.Schema)
		if !valid {
			return fmt.Errorf("schema validation failed: %s", errs.Error())
		}
	}

	return nil
}

func (a JSONAssertion) check(body string) error {
	value := gjson.Get(body, a.Path)

	if a.Equals != nil {
		if !value.Exists() {
			return fmt.Errorf("json path %q not found", a.Path)
		}
		if value.String() != *a.Equals {
			return fmt.Errorf("json path %q: expected %q, got %q", a.Path, *a.Equals, value.String())
		}
		return nil
	}

	if a.Exists && !value.Exists() {
		return fmt.Errorf("json path %q not found", a.Path)
	}
	return nil
}
