// Package suite discovers probes from YAML suite files.
//
// A suite file declares named probes as HTTP request + expectation pairs.
// The loader compiles each declaration into a probe closure and registers it
// with a registry; the engine only ever sees the resulting callables.
package suite

// Suite is the top-level structure of a suite file.
type Suite struct {
	// Name identifies the suite in output.
	Name string `yaml:"name"`

	// BaseURL is the root URL of the system under test. The --base-url
	// flag overrides it.
	BaseURL string `yaml:"baseUrl"`

	// Variables are resolved into {{placeholders}} in request fields.
	Variables map[string]string `yaml:"variables,omitempty"`

	// Open and Close are optional lifecycle requests bracketing a run.
	Open  *RequestSpec `yaml:"open,omitempty"`
	Close *RequestSpec `yaml:"close,omitempty"`

	// Probes are the declared probes, in file order.
	Probes []ProbeSpec `yaml:"probes"`
}

// ProbeSpec declares a single probe. By convention names are prefixed
// test_ (or test_api_); the prefix is part of the name used for filtering
// and reporting.
type ProbeSpec struct {
	Name    string      `yaml:"name"`
	Request RequestSpec `yaml:"request"`
	Expect  Expectation `yaml:"expect,omitempty"`
}

// RequestSpec describes the HTTP request a probe performs.
type RequestSpec struct {
	Method  string            `yaml:"method"`
	Path    string            `yaml:"path"`
	Headers map[string]string `yaml:"headers,omitempty"`
	Query   map[string]string `yaml:"query,omitempty"`
	Body    interface{}       `yaml:"body,omitempty"`
}

// Expectation describes what a probe requires of the response. An empty
// expectation only requires a 2xx status.
type Expectation struct {
	// Status is the exact status code required. Zero means any 2xx.
	Status int `yaml:"status,omitempty"`

	// BodyContains requires the response body to contain a substring.
	BodyContains string `yaml:"bodyContains,omitempty"`

	// JSON are gjson path assertions against the response body.
	JSON []JSONAssertion `yaml:"json,omitempty"`

	// Schema is an inline JSON Schema the body must validate against.
	Schema string `yaml:"schema,omitempty"`
}

// JSONAssertion checks one gjson path in the response body.
type JSONAssertion struct {
	Path string `yaml:"path"`

	// Equals requires the value at Path to stringify to this value.
	Equals *string `yaml:"equals,omitempty"`

	// Exists requires a value to be present at Path. Implied when Equals
	// is set.
	Exists bool `yaml:"exists,omitempty"`
}
