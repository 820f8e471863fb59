// Package registry holds the set of probes known to a run and selects the
// subset to execute.
//
// Probes are registered explicitly as (name, callable) pairs by the
// surrounding application; there is no runtime introspection. Discovery of
// probes from suite files on disk lives in the suite package, which feeds
// this registry.
package registry

import (
	"fmt"

	"github.com/probench/probench/pkg/probe"
)

// Probe is a registered probe: a name used for filtering and reporting plus
// the callable that exercises the system under test. The engine never
// mutates a Probe after registration.
type Probe struct {
	Name string
	Run  probe.Func
}

// Registry is an ordered collection of uniquely-named probes. The zero
// value is not usable; call New.
type Registry struct {
	probes []Probe
	byName map[string]struct{}
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]struct{}),
	}
}

// Register adds a probe. Registration order is preserved and is the order
// probes execute in a single-pass run.
//
// A name collision returns a DuplicateProbeError: silently shadowing an
// earlier probe would hide a previously-passing check from execution, so
// duplicates are rejected outright.
func (r *Registry) Register(name string, fn probe.Func) error {
	if name == "" {
		return fmt.Errorf("probe name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("probe %q has no callable", name)
	}
	if _, exists := r.byName[name]; exists {
		return &DuplicateProbeError{Name: name}
	}

	r.byName[name] = struct{}{}
	r.probes = append(r.probes, Probe{Name: name, Run: fn})
	return nil
}

// Probes returns all registered probes in registration order. The returned
// slice is a copy.
func (r *Registry) Probes() []Probe {
	out := make([]Probe, len(r.probes))
	copy(out, r.probes)
	return out
}

// Len returns the number of registered probes.
func (r *Registry) Len() int {
	return len(r.probes)
}

// Select returns the probes matching the filter, in registration order.
func (r *Registry) Select(f Filter) []Probe {
	return SelectProbes(r.probes, f)
}
