package registry_test

import (
	"testing"

	"github.com/probench/probench/internal/registry"
)

func makeProbes(names ...string) []registry.Probe {
	probes := make([]registry.Probe, len(names))
	for i, name := range names {
		probes[i] = registry.Probe{Name: name, Run: noopProbe}
	}
	return probes
}

func names(probes []registry.Probe) []string {
	out := make([]string, len(probes))
	for i, p := range probes {
		out[i] = p.Name
	}
	return out
}

func TestSelectProbes_EmptyFilterReturnsAllInOrder(t *testing.T) {
	probes := makeProbes("test_articles", "test_search", "test_api_health")

	selected := registry.SelectProbes(probes, registry.Filter{})

	if len(selected) != len(probes) {
		t.Fatalf("selected %d probes, want %d", len(selected), len(probes))
	}
	for i, p := range selected {
		if p.Name != probes[i].Name {
			t.Errorf("selected[%d] = %q, want %q", i, p.Name, probes[i].Name)
		}
	}
}

func TestSelectProbes_Include(t *testing.T) {
	probes := makeProbes("test_articles", "test_search", "test_api_health")
	f := registry.Filter{Include: []string{"articles", "health"}}

	selected := names(registry.SelectProbes(probes, f))

	want := []string{"test_articles", "test_api_health"}
	if len(selected) != len(want) {
		t.Fatalf("selected = %v, want %v", selected, want)
	}
	for i := range want {
		if selected[i] != want[i] {
			t.Errorf("selected[%d] = %q, want %q", i, selected[i], want[i])
		}
	}
}

func TestSelectProbes_Exclude(t *testing.T) {
	probes := makeProbes("test_articles", "test_search", "test_api_health")
	f := registry.Filter{Exclude: []string{"search"}}

	for _, p := range registry.SelectProbes(probes, f) {
		if p.Name == "test_search" {
			t.Error("excluded probe was selected")
		}
	}
}

func TestSelectProbes_IncludeAndExclude(t *testing.T) {
	probes := makeProbes("test_api_articles", "test_api_search", "test_health")
	f := registry.Filter{
		Include: []string{"api"},
		Exclude: []string{"search"},
	}

	selected := names(registry.SelectProbes(probes, f))
	if len(selected) != 1 || selected[0] != "test_api_articles" {
		t.Errorf("selected = %v, want [test_api_articles]", selected)
	}
}

func TestFilter_MatchIsPure(t *testing.T) {
	f := registry.Filter{Include: []string{"api"}, Exclude: []string{"slow"}}

	// Repeated evaluation of the same name never changes its answer.
	for i := 0; i < 3; i++ {
		if !f.Match("test_api_fast") {
			t.Error("Match(test_api_fast) = false, want true")
		}
		if f.Match("test_api_slow") {
			t.Error("Match(test_api_slow) = true, want false")
		}
		if f.Match("test_other") {
			t.Error("Match(test_other) = true, want false")
		}
	}
}

func TestFilter_IsZero(t *testing.T) {
	if !(registry.Filter{}).IsZero() {
		t.Error("empty filter should be zero")
	}
	if (registry.Filter{Include: []string{"x"}}).IsZero() {
		t.Error("filter with include should not be zero")
	}
}
