package registry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/probench/probench/internal/registry"
	"github.com/probench/probench/pkg/probe"
)

func noopProbe(ctx context.Context, p *probe.Params) error {
	return nil
}

func TestRegistry_RegisterPreservesOrder(t *testing.T) {
	r := registry.New()

	names := []string{"test_articles", "test_search", "test_health"}
	for _, name := range names {
		if err := r.Register(name, noopProbe); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	probes := r.Probes()
	if len(probes) != len(names) {
		t.Fatalf("len(Probes()) = %d, want %d", len(probes), len(names))
	}
	for i, p := range probes {
		if p.Name != names[i] {
			t.Errorf("Probes()[%d].Name = %q, want %q", i, p.Name, names[i])
		}
	}
}

func TestRegistry_RejectsDuplicateName(t *testing.T) {
	r := registry.New()

	if err := r.Register("test_articles", noopProbe); err != nil {
		t.Fatalf("first Register error = %v", err)
	}

	err := r.Register("test_articles", noopProbe)
	if err == nil {
		t.Fatal("second Register with same name: expected error, got nil")
	}

	var dup *registry.DuplicateProbeError
	if !errors.As(err, &dup) {
		t.Fatalf("error = %T, want *DuplicateProbeError", err)
	}
	if dup.Name != "test_articles" {
		t.Errorf("DuplicateProbeError.Name = %q, want %q", dup.Name, "test_articles")
	}

	// The colliding registration must not have shadowed or appended.
	if r.Len() != 1 {
		t.Errorf("Len() = %d after rejected duplicate, want 1", r.Len())
	}
}

func TestRegistry_RejectsEmptyNameAndNilFunc(t *testing.T) {
	r := registry.New()

	if err := r.Register("", noopProbe); err == nil {
		t.Error("Register with empty name: expected error, got nil")
	}
	if err := r.Register("test_nil", nil); err == nil {
		t.Error("Register with nil func: expected error, got nil")
	}
}

func TestRegistry_ProbesReturnsCopy(t *testing.T) {
	r := registry.New()
	if err := r.Register("test_a", noopProbe); err != nil {
		t.Fatal(err)
	}

	probes := r.Probes()
	probes[0].Name = "mutated"

	if r.Probes()[0].Name != "test_a" {
		t.Error("mutating the returned slice changed the registry")
	}
}
