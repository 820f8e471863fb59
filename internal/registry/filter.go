package registry

import "strings"

// Filter selects probes by name with include/exclude substring rules.
//
// A probe is selected iff its name contains at least one include substring
// (or Include is empty) and contains no exclude substring. Evaluation is
// pure and order-independent.
type Filter struct {
	Include []string
	Exclude []string
}

// Match reports whether a probe name passes the filter.
func (f Filter) Match(name string) bool {
	if len(f.Include) > 0 && !containsAny(name, f.Include) {
		return false
	}
	return !containsAny(name, f.Exclude)
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return len(f.Include) == 0 && len(f.Exclude) == 0
}

func containsAny(name string, substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// SelectProbes returns the probes matching the filter, preserving the input
// order. The selection is stable: the relative order of selected probes is
// the discovery order.
func SelectProbes(probes []Probe, f Filter) []Probe {
	selected := make([]Probe, 0, len(probes))
	for _, p := range probes {
		if f.Match(p.Name) {
			selected = append(selected, p)
		}
	}
	return selected
}
