package registry

import "fmt"

// DiscoveryError indicates that a probe location was unreadable or yielded
// no eligible probes. Running with zero probes is a configuration error,
// not an empty success.
type DiscoveryError struct {
	Location string
	Reason   string
	Err      error
}

func (e *DiscoveryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("probe discovery failed for %q: %s: %v", e.Location, e.Reason, e.Err)
	}
	return fmt.Sprintf("probe discovery failed for %q: %s", e.Location, e.Reason)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// DuplicateProbeError indicates two probes were registered under the same
// name.
type DuplicateProbeError struct {
	Name string
}

func (e *DuplicateProbeError) Error() string {
	return fmt.Sprintf("duplicate probe name %q", e.Name)
}
