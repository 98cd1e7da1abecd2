package codepath

import (
	"fmt"
	"strings"

	"faultline.dev/pkg/faultline/pkg/probe"
)

// CountUnknown is the ExpectedTriggerCount of a run whose discovery pass
// failed before a count could be taken.
const CountUnknown int64 = -1

// Outcome carries the value and error a code path produced on the pass
// that deviated from expectations.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Result is the immutable product of one exhaustion run.
type Result[T any] struct {
	// ExpectedTriggerCount is the number of error candidates discovered
	// by the Count pass, or CountUnknown if that pass failed.
	ExpectedTriggerCount int64
	// TriggerCount is the number of ordinals that were individually and
	// successfully forced to fail.
	TriggerCount int64
	// Unexpected is set when some pass deviated from expectation: a
	// failure during discovery, or a success during verification. Nil on
	// a clean run.
	Unexpected *Outcome[T]

	// CountedLocations and TriggeredLocations are the state's visit
	// histories at the end of the run, populated only at Extreme
	// verbosity.
	CountedLocations   []probe.Location
	TriggeredLocations []probe.Location
}

// Success reports whether every discovered probe was independently
// triggerable to a failure with no deviation in either phase.
func (r Result[T]) Success() bool {
	return r.TriggerCount == r.ExpectedTriggerCount && r.Unexpected == nil
}

// Report renders a human-readable account of the run. When the run was
// executed at Extreme verbosity it includes the ordered counted and
// triggered location lists, which pin down exactly which probe
// misbehaved.
func (r Result[T]) Report(name string) string {
	var b strings.Builder

	status := "FAILED"
	if r.Success() {
		status = "ok"
	}

	expected := "unknown"
	if r.ExpectedTriggerCount != CountUnknown {
		expected = fmt.Sprintf("%d", r.ExpectedTriggerCount)
	}

	fmt.Fprintf(&b, "codepath %q: %s, triggered %d of %s errors\n",
		name, status, r.TriggerCount, expected)

	if r.Unexpected != nil {
		if r.Unexpected.Err != nil {
			fmt.Fprintf(&b, "  unexpected failure: %v\n", r.Unexpected.Err)
		} else {
			fmt.Fprintf(&b, "  unexpected success: %v\n", r.Unexpected.Value)
		}
	}

	writeLocations(&b, "counted", r.CountedLocations)
	writeLocations(&b, "triggered", r.TriggeredLocations)

	return b.String()
}

func writeLocations(b *strings.Builder, label string, locs []probe.Location) {
	if len(locs) == 0 {
		return
	}

	fmt.Fprintf(b, "  %s:\n", label)

	for i, loc := range locs {
		fmt.Fprintf(b, "    %2d. %s\n", i+1, loc)
	}
}
