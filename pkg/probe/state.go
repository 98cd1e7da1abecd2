// Package probe implements deterministic fault injection for error-path
// testing.
//
// A probe is a point in production code where the result of an external
// operation may be overridden with a synthetic error. Test code drives
// the probes through a shared State: in Count mode every probe tallies
// its error candidates without changing behavior, in Trigger mode the
// probe holding the n-th candidate on the code path substitutes its
// error for the real result. Counting a path and then triggering each
// ordinal in turn exercises every error branch the path can take; the
// codepath package automates that loop.
//
// The State is one shared mutable value. Tests that exercise probes must
// run sequentially; concurrent runs would corrupt each other's counters.
package probe

import (
	"fmt"
	"math"
	"sync"
)

// Mode selects how probes behave. Count and Trigger are mutually
// exclusive: the mode is global to a State, not per probe.
type Mode int

const (
	// ModeCount tallies probe visits without altering any result.
	ModeCount Mode = iota
	// ModeTrigger forces the probe at one ordinal position to fail.
	ModeTrigger
)

// Verbosity gates logging and history recording.
type Verbosity int

const (
	// VerbosityNone suppresses all probe logging.
	VerbosityNone Verbosity = iota
	// VerbosityModerate logs triggered and unexpected-failure events.
	VerbosityModerate
	// VerbosityExtreme additionally records per-visit location history.
	VerbosityExtreme
)

// Logger receives human-readable probe event messages. It is invoked
// while the state lock is held: a logger must not call back into probe
// evaluation or any State method, or it will deadlock.
type Logger func(msg string)

// State is the injection state machine shared by all probes that
// reference it. The zero value is not usable; construct with NewState.
// Most code uses the process-wide instance via the package-level
// functions and Default.
type State struct {
	mu sync.Mutex

	mode    Mode
	counter int64
	trigger int64

	verbosity Verbosity
	logger    Logger

	countedLocs   []Location
	triggeredLocs []Location
}

// NewState returns a State in Count mode with Moderate verbosity and no
// logger. The trigger countdown starts saturated so nothing can fire
// until StartTrigger is called.
func NewState() *State {
	return &State{
		mode:      ModeCount,
		trigger:   math.MaxInt64,
		verbosity: VerbosityModerate,
	}
}

var defaultState = NewState()

// Default returns the process-wide State used by the package-level
// functions.
func Default() *State { return defaultState }

// StartCounter enters Count mode, resets the visit counter to zero and
// clears the recorded location history. Safe to call repeatedly.
func (s *State) StartCounter() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = ModeCount
	s.counter = 0
	s.countedLocs = nil
	s.triggeredLocs = nil
}

// StartTrigger enters Trigger mode and arms the n-th error candidate on
// the upcoming code path (1-indexed). Values below 1 arm an ordinal that
// no probe can reach, so nothing fires. Verbosity, logger and history
// are left untouched.
func (s *State) StartTrigger(n int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = ModeTrigger
	s.trigger = n
}

// Count reports the number of error candidates visited since the last
// StartCounter. Meaningful only after a Count-mode run.
func (s *State) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counter
}

// SetVerbosity reconfigures logging and history recording. Takes effect
// for subsequent probe visits.
func (s *State) SetVerbosity(v Verbosity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.verbosity = v
}

// SetLogger installs the event message sink. A nil logger silences the
// state. See Logger for the reentrancy constraint.
func (s *State) SetLogger(l Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger = l
}

// CountedLocations returns a snapshot of the locations visited in Count
// mode since the last StartCounter. Empty unless verbosity is Extreme.
func (s *State) CountedLocations() []Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Location(nil), s.countedLocs...)
}

// TriggeredLocations returns a snapshot of the locations that fired in
// Trigger mode since the last StartCounter. Empty unless verbosity is
// Extreme.
func (s *State) TriggeredLocations() []Location {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Location(nil), s.triggeredLocs...)
}

// Logf emits a formatted message through the state's logger when the
// current verbosity is at least min. Used by the codepath driver to
// share the probe event sink.
func (s *State) Logf(min Verbosity, format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logf(min, format, args...)
}

// logf is the lock-held variant of Logf.
func (s *State) logf(min Verbosity, format string, args ...any) {
	if s.verbosity < min || s.logger == nil {
		return
	}

	s.logger(fmt.Sprintf(format, args...))
}

// visit is the probe decision point. The wrapped operation has already
// been evaluated by the caller; visit only decides whether to substitute
// one of the candidate errors. It returns the error to inject, or nil to
// pass the original result through.
//
// In Count mode the counter advances by len(candidates): a call site
// with multiple alternative failure values contributes one ordinal per
// candidate. In Trigger mode the countdown decrements once per candidate
// position, in declaration order; the candidate whose decrement lands
// the countdown on zero fires. The countdown keeps decrementing past
// zero so it can never re-reach zero: at most one candidate fires per
// run.
func (s *State) visit(loc Location, already error, candidates []error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeCount {
		s.counter += int64(len(candidates))

		if s.verbosity >= VerbosityExtreme {
			for i := range candidates {
				l := loc
				l.Candidate = i + 1
				s.countedLocs = append(s.countedLocs, l)
			}
		}

		return nil
	}

	var inject error

	for i, candidate := range candidates {
		s.trigger--
		if s.trigger != 0 {
			continue
		}

		l := loc
		l.Candidate = i + 1

		if already != nil {
			// The operation failed on its own. Injecting would mask the
			// real error, so report and pass it through.
			s.logf(VerbosityModerate, "Unexpected error in %s, got %v", l, already)
			continue
		}

		if s.verbosity >= VerbosityExtreme {
			s.triggeredLocs = append(s.triggeredLocs, l)
		}

		s.logf(VerbosityModerate, "Triggered %s, injecting %v", l, candidate)

		inject = candidate
	}

	return inject
}
