// Package codepath drives a probed code path through every one of its
// error branches.
//
// An exhaustion run has two phases. The discovery pass executes the
// path once in Count mode and expects it to succeed; the count of
// visited error candidates becomes the expected trigger count. The
// verification passes then execute the path once per ordinal in Trigger
// mode, each time expecting the path to fail with exactly that
// candidate injected. Any deviation — failure during discovery, success
// during verification — stops the run and is surfaced as data on the
// Result, never as a panic.
//
// Runs mutate the shared probe state, so at most one run may execute at
// a time per State.
package codepath

import "faultline.dev/pkg/faultline/pkg/probe"

// Args describes one exhaustion run. Path is the code path under test;
// it must evaluate every probe it contains on a successful execution.
// Setup runs before each pass, Teardown after each pass that matched
// expectations. Both are optional.
type Args[T any] struct {
	Setup    func()
	Path     func() (T, error)
	Teardown func()
}

// Run exhausts the code path against the process-wide default state.
func Run[T any](args Args[T]) Result[T] {
	return RunState(probe.Default(), args)
}

// RunState exhausts the code path against an explicit state.
//
// In builds with fault injection compiled out the driver degrades to a
// single pass: it reports zero discovered probes and captures the
// path's outcome as Unexpected, so it never claims success.
func RunState[T any](s *probe.State, args Args[T]) Result[T] {
	if !probe.Enabled {
		return runDisabled(args)
	}

	res := Result[T]{ExpectedTriggerCount: CountUnknown}

	// Discovery pass.
	s.Logf(probe.VerbosityExtreme, "Running code path in COUNT mode")

	if args.Setup != nil {
		args.Setup()
	}

	s.StartCounter()

	value, err := args.Path()
	if err != nil {
		s.Logf(probe.VerbosityModerate,
			"Code path failed in COUNT mode, expected it to succeed: %v", err)
		res.Unexpected = &Outcome[T]{Value: value, Err: err}

		return finish(s, res)
	}

	res.ExpectedTriggerCount = s.Count()

	if args.Teardown != nil {
		args.Teardown()
	}

	// Verification passes, one forced failure per ordinal.
	for ordinal := int64(1); ordinal <= res.ExpectedTriggerCount; ordinal++ {
		s.Logf(probe.VerbosityExtreme,
			"Running code path in TRIGGER mode, forcing error %d of %d",
			ordinal, res.ExpectedTriggerCount)

		if args.Setup != nil {
			args.Setup()
		}

		s.StartTrigger(ordinal)

		value, err := args.Path()
		if err == nil {
			s.Logf(probe.VerbosityModerate,
				"Code path succeeded in TRIGGER mode for error %d, expected it to fail", ordinal)
			res.Unexpected = &Outcome[T]{Value: value}

			return finish(s, res)
		}

		res.TriggerCount = ordinal

		if args.Teardown != nil {
			args.Teardown()
		}
	}

	s.Logf(probe.VerbosityModerate, "Triggered %d of %d errors",
		res.TriggerCount, res.ExpectedTriggerCount)

	return finish(s, res)
}

// finish snapshots the state's visit history onto the result. The
// snapshots are empty unless the state ran at Extreme verbosity.
func finish[T any](s *probe.State, res Result[T]) Result[T] {
	res.CountedLocations = s.CountedLocations()
	res.TriggeredLocations = s.TriggeredLocations()

	return res
}

func runDisabled[T any](args Args[T]) Result[T] {
	if args.Setup != nil {
		args.Setup()
	}

	value, err := args.Path()

	if args.Teardown != nil {
		args.Teardown()
	}

	return Result[T]{Unexpected: &Outcome[T]{Value: value, Err: err}}
}
