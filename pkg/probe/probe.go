package probe

// Probe invocation points.
//
// A probe wraps the already-computed result of an operation:
//
//	data, err := store.Load(key)
//	data, err = probe.Point(data, err, ErrLoadFailed)
//
// The operation is evaluated before the probe runs, never inside the
// state lock, so operations containing nested probes cannot deadlock.
//
// Each call site supplies one to three candidate errors. In Count mode
// the probe contributes one ordinal per candidate; in Trigger mode the
// armed ordinal selects the candidate to substitute, in declaration
// order. A call with no candidates is a pass-through no-op.

// Visit runs a probe against the given state and returns the original
// result, or the result with err replaced by a candidate when the probe
// fires. desc may be empty.
func Visit[T any](s *State, desc string, value T, err error, candidates ...error) (T, error) {
	return visit(s, 1, desc, value, err, candidates)
}

// VisitErr is Visit for operations that return only an error.
func VisitErr(s *State, desc string, err error, candidates ...error) error {
	_, err = visit(s, 1, desc, struct{}{}, err, candidates)
	return err
}

// Point runs a probe against the default state.
func Point[T any](value T, err error, candidates ...error) (T, error) {
	return visit(Default(), 1, "", value, err, candidates)
}

// NamedPoint is Point with a description used in logs and history.
func NamedPoint[T any](desc string, value T, err error, candidates ...error) (T, error) {
	return visit(Default(), 1, desc, value, err, candidates)
}

// PointErr is Point for operations that return only an error.
func PointErr(err error, candidates ...error) error {
	_, err = visit(Default(), 1, "", struct{}{}, err, candidates)
	return err
}

// NamedPointErr is PointErr with a description.
func NamedPointErr(desc string, err error, candidates ...error) error {
	_, err = visit(Default(), 1, desc, struct{}{}, err, candidates)
	return err
}

// visit dispatches a probe visit. skip counts stack frames between the
// user call site and this function, for location capture.
func visit[T any](s *State, skip int, desc string, value T, err error, candidates []error) (T, error) {
	if !Enabled || s == nil || len(candidates) == 0 {
		return value, err
	}

	loc := callerLocation(skip+1, desc)

	if injected := s.visit(loc, err, candidates); injected != nil {
		var zero T
		return zero, injected
	}

	return value, err
}
