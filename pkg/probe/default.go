package probe

// Package-level entry points operating on the process-wide default
// State. Test harnesses that need isolation can construct their own
// State and use Visit/VisitErr instead.

// StartCounter enters Count mode on the default state.
func StartCounter() { Default().StartCounter() }

// StartTrigger arms the n-th error candidate on the default state.
func StartTrigger(n int64) { Default().StartTrigger(n) }

// GetCount reads the default state's visit counter.
func GetCount() int64 { return Default().Count() }

// SetVerbosity reconfigures the default state's verbosity.
func SetVerbosity(v Verbosity) { Default().SetVerbosity(v) }

// SetLogger installs the default state's event message sink.
func SetLogger(l Logger) { Default().SetLogger(l) }

// CountedLocations snapshots the default state's Count-mode history.
func CountedLocations() []Location { return Default().CountedLocations() }

// TriggeredLocations snapshots the default state's Trigger-mode history.
func TriggeredLocations() []Location { return Default().TriggeredLocations() }
