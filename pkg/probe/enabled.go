//go:build !faultline_disabled

package probe

// Enabled reports whether fault injection is compiled in. Building with
// the faultline_disabled tag turns every probe into a transparent
// pass-through: candidate expressions are still type-checked but never
// used, and the state machine is never consulted.
const Enabled = true
