//go:build faultline_disabled

package probe

// Enabled is false in builds carrying the faultline_disabled tag; see
// enabled.go.
const Enabled = false
