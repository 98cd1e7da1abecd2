package probe

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Location identifies a single probe visit for logging and history. It
// never influences control flow.
type Location struct {
	// Package is the import path of the package containing the probe,
	// empty if it could not be resolved.
	Package string
	// File and Line point at the probe call site.
	File string
	Line int
	// Desc is the optional human description supplied at the call site.
	Desc string
	// Candidate is the 1-based index of the error candidate this entry
	// refers to. Zero means the probe as a whole.
	Candidate int
}

// callerLocation captures the call site skip frames above the caller.
func callerLocation(skip int, desc string) Location {
	loc := Location{Desc: desc}

	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return loc
	}

	loc.File = file
	loc.Line = line

	if fn := runtime.FuncForPC(pc); fn != nil {
		loc.Package = packageOf(fn.Name())
	}

	return loc
}

// packageOf extracts the package import path from a runtime function
// name such as "faultline.dev/pkg/faultline/pkg/probe.Visit".
func packageOf(funcName string) string {
	slash := strings.LastIndex(funcName, "/")
	dot := strings.Index(funcName[slash+1:], ".")
	if dot < 0 {
		return ""
	}

	return funcName[:slash+1+dot]
}

// String renders the location the way probe log messages refer to it,
// e.g. `probe "flush index" at store.go:42 in package example/kv`.
func (l Location) String() string {
	var b strings.Builder

	if l.Desc != "" {
		fmt.Fprintf(&b, "probe %q at ", l.Desc)
	} else {
		b.WriteString("probe at ")
	}

	fmt.Fprintf(&b, "%s:%d", filepath.Base(l.File), l.Line)

	if l.Package != "" {
		fmt.Fprintf(&b, " in package %s", l.Package)
	}

	if l.Candidate > 1 {
		fmt.Fprintf(&b, " (candidate %d)", l.Candidate)
	}

	return b.String()
}
