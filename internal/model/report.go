// Package model defines the data structures shared by the faultline CLI.
package model

import (
	"time"

	"faultline.dev/pkg/faultline/pkg/probe"
)

// PipelineInfo describes a built-in pipeline and its discovered probe
// count.
type PipelineInfo struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	// Probes is the number of error candidates a discovery pass found,
	// or -1 when discovery failed.
	Probes int64 `yaml:"probes"`
}

// RunReport is the flattened, display- and persistence-ready record of
// one exhaustion run over a pipeline.
type RunReport struct {
	Pipeline  string `yaml:"pipeline"`
	Expected  int64  `yaml:"expected"`
	Triggered int64  `yaml:"triggered"`
	Succeeded bool   `yaml:"succeeded"`
	// Unexpected holds the rendered deviating outcome, empty on a clean
	// run.
	Unexpected string        `yaml:"unexpected,omitempty"`
	Duration   time.Duration `yaml:"duration"`

	Counted      []LocationRow `yaml:"counted,omitempty"`
	TriggeredLoc []LocationRow `yaml:"triggered_locations,omitempty"`
}

// LocationRow is a probe location flattened for reports.
type LocationRow struct {
	Package   string `yaml:"package,omitempty"`
	File      string `yaml:"file"`
	Line      int    `yaml:"line"`
	Desc      string `yaml:"desc,omitempty"`
	Candidate int    `yaml:"candidate,omitempty"`
}

// NewLocationRow flattens a probe location.
func NewLocationRow(loc probe.Location) LocationRow {
	return LocationRow{
		Package:   loc.Package,
		File:      loc.File,
		Line:      loc.Line,
		Desc:      loc.Desc,
		Candidate: loc.Candidate,
	}
}

// NewLocationRows flattens a location history.
func NewLocationRows(locs []probe.Location) []LocationRow {
	if len(locs) == 0 {
		return nil
	}

	rows := make([]LocationRow, 0, len(locs))
	for _, loc := range locs {
		rows = append(rows, NewLocationRow(loc))
	}

	return rows
}
