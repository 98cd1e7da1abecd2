// Package pipeline provides the built-in instrumented code paths the
// faultline CLI drives. Each pipeline is a small, always-succeeding
// multi-stage operation whose external interactions are wrapped in
// probes, so an exhaustion run can force every stage to fail in turn.
package pipeline

import (
	"fmt"
	"sort"
	"time"

	"faultline.dev/pkg/faultline/internal/model"
	"faultline.dev/pkg/faultline/pkg/codepath"
	"faultline.dev/pkg/faultline/pkg/probe"
)

// Pipeline is one named, probed code path.
type Pipeline struct {
	Name        string
	Description string
	// Args builds fresh run arguments bound to the given state. Each
	// call owns its own workspace; Setup/Teardown manage it per pass.
	Args func(s *probe.State) codepath.Args[string]
}

var registry = map[string]Pipeline{}

func register(p Pipeline) {
	registry[p.Name] = p
}

// All returns the built-in pipelines sorted by name.
func All() []Pipeline {
	pipelines := make([]Pipeline, 0, len(registry))
	for _, p := range registry {
		pipelines = append(pipelines, p)
	}

	sort.Slice(pipelines, func(i, j int) bool {
		return pipelines[i].Name < pipelines[j].Name
	})

	return pipelines
}

// Get looks up a pipeline by name.
func Get(name string) (Pipeline, bool) {
	p, ok := registry[name]
	return p, ok
}

// Exhaust runs the full discovery-plus-verification loop over the
// pipeline and flattens the result into a report row.
func Exhaust(s *probe.State, p Pipeline) model.RunReport {
	started := time.Now()
	res := codepath.RunState(s, p.Args(s))

	report := model.RunReport{
		Pipeline:     p.Name,
		Expected:     res.ExpectedTriggerCount,
		Triggered:    res.TriggerCount,
		Succeeded:    res.Success(),
		Duration:     time.Since(started),
		Counted:      model.NewLocationRows(res.CountedLocations),
		TriggeredLoc: model.NewLocationRows(res.TriggeredLocations),
	}

	if res.Unexpected != nil {
		if res.Unexpected.Err != nil {
			report.Unexpected = fmt.Sprintf("failure: %v", res.Unexpected.Err)
		} else {
			report.Unexpected = fmt.Sprintf("success: %v", res.Unexpected.Value)
		}
	}

	return report
}

// Discover runs only the Count pass and returns the number of error
// candidates on the pipeline's path, or -1 when the pass failed.
func Discover(s *probe.State, p Pipeline) int64 {
	args := p.Args(s)

	if args.Setup != nil {
		args.Setup()
	}

	s.StartCounter()

	if _, err := args.Path(); err != nil {
		return -1
	}

	count := s.Count()

	if args.Teardown != nil {
		args.Teardown()
	}

	return count
}

// Trigger runs the pipeline once with the given ordinal armed and
// returns the path's outcome.
func Trigger(s *probe.State, p Pipeline, ordinal int64) (string, error) {
	args := p.Args(s)

	if args.Setup != nil {
		args.Setup()
	}

	s.StartTrigger(ordinal)

	value, err := args.Path()

	if args.Teardown != nil {
		args.Teardown()
	}

	return value, err
}
