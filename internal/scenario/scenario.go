// Package scenario reads YAML run scenarios for the faultline CLI. A
// scenario pins down which pipelines to exhaust and how chatty the run
// should be, so a run is reproducible from a file instead of flags.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"faultline.dev/pkg/faultline/internal/pipeline"
	"faultline.dev/pkg/faultline/pkg/probe"
)

// Scenario describes one run invocation.
type Scenario struct {
	// Pipelines lists built-in pipeline names; empty means all.
	Pipelines []string `yaml:"pipelines"`
	// Verbosity is one of "none", "moderate" or "extreme".
	Verbosity string `yaml:"verbosity"`
	// Reports is the directory to save run reports into; empty disables
	// saving.
	Reports string `yaml:"reports"`
}

// Load reads and validates a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("failed to decode scenario: %w", err)
	}

	if err := sc.validate(); err != nil {
		return Scenario{}, err
	}

	return sc, nil
}

func (sc Scenario) validate() error {
	for _, name := range sc.Pipelines {
		if _, ok := pipeline.Get(name); !ok {
			return fmt.Errorf("scenario references unknown pipeline %q", name)
		}
	}

	if _, err := ParseVerbosity(sc.Verbosity); err != nil {
		return err
	}

	return nil
}

// ParseVerbosity maps a scenario or flag value onto a probe verbosity.
// An empty value means Moderate.
func ParseVerbosity(value string) (probe.Verbosity, error) {
	switch value {
	case "", "moderate":
		return probe.VerbosityModerate, nil
	case "none":
		return probe.VerbosityNone, nil
	case "extreme":
		return probe.VerbosityExtreme, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q (want none, moderate or extreme)", value)
	}
}

// Selected resolves the scenario's pipeline list, defaulting to all.
func (sc Scenario) Selected() []pipeline.Pipeline {
	if len(sc.Pipelines) == 0 {
		return pipeline.All()
	}

	selected := make([]pipeline.Pipeline, 0, len(sc.Pipelines))

	for _, name := range sc.Pipelines {
		if p, ok := pipeline.Get(name); ok {
			selected = append(selected, p)
		}
	}

	return selected
}
