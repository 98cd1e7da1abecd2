package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"faultline.dev/pkg/faultline/internal/model"
	"faultline.dev/pkg/faultline/internal/pipeline"
	"faultline.dev/pkg/faultline/internal/scenario"
)

var runScenarioFlag string
var runSaveFlag bool

const runLongDescription = `Run error-path exhaustion for the named pipelines (default: all).

Each pipeline runs once in count mode to discover its probes, then once
per probe with that probe forced to fail. A pipeline passes when every
injected error surfaces and nothing else goes wrong.

A scenario file (--scenario) can pin down the pipeline list, verbosity
and reports directory; explicit arguments and flags still win.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [pipelines...]",
		Short: "Run error-path exhaustion",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			names := args
			verbosityValue := viper.GetString(verbosityConfigKey)
			reportsPath := viper.GetString(outputFlagName)
			save := runSaveFlag

			if runScenarioFlag != "" {
				sc, err := scenario.Load(runScenarioFlag)
				if err != nil {
					return err
				}

				if len(names) == 0 {
					names = sc.Pipelines
				}

				if sc.Verbosity != "" {
					verbosityValue = sc.Verbosity
				}

				if sc.Reports != "" {
					reportsPath = sc.Reports
					save = true
				}
			}

			verbosity, err := scenario.ParseVerbosity(verbosityValue)
			if err != nil {
				return err
			}

			selected, err := selectPipelines(names)
			if err != nil {
				return err
			}

			s := newRunState(verbosity)

			reports := make([]model.RunReport, 0, len(selected))
			failed := 0

			for _, p := range selected {
				report := pipeline.Exhaust(s, p)
				if !report.Succeeded {
					failed++
				}

				reports = append(reports, report)
			}

			if err := ui.DisplayRunReports(context.Background(), reports); err != nil {
				return err
			}

			if save {
				path, err := reportStore.SaveReports(reportsPath, reports)
				if err != nil {
					return err
				}

				if err := ui.DisplaySavedPath(context.Background(), path); err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d pipelines failed", failed, len(selected))
			}

			return nil
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runScenarioFlag, scenarioFlagName, "f", "", "run the pipelines and settings from a scenario file")
	cmd.Flags().BoolVar(&runSaveFlag, saveFlagName, defaultSave, "save run reports to the output directory")
}

func selectPipelines(names []string) ([]pipeline.Pipeline, error) {
	if len(names) == 0 {
		return pipeline.All(), nil
	}

	selected := make([]pipeline.Pipeline, 0, len(names))

	for _, name := range names {
		p, ok := pipeline.Get(name)
		if !ok {
			return nil, fmt.Errorf("unknown pipeline %q", name)
		}

		selected = append(selected, p)
	}

	return selected, nil
}
