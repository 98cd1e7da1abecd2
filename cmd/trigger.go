package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"faultline.dev/pkg/faultline/internal/pipeline"
	"faultline.dev/pkg/faultline/internal/scenario"
)

// triggerCmd represents the trigger command.
var triggerCmd = newTriggerCmd()

func newTriggerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trigger <pipeline> <ordinal>",
		Short: "Force a single error ordinal in one pipeline",
		Long: `Run one pipeline a single time with the given error ordinal armed.
Useful for reproducing one injected failure without a full exhaustion
run. An ordinal past the pipeline's probe count leaves the run
untouched.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			p, ok := pipeline.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown pipeline %q", args[0])
			}

			ordinal, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || ordinal < 1 {
				return fmt.Errorf("ordinal must be a positive integer, got %q", args[1])
			}

			verbosity, err := scenario.ParseVerbosity(viper.GetString(verbosityConfigKey))
			if err != nil {
				return err
			}

			s := newRunState(verbosity)
			value, pathErr := pipeline.Trigger(s, p, ordinal)

			return ui.DisplayTriggerOutcome(context.Background(), p.Name, ordinal, value, pathErr)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(triggerCmd)
}
