package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportCmd represents the report command.
var reportCmd = newReportCmd()

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "View previously saved exhaustion run reports",
		Long:  "Render run reports saved earlier with run --save from the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			reports, err := reportStore.LoadReports(viper.GetString(outputFlagName))
			if err != nil {
				return err
			}

			return ui.DisplayRunReports(context.Background(), reports)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
