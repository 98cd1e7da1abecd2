package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"faultline.dev/pkg/faultline/internal/model"
	"faultline.dev/pkg/faultline/internal/pipeline"
	"faultline.dev/pkg/faultline/internal/scenario"
)

const listLongDescription = `List the built-in pipelines with their probe counts.

Counts come from a count-mode pass over each pipeline; a pipeline whose
count pass fails on its own is reported as unknown.`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pipelines and probe counts",
		Long:  listLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			verbosity, err := scenario.ParseVerbosity(viper.GetString(verbosityConfigKey))
			if err != nil {
				return err
			}

			s := newRunState(verbosity)

			pipelines := pipeline.All()
			infos := make([]model.PipelineInfo, 0, len(pipelines))

			for _, p := range pipelines {
				infos = append(infos, model.PipelineInfo{
					Name:        p.Name,
					Description: p.Description,
					Probes:      pipeline.Discover(s, p),
				})
			}

			return ui.DisplayPipelines(context.Background(), infos)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
