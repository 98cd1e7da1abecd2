// Package cmd provides the root command and CLI setup for faultline.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"faultline.dev/pkg/faultline/internal/controller"
	"faultline.dev/pkg/faultline/internal/store"
	"faultline.dev/pkg/faultline/pkg/probe"
)

var reportStore store.ReportStore
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// verbosityFlag selects how much probe activity runs log and record.
var verbosityFlag string

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportStore = store.NewReportStore()
}

const rootLongDescription = `Faultline exhausts the error paths of instrumented code. Every fallible
call on a code path carries a probe; a run first counts the probes in a
discovery pass, then replays the path once per probe with that probe
forced to fail, checking that each injected error surfaces.

Reports from a run can be saved with --save and rendered later with the
report command.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "faultline",
		Short: "Deterministic error-path exhaustion for probed code",
		Long:  rootLongDescription,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a fresh root command so tests do not share flag
// state with the package-level command.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for exhaustion run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().
		StringVarP(
			&verbosityFlag, verbosityFlagName, "v",
			viper.GetString(verbosityConfigKey),
			"probe verbosity: none, moderate or extreme",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verbosityFlagName), verbosityConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// newRunState builds a probe state at the given verbosity with its
// messages bridged into the global logger.
func newRunState(verbosity probe.Verbosity) *probe.State {
	s := probe.NewState()
	s.SetVerbosity(verbosity)
	s.SetLogger(func(msg string) { slog.Info(msg) })

	return s
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	configureLogger("", viper.GetBool(logVerboseKey))

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
