// Package controller renders faultline results for the terminal.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"faultline.dev/pkg/faultline/internal/model"
)

// UI displays pipeline listings and exhaustion run results.
// Implementations can use different output methods (plain text, TUI).
type UI interface {
	// DisplayPipelines shows the built-in pipelines with their probe
	// counts.
	DisplayPipelines(ctx context.Context, infos []model.PipelineInfo) error
	// DisplayRunReports shows exhaustion run results, including visit
	// histories when the run recorded them.
	DisplayRunReports(ctx context.Context, reports []model.RunReport) error
	// DisplayTriggerOutcome shows the outcome of a single forced
	// ordinal.
	DisplayTriggerOutcome(ctx context.Context, pipeline string, ordinal int64, value string, err error) error
	// DisplaySavedPath tells the user where reports were written.
	DisplaySavedPath(ctx context.Context, path string) error
}

// NewUI picks the TUI on interactive terminals and the plain renderer
// everywhere else.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
