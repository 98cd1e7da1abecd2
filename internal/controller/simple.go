package controller

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"faultline.dev/pkg/faultline/internal/model"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle  = lipgloss.NewStyle().Faint(true)
)

// SimpleUI implements UI by printing through the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayPipelines prints the pipeline table.
func (s *SimpleUI) DisplayPipelines(ctx context.Context, infos []model.PipelineInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.print(renderPipelineTable(infos))

	return nil
}

// DisplayRunReports prints one row per exhaustion run plus any recorded
// visit histories.
func (s *SimpleUI) DisplayRunReports(ctx context.Context, reports []model.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.print(renderRunReports(reports))

	return nil
}

// DisplayTriggerOutcome prints the result of forcing one ordinal.
func (s *SimpleUI) DisplayTriggerOutcome(ctx context.Context, pipeline string, ordinal int64, value string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	if err != nil {
		s.printf("pipeline %s, error %d: %s\n", pipeline, ordinal, failStyle.Render(err.Error()))
		return nil
	}

	s.printf("pipeline %s, error %d: %s (no probe fired, result %q)\n",
		pipeline, ordinal, passStyle.Render("succeeded"), value)

	return nil
}

// DisplaySavedPath prints where reports were written.
func (s *SimpleUI) DisplaySavedPath(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("reports saved to %s\n", path)

	return nil
}

func (s *SimpleUI) print(text string) {
	_, _ = fmt.Fprint(s.cmd.OutOrStdout(), text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderPipelineTable(infos []model.PipelineInfo) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Pipeline", "Probes", "Description"})
	// Keep header and footer cells as written instead of uppercased.
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	total := int64(0)

	for _, info := range infos {
		probes := "unknown"
		if info.Probes >= 0 {
			probes = fmt.Sprintf("%d", info.Probes)
			total += info.Probes
		}

		table.Append([]string{info.Name, probes, info.Description})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Pipelines %d", len(infos)),
		fmt.Sprintf("%d", total),
		"",
	})

	table.Render()

	return buf.String()
}

func renderRunReports(reports []model.RunReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Pipeline", "Probes", "Triggered", "Duration", "Status"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")

	passed := 0

	for _, report := range reports {
		status := failStyle.Render("FAIL")
		if report.Succeeded {
			status = passStyle.Render("PASS")
			passed++
		}

		expected := "unknown"
		if report.Expected >= 0 {
			expected = fmt.Sprintf("%d", report.Expected)
		}

		table.Append([]string{
			report.Pipeline,
			expected,
			fmt.Sprintf("%d", report.Triggered),
			report.Duration.Round(time.Millisecond).String(),
			status,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Passed %d/%d", passed, len(reports)),
		"", "", "", "",
	})

	table.Render()

	for _, report := range reports {
		if report.Unexpected != "" {
			fmt.Fprintf(&buf, "\n%s: unexpected %s\n", report.Pipeline, report.Unexpected)
		}
	}

	buf.WriteString(renderHistories(reports))

	return buf.String()
}

// renderHistories lists per-visit locations for runs that recorded
// them (extreme verbosity only).
func renderHistories(reports []model.RunReport) string {
	var buf bytes.Buffer

	for _, report := range reports {
		if len(report.Counted) == 0 && len(report.TriggeredLoc) == 0 {
			continue
		}

		fmt.Fprintf(&buf, "\n%s probe visits:\n", report.Pipeline)
		writeRows(&buf, "counted", report.Counted)
		writeRows(&buf, "triggered", report.TriggeredLoc)
	}

	return buf.String()
}

func writeRows(buf *bytes.Buffer, label string, rows []model.LocationRow) {
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(buf, "  %s:\n", label)

	for i, row := range rows {
		desc := ""
		if row.Desc != "" {
			desc = fmt.Sprintf(" %q", row.Desc)
		}

		candidate := ""
		if row.Candidate > 1 {
			candidate = fmt.Sprintf(" (candidate %d)", row.Candidate)
		}

		fmt.Fprintf(buf, "    %2d.%s %s%s\n", i+1, desc,
			dimStyle.Render(fmt.Sprintf("%s:%d", filepath.Base(row.File), row.Line)), candidate)
	}
}
