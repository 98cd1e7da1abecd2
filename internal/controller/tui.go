package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"faultline.dev/pkg/faultline/internal/model"
)

var (
	pagerTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	pagerHelpStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
)

// TUI implements UI for interactive terminals. Short output is printed
// as-is; output taller than the terminal is paged in a viewport.
type TUI struct {
	cmd    *cobra.Command
	simple *SimpleUI
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd, simple: NewSimpleUI(cmd)}
}

// DisplayPipelines shows the pipeline table, paged if needed.
func (t *TUI) DisplayPipelines(ctx context.Context, infos []model.PipelineInfo) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page("pipelines", renderPipelineTable(infos))
}

// DisplayRunReports shows run results, paged if needed. Extreme-mode
// visit histories are usually what pushes the output past one screen.
func (t *TUI) DisplayRunReports(ctx context.Context, reports []model.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return t.page("exhaustion runs", renderRunReports(reports))
}

// DisplayTriggerOutcome prints the single-line outcome directly.
func (t *TUI) DisplayTriggerOutcome(ctx context.Context, pipeline string, ordinal int64, value string, err error) error {
	return t.simple.DisplayTriggerOutcome(ctx, pipeline, ordinal, value, err)
}

// DisplaySavedPath prints where reports were written.
func (t *TUI) DisplaySavedPath(ctx context.Context, path string) error {
	return t.simple.DisplaySavedPath(ctx, path)
}

// page prints content directly when it fits the terminal, otherwise it
// opens a scrollable viewport.
func (t *TUI) page(title, content string) error {
	width, height := t.terminalSize()

	if height <= 0 || strings.Count(content, "\n") < height-2 {
		_, err := fmt.Fprint(t.cmd.OutOrStdout(), content)
		return err
	}

	m := pagerModel{title: title, content: content, width: width, height: height}

	program := tea.NewProgram(m, tea.WithOutput(t.cmd.OutOrStdout()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

func (t *TUI) terminalSize() (int, int) {
	f, ok := t.cmd.OutOrStdout().(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel is the Bubble Tea model paging long report output.
type pagerModel struct {
	title    string
	content  string
	width    int
	height   int
	viewport viewport.Model
	ready    bool
}

func (m pagerModel) Init() tea.Cmd { return nil }

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-chrome)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

func (m pagerModel) View() string {
	if !m.ready {
		return "loading..."
	}

	return m.headerView() + "\n" + m.viewport.View() + "\n" + m.footerView()
}

func (m pagerModel) headerView() string {
	return pagerTitleStyle.Render("faultline " + m.title)
}

func (m pagerModel) footerView() string {
	return pagerHelpStyle.Render(fmt.Sprintf("%3.f%% · ↑/↓ scroll · q quit", m.viewport.ScrollPercent()*100))
}
