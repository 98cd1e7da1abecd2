package controller

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultline.dev/pkg/faultline/internal/model"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTUI_FallsBackToPlainPrintOnBuffers(t *testing.T) {
	// A bytes.Buffer has no terminal size, so the TUI must print
	// directly instead of starting a program.
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewTUI(cmd)

	err := ui.DisplayPipelines(context.Background(), []model.PipelineInfo{
		{Name: "ledger", Description: "ledger demo", Probes: 5},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ledger")
}

func TestNewUI_PicksImplementation(t *testing.T) {
	cmd := &cobra.Command{}

	_, isTUI := NewUI(cmd, true).(*TUI)
	assert.True(t, isTUI)

	_, isSimple := NewUI(cmd, false).(*SimpleUI)
	assert.True(t, isSimple)
}

func TestPagerModel_QuitKeys(t *testing.T) {
	m := pagerModel{title: "runs", content: "line\n"}

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		t.Run(key, func(t *testing.T) {
			_, cmd := m.Update(keyMsg(key))
			require.NotNil(t, cmd)
		})
	}
}

func TestPagerModel_ViewBeforeReady(t *testing.T) {
	m := pagerModel{}
	require.Equal(t, "loading...", m.View())
}
