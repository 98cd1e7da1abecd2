package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultline.dev/pkg/faultline/internal/controller"
)

// newTestRoot builds a fresh root command wired to buffers and points
// the shared UI at it for the duration of the test.
func newTestRoot(t *testing.T, sub *cobra.Command) (*cobra.Command, *bytes.Buffer) {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)

	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})

	originalUI := ui
	ui = controller.NewSimpleUI(cmd)
	t.Cleanup(func() { ui = originalUI })

	return cmd, buf
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "faultline", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, output.String(), "faultline")
	assert.Contains(t, output.String(), "--output")
	assert.Contains(t, output.String(), "--verbosity")
}

func TestSelectPipelines(t *testing.T) {
	all, err := selectPipelines(nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	one, err := selectPipelines([]string{"ledger"})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "ledger", one[0].Name)

	_, err = selectPipelines([]string{"ledger", "bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
