package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	// Test binaries have no main module version, so either branch may
	// print; both name the tool.
	output := out.String()
	assert.Contains(t, output, "faultline version")

	if !strings.Contains(output, "unknown") {
		assert.Contains(t, output, "built with")
	}
}
