package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggerCmd_ForcesOrdinal(t *testing.T) {
	cmd, buf := newTestRoot(t, newTriggerCmd())

	cmd.SetArgs([]string{"trigger", "archive", "1"})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "payload write failed")
}

func TestTriggerCmd_OrdinalPastEnd(t *testing.T) {
	cmd, buf := newTestRoot(t, newTriggerCmd())

	cmd.SetArgs([]string{"trigger", "ledger", "9"})
	err := cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "no probe fired")
	assert.Contains(t, out, `"balance=200"`)
}

func TestTriggerCmd_UnknownPipeline(t *testing.T) {
	cmd, _ := newTestRoot(t, newTriggerCmd())

	cmd.SetArgs([]string{"trigger", "bogus", "1"})
	err := cmd.Execute()
	require.Error(t, err)
}

func TestTriggerCmd_BadOrdinal(t *testing.T) {
	for _, ordinal := range []string{"zero", "0", "-3"} {
		cmd, _ := newTestRoot(t, newTriggerCmd())

		cmd.SetArgs([]string{"trigger", "archive", ordinal})
		err := cmd.Execute()
		require.Error(t, err, "ordinal %q", ordinal)
	}
}
