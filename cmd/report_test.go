package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultline.dev/pkg/faultline/internal/model"
	"faultline.dev/pkg/faultline/internal/store"
)

func TestReportCmd_RendersSavedReports(t *testing.T) {
	tempDir := t.TempDir()

	_, err := store.NewReportStore().SaveReports(tempDir, []model.RunReport{
		{Pipeline: "archive", Expected: 5, Triggered: 5, Succeeded: true, Duration: 10 * time.Millisecond},
	})
	require.NoError(t, err)

	cmd, buf := newTestRoot(t, newReportCmd())

	cmd.SetArgs([]string{"report", "--output", tempDir})
	err = cmd.Execute()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "archive")
	assert.Contains(t, out, "PASS")
}

func TestReportCmd_MissingReportsDir(t *testing.T) {
	cmd, _ := newTestRoot(t, newReportCmd())

	cmd.SetArgs([]string{"report", "--output", filepath.Join(t.TempDir(), "nope")})
	err := cmd.Execute()
	require.Error(t, err)
}
