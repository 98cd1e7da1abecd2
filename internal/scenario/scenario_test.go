package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultline.dev/pkg/faultline/pkg/probe"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_FullScenario(t *testing.T) {
	path := writeScenario(t, `
pipelines:
  - ledger
  - fanout
verbosity: extreme
reports: ./out
`)

	sc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"ledger", "fanout"}, sc.Pipelines)
	assert.Equal(t, "extreme", sc.Verbosity)
	assert.Equal(t, "./out", sc.Reports)

	selected := sc.Selected()
	require.Len(t, selected, 2)
	assert.Equal(t, "ledger", selected[0].Name)
	assert.Equal(t, "fanout", selected[1].Name)
}

func TestLoad_EmptySelectsAll(t *testing.T) {
	path := writeScenario(t, "verbosity: none\n")

	sc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, sc.Selected(), 3)
}

func TestLoad_UnknownPipeline(t *testing.T) {
	path := writeScenario(t, "pipelines: [warp-core]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown pipeline "warp-core"`)
}

func TestLoad_BadVerbosity(t *testing.T) {
	path := writeScenario(t, "verbosity: shouty\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown verbosity")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		value   string
		want    probe.Verbosity
		wantErr bool
	}{
		{value: "", want: probe.VerbosityModerate},
		{value: "moderate", want: probe.VerbosityModerate},
		{value: "none", want: probe.VerbosityNone},
		{value: "extreme", want: probe.VerbosityExtreme},
		{value: "11", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := ParseVerbosity(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
