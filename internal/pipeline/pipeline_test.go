package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultline.dev/pkg/faultline/pkg/probe"
)

func TestAll_SortedAndComplete(t *testing.T) {
	pipelines := All()
	require.Len(t, pipelines, 3)

	names := make([]string, 0, len(pipelines))
	for _, p := range pipelines {
		names = append(names, p.Name)
	}

	require.Equal(t, []string{"archive", "fanout", "ledger"}, names)
}

func TestGet(t *testing.T) {
	_, ok := Get("archive")
	require.True(t, ok)

	_, ok = Get("nonexistent")
	require.False(t, ok)
}

func TestExhaust_AllPipelinesSurviveEveryFault(t *testing.T) {
	expected := map[string]int64{
		"archive": 5,
		"fanout":  2,
		"ledger":  5,
	}

	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			s := probe.NewState()
			s.SetVerbosity(probe.VerbosityNone)

			report := Exhaust(s, p)

			require.True(t, report.Succeeded, "unexpected outcome: %s", report.Unexpected)
			require.Equal(t, expected[p.Name], report.Expected)
			require.Equal(t, report.Expected, report.Triggered)
			require.Empty(t, report.Unexpected)
		})
	}
}

func TestExhaust_ExtremeVerbosityFillsHistories(t *testing.T) {
	p, ok := Get("ledger")
	require.True(t, ok)

	s := probe.NewState()
	s.SetVerbosity(probe.VerbosityExtreme)

	report := Exhaust(s, p)

	require.True(t, report.Succeeded)
	assert.Len(t, report.Counted, int(report.Expected))
	assert.Len(t, report.TriggeredLoc, int(report.Triggered))
	assert.Equal(t, "open ledger", report.Counted[0].Desc)
}

func TestDiscover_CountsWithoutTriggering(t *testing.T) {
	p, ok := Get("fanout")
	require.True(t, ok)

	s := probe.NewState()

	require.Equal(t, int64(2), Discover(s, p))
	// Discovery alters nothing, so it can run again.
	require.Equal(t, int64(2), Discover(s, p))
}

func TestTrigger_ForcesSingleOrdinal(t *testing.T) {
	p, ok := Get("archive")
	require.True(t, ok)

	s := probe.NewState()
	s.SetVerbosity(probe.VerbosityNone)

	tests := []struct {
		ordinal int64
		want    error
	}{
		{ordinal: 1, want: ErrPayloadWrite},
		{ordinal: 2, want: ErrChecksumRead},
		{ordinal: 3, want: ErrChecksumMismatch},
		{ordinal: 4, want: ErrRename},
		{ordinal: 5, want: ErrVerify},
	}

	for _, tt := range tests {
		_, err := Trigger(s, p, tt.ordinal)
		require.ErrorIs(t, err, tt.want, "ordinal %d", tt.ordinal)
	}
}

func TestTrigger_PastLastOrdinalSucceeds(t *testing.T) {
	p, ok := Get("ledger")
	require.True(t, ok)

	s := probe.NewState()

	value, err := Trigger(s, p, 99)
	require.NoError(t, err)
	require.Equal(t, "balance=200", value)
}
