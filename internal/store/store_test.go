package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultline.dev/pkg/faultline/internal/model"
)

func sampleReports() []model.RunReport {
	return []model.RunReport{
		{
			Pipeline:  "archive",
			Expected:  5,
			Triggered: 5,
			Succeeded: true,
			Duration:  120 * time.Millisecond,
			Counted: []model.LocationRow{
				{File: "archive.go", Line: 52, Desc: "write payload", Candidate: 1},
			},
		},
		{
			Pipeline:   "fanout",
			Expected:   2,
			Triggered:  1,
			Succeeded:  false,
			Unexpected: "success: total=666",
		},
	}
}

func TestReportStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := NewReportStore()

	path, err := s.SaveReports(dir, sampleReports())
	require.NoError(t, err)
	require.FileExists(t, path)

	loaded, err := s.LoadReports(dir)
	require.NoError(t, err)
	require.Equal(t, sampleReports(), loaded)
}

func TestReportStore_LoadsMultipleFilesOldestFirst(t *testing.T) {
	dir := t.TempDir()

	base := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	clock := base
	s := &fileReportStore{now: func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}}

	_, err := s.SaveReports(dir, []model.RunReport{{Pipeline: "older"}})
	require.NoError(t, err)
	_, err = s.SaveReports(dir, []model.RunReport{{Pipeline: "newer"}})
	require.NoError(t, err)

	loaded, err := s.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "older", loaded[0].Pipeline)
	assert.Equal(t, "newer", loaded[1].Pipeline)
}

func TestReportStore_IgnoresForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s := NewReportStore()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o600))

	_, err := s.SaveReports(dir, sampleReports())
	require.NoError(t, err)

	loaded, err := s.LoadReports(dir)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
}

func TestReportStore_MissingDir(t *testing.T) {
	s := NewReportStore()

	_, err := s.LoadReports(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
}

func TestReportStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	s := NewReportStore()

	bad := filepath.Join(dir, "zz"+reportSuffix)
	require.NoError(t, os.WriteFile(bad, []byte("{not yaml"), 0o600))

	_, err := s.LoadReports(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}
