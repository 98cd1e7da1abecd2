// Package store persists exhaustion run reports as YAML files so they
// can be rendered later with the report command.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"faultline.dev/pkg/faultline/internal/model"
)

const reportSuffix = ".report.yaml"

// ReportStore saves and loads run reports under a directory.
type ReportStore interface {
	SaveReports(dir string, reports []model.RunReport) (string, error)
	LoadReports(dir string) ([]model.RunReport, error)
}

type fileReportStore struct {
	// now is swappable for deterministic file names in tests.
	now func() time.Time
}

// NewReportStore creates a filesystem-backed ReportStore.
func NewReportStore() ReportStore {
	return &fileReportStore{now: time.Now}
}

// reportFile is the on-disk document. Reports from one invocation are
// kept together so a run over several pipelines stays one file.
type reportFile struct {
	SavedAt time.Time         `yaml:"saved_at"`
	Reports []model.RunReport `yaml:"reports"`
}

// SaveReports writes the reports as one timestamped YAML document and
// returns the file path.
func (f *fileReportStore) SaveReports(dir string, reports []model.RunReport) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create reports dir: %w", err)
	}

	doc := reportFile{SavedAt: f.now().UTC(), Reports: reports}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode reports: %w", err)
	}

	name := doc.SavedAt.Format("20060102-150405") + reportSuffix
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write reports: %w", err)
	}

	return path, nil
}

// LoadReports reads every report file under dir, oldest first.
func (f *fileReportStore) LoadReports(dir string) ([]model.RunReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read reports dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportSuffix) {
			continue
		}

		names = append(names, entry.Name())
	}

	sort.Strings(names)

	var reports []model.RunReport

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", name, err)
		}

		var doc reportFile
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", name, err)
		}

		reports = append(reports, doc.Reports...)
	}

	return reports, nil
}
